package middleware

import (
	"os"
	"strconv"
	"time"

	"paquetes-elclub/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// AnnouncementRateLimiter gates the public announcement form: it is the
// system's main abuse surface, so submissions are capped per client IP.
func AnnouncementRateLimiter() fiber.Handler {
	max := 5
	if v, err := strconv.Atoi(os.Getenv("ANNOUNCE_RATE_LIMIT")); err == nil && v > 0 {
		max = v
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(types.ApiResponse{
				Status:  fiber.StatusTooManyRequests,
				Message: "Too many announcements from this address. Please try again in a minute.",
			})
		},
	})
}

// LookupRateLimiter caps the public tracking lookups, more generously than
// the announcement form
func LookupRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(types.ApiResponse{
				Status:  fiber.StatusTooManyRequests,
				Message: "Too many lookups from this address. Please try again in a minute.",
			})
		},
	})
}
