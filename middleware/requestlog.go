package middleware

import (
	"paquetes-elclub/logger"
	"paquetes-elclub/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger persists every request/response pair through the async logger
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		entry := utils.CreateSanitizedLogEntry(c)
		asyncLogger.Log(entry)

		return err
	}
}
