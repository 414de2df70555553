package routes

import (
	"os"

	announcementController "paquetes-elclub/controllers/announcement"
	parcelController "paquetes-elclub/controllers/parcel"
	rateController "paquetes-elclub/controllers/rate"
	"paquetes-elclub/httpServices/sms"
	"paquetes-elclub/logger"
	"paquetes-elclub/middleware"
	announcementService "paquetes-elclub/services/announcement"
	notificationService "paquetes-elclub/services/notification"
	"paquetes-elclub/services/phone"
	"paquetes-elclub/services/tracking"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) error {
	smsClient := sms.NewClient(os.Getenv("SMS_GATEWAY_URL"), os.Getenv("SMS_GATEWAY_KEY"), os.Getenv("SMS_SENDER"))
	asyncLogger := logger.NewAsyncLogger(db)

	store := announcementService.NewGormStore(db)
	allocator, err := tracking.NewAllocator(tracking.DefaultConfig(), store)
	if err != nil {
		return err
	}
	notifier := notificationService.NewService(db, smsClient)
	annSvc := announcementService.NewService(store, allocator, phone.DefaultValidator(), notifier)

	annController := announcementController.NewAnnouncementController(db, asyncLogger, annSvc)
	pController := parcelController.NewParcelController(db, asyncLogger, notifier)
	rController := rateController.NewRateController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "paquetes-elclub",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")

	api.Post("/announcements", middleware.AnnouncementRateLimiter(), annController.Store)

	lookups := api.Group("/announcements").Use(middleware.LookupRateLimiter())
	lookups.Get("/track/:code", annController.LookupByCode)
	lookups.Get("/guide/:guide", annController.LookupByGuide)

	api.Get("/rates", rController.Index)

	/*=============================================================================
	| Staff Routes
	===============================================================================*/
	staff := api.Group("/staff")

	staff.Post("/parcels/receive", pController.Receive)
	staff.Post("/parcels/status", pController.UpdateStatus)
	staff.Get("/parcels", pController.Index)
	staff.Put("/rates", rController.Update)
	staff.Get("/stats", annController.Stats)

	return nil
}
