package announcement

import (
	"errors"
	"fmt"

	"paquetes-elclub/logger"
	announcementModel "paquetes-elclub/models/announcement"
	announcementService "paquetes-elclub/services/announcement"
	"paquetes-elclub/services/tracking"
	"paquetes-elclub/types"
	announcementTypes "paquetes-elclub/types/announcement"
	"paquetes-elclub/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// AnnouncementController handles the public announcement endpoints
type AnnouncementController struct {
	DB      *gorm.DB
	Logger  *logger.AsyncLogger
	Service *announcementService.Service
}

// NewAnnouncementController creates a new announcement controller
func NewAnnouncementController(db *gorm.DB, asyncLogger *logger.AsyncLogger, service *announcementService.Service) *AnnouncementController {
	return &AnnouncementController{
		DB:      db,
		Logger:  asyncLogger,
		Service: service,
	}
}

// Store creates a new package announcement from the public form
func (ac *AnnouncementController) Store(c *fiber.Ctx) error {
	var req announcementTypes.AnnouncementCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	created, err := ac.Service.Create(req)
	if err != nil {
		var validationErr *announcementService.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: validationErr.Reason,
				Data:    nil,
			})
		case errors.Is(err, announcementService.ErrDuplicateGuide):
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Status:  fiber.StatusConflict,
				Message: "An announcement for this guide number already exists. Look it up with your tracking code instead of submitting again.",
				Data:    nil,
			})
		case errors.Is(err, tracking.ErrAllocationExhausted):
			logger.Error("Tracking code allocation exhausted", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
				Status:  fiber.StatusServiceUnavailable,
				Message: "We could not register your announcement right now. Please retry.",
				Data:    nil,
			})
		default:
			logger.Error("Failed to create announcement", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Internal server error",
				Data:    nil,
			})
		}
	}

	logger.Success(fmt.Sprintf("Announcement %s created for phone %s with tracking code %s",
		created.Uuid, utils.MaskPhone(created.Phone), created.TrackingCode))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Announcement created successfully",
		Data:    created,
	})
}

// LookupByCode resolves an announcement by its tracking code
func (ac *AnnouncementController) LookupByCode(c *fiber.Ctx) error {
	record, err := ac.Service.LookupByTrackingCode(c.Params("code"))
	return ac.renderLookup(c, record, err)
}

// LookupByGuide resolves an announcement by the carrier guide number
func (ac *AnnouncementController) LookupByGuide(c *fiber.Ctx) error {
	record, err := ac.Service.LookupByGuideNumber(c.Params("guide"))
	return ac.renderLookup(c, record, err)
}

func (ac *AnnouncementController) renderLookup(c *fiber.Ctx, record *announcementModel.Announcement, err error) error {
	if err != nil {
		if errors.Is(err, announcementService.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Announcement not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to look up announcement", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Announcement found",
		Data:    record,
	})
}

// Stats returns today's counters for the staff dashboard
func (ac *AnnouncementController) Stats(c *fiber.Ctx) error {
	start, end := utils.TodayRange()

	var announcedToday, pending int64
	if err := ac.DB.Model(&announcementModel.Announcement{}).
		Where("announced_at BETWEEN ? AND ?", start, end).
		Count(&announcedToday).Error; err != nil {
		logger.Error("Failed to count today's announcements", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}
	if err := ac.DB.Model(&announcementModel.Announcement{}).
		Where("is_active = true AND is_processed = false").
		Count(&pending).Error; err != nil {
		logger.Error("Failed to count pending announcements", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Announcement statistics",
		Data: map[string]interface{}{
			"announced_today": announcedToday,
			"pending":         pending,
		},
	})
}
