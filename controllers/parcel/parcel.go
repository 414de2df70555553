package parcel

import (
	"errors"
	"fmt"
	"time"

	"paquetes-elclub/logger"
	announcementModel "paquetes-elclub/models/announcement"
	parcelModel "paquetes-elclub/models/parcel"
	notificationService "paquetes-elclub/services/notification"
	"paquetes-elclub/types"
	announcementTypes "paquetes-elclub/types/announcement"
	parcelTypes "paquetes-elclub/types/parcel"
	"paquetes-elclub/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ParcelController handles the staff parcel lifecycle endpoints
type ParcelController struct {
	DB       *gorm.DB
	Logger   *logger.AsyncLogger
	Notifier *notificationService.Service
}

// NewParcelController creates a new parcel controller
func NewParcelController(db *gorm.DB, asyncLogger *logger.AsyncLogger, notifier *notificationService.Service) *ParcelController {
	return &ParcelController{
		DB:       db,
		Logger:   asyncLogger,
		Notifier: notifier,
	}
}

// staffUser resolves the acting staff member from the X-Staff-UUID header.
// This identifies who handled the parcel for the audit trail; access control
// itself is enforced upstream.
func staffUser(c *fiber.Ctx) (uint, string, error) {
	staffUUID := c.Get("X-Staff-UUID")
	if staffUUID == "" {
		return 0, "", errors.New("X-Staff-UUID header is required")
	}
	userInfo, err := utils.GetUserByUUID(staffUUID)
	if err != nil {
		return 0, "", err
	}
	return userInfo.ID, userInfo.Username, nil
}

// Receive links an active announcement to a physically received parcel
func (pc *ParcelController) Receive(c *fiber.Ctx) error {
	var req announcementTypes.ProcessAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	staffID, staffName, err := staffUser(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	// Find the announcement
	var record announcementModel.Announcement
	if err := pc.DB.Preload("Customer").First(&record, req.AnnouncementID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Announcement not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find announcement", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	if record.IsProcessed {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Announcement is already linked to a received parcel",
			Data:    nil,
		})
	}
	if record.CustomerID == nil {
		logger.Error(fmt.Sprintf("Announcement %d has no customer", record.ID), nil)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	now := time.Now()
	var created parcelModel.Parcel

	// Use DB.Transaction for automatic rollback on error
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		created = parcelModel.Parcel{
			AnnouncementID: record.ID,
			CustomerID:     *record.CustomerID,
			Status:         parcelModel.ParcelStatusReceived,
			WeightKg:       req.WeightKg,
			ReceivedByID:   staffID,
			ReceivedAt:     now,
		}
		if req.Shelf != "" {
			shelf := req.Shelf
			created.Shelf = &shelf
		}

		if err := tx.Create(&created).Error; err != nil {
			logger.Error("Failed to create parcel", err)
			return err
		}

		event := parcelModel.ParcelStatusEvent{
			ParcelID:  created.ID,
			Status:    parcelModel.ParcelStatusReceived,
			CreatedBy: staffName,
		}
		if err := tx.Create(&event).Error; err != nil {
			logger.Error("Failed to create parcel status event", err)
			return err
		}

		// Announcement leaves the active pool once matched
		record.IsProcessed = true
		record.IsActive = false
		record.ProcessedAt = &now
		record.ProcessedByID = &staffID
		if err := tx.Save(&record).Error; err != nil {
			logger.Error("Failed to mark announcement as processed", err)
			return err
		}

		return nil
	})

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to register parcel reception",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Parcel %d received for announcement %s by %s", created.ID, record.TrackingCode, staffName))

	created.Announcement = record
	if pc.Notifier != nil {
		go pc.Notifier.ParcelStatusChanged(&created, parcelModel.ParcelStatusReceived)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Parcel received successfully",
		Data:    created,
	})
}

// UpdateStatus moves a parcel through its lifecycle (stored, delivered)
func (pc *ParcelController) UpdateStatus(c *fiber.Ctx) error {
	var req parcelTypes.UpdateParcelStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	next := parcelModel.ParcelStatus(req.Status)
	if !next.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: fmt.Sprintf("Unknown parcel status: %s", req.Status),
			Data:    nil,
		})
	}

	_, staffName, err := staffUser(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	var record parcelModel.Parcel
	if err := pc.DB.Preload("Announcement").First(&record, req.ParcelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Parcel not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find parcel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	if !record.Status.CanTransitionTo(next) {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: fmt.Sprintf("Parcel cannot move from %s to %s", record.Status, next),
			Data:    nil,
		})
	}

	now := time.Now()
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		record.Status = next
		switch next {
		case parcelModel.ParcelStatusStored:
			record.StoredAt = &now
			if req.Shelf != "" {
				shelf := req.Shelf
				record.Shelf = &shelf
			}
		case parcelModel.ParcelStatusDelivered:
			record.DeliveredAt = &now
		}

		if err := tx.Save(&record).Error; err != nil {
			logger.Error("Failed to update parcel status", err)
			return err
		}

		event := parcelModel.ParcelStatusEvent{
			ParcelID:  record.ID,
			Status:    next,
			CreatedBy: staffName,
		}
		return tx.Create(&event).Error
	})

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update parcel status",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Parcel %d moved to %s by %s", record.ID, next, staffName))

	if pc.Notifier != nil {
		go pc.Notifier.ParcelStatusChanged(&record, next)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcel status updated successfully",
		Data:    record,
	})
}

// Index lists parcels, optionally filtered by status
func (pc *ParcelController) Index(c *fiber.Ctx) error {
	query := pc.DB.Preload("Announcement").Preload("Customer").Order("received_at DESC")

	if status := c.Query("status"); status != "" {
		if !parcelModel.ParcelStatus(status).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: fmt.Sprintf("Unknown parcel status: %s", status),
				Data:    nil,
			})
		}
		query = query.Where("status = ?", status)
	}

	var parcels []parcelModel.Parcel
	if err := query.Limit(100).Find(&parcels).Error; err != nil {
		logger.Error("Failed to list parcels", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Parcels retrieved successfully",
		Data:    parcels,
	})
}
