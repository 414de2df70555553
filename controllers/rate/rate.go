package rate

import (
	"errors"
	"fmt"

	"paquetes-elclub/logger"
	rateModel "paquetes-elclub/models/rate"
	"paquetes-elclub/types"
	rateTypes "paquetes-elclub/types/rate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RateController handles the service rate endpoints
type RateController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewRateController creates a new rate controller
func NewRateController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *RateController {
	return &RateController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Index lists the active service rates
func (rc *RateController) Index(c *fiber.Ctx) error {
	var rates []rateModel.Rate
	if err := rc.DB.Where("is_active = true").Order("code").Find(&rates).Error; err != nil {
		logger.Error("Failed to list rates", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rates retrieved successfully",
		Data:    rates,
	})
}

// Update changes the amount or active flag of an existing rate
func (rc *RateController) Update(c *fiber.Ctx) error {
	var req rateTypes.UpdateRateRequest
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

	var record rateModel.Rate
	if err := rc.DB.Where("code = ?", req.Code).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Rate not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to find rate", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
			Data:    nil,
		})
	}

	record.AmountCOP = req.AmountCOP
	if req.IsActive != nil {
		record.IsActive = *req.IsActive
	}
	if staff := c.Get("X-Staff-UUID"); staff != "" {
		record.UpdatedBy = staff
	}

	if err := rc.DB.Save(&record).Error; err != nil {
		logger.Error("Failed to update rate", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update rate",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Rate %s updated to %.2f COP", record.Code, record.AmountCOP))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Rate updated successfully",
		Data:    record,
	})
}
