package announcement

import "fmt"

// AnnouncementCreateRequest represents the public form submission announcing
// an incoming package
type AnnouncementCreateRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=3,max=255"`
	Phone        string `json:"phone_number" validate:"required,min=7,max=20"`
	GuideNumber  string `json:"guide_number" validate:"required,min=4,max=50"`
	Email        string `json:"email" validate:"omitempty,email"`
}

// Validate validates the AnnouncementCreateRequest fields
func (r *AnnouncementCreateRequest) Validate() error {
	if r.CustomerName == "" {
		return fmt.Errorf("customer_name is required")
	}
	if len(r.CustomerName) < 3 {
		return fmt.Errorf("customer_name must be at least 3 characters")
	}
	if r.Phone == "" {
		return fmt.Errorf("phone_number is required")
	}
	if r.GuideNumber == "" {
		return fmt.Errorf("guide_number is required")
	}
	if len(r.GuideNumber) < 4 {
		return fmt.Errorf("guide_number must be at least 4 characters")
	}
	if len(r.GuideNumber) > 50 {
		return fmt.Errorf("guide_number must not exceed 50 characters")
	}
	return nil
}

// ProcessAnnouncementRequest represents the staff request linking an
// announcement to a physically received parcel
type ProcessAnnouncementRequest struct {
	AnnouncementID uint     `json:"announcement_id" validate:"required"`
	WeightKg       *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	Shelf          string   `json:"shelf" validate:"omitempty,max=50"`
}

// Validate validates the ProcessAnnouncementRequest fields
func (r *ProcessAnnouncementRequest) Validate() error {
	if r.AnnouncementID == 0 {
		return fmt.Errorf("announcement_id is required")
	}
	if r.WeightKg != nil && *r.WeightKg <= 0 {
		return fmt.Errorf("weight_kg must be greater than zero")
	}
	if len(r.Shelf) > 50 {
		return fmt.Errorf("shelf must not exceed 50 characters")
	}
	return nil
}
