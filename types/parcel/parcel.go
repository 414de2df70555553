package parcel

import "fmt"

// UpdateParcelStatusRequest represents the staff request moving a parcel
// through its lifecycle
type UpdateParcelStatusRequest struct {
	ParcelID uint   `json:"parcel_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=received stored delivered"`
	Shelf    string `json:"shelf" validate:"omitempty,max=50"`
}

// Validate validates the UpdateParcelStatusRequest fields
func (r *UpdateParcelStatusRequest) Validate() error {
	if r.ParcelID == 0 {
		return fmt.Errorf("parcel_id is required")
	}
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	if len(r.Shelf) > 50 {
		return fmt.Errorf("shelf must not exceed 50 characters")
	}
	return nil
}
