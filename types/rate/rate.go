package rate

import "fmt"

// UpdateRateRequest represents the staff request changing a rate amount
type UpdateRateRequest struct {
	Code      string  `json:"code" validate:"required,min=2,max=50"`
	AmountCOP float64 `json:"amount_cop" validate:"required,gt=0"`
	IsActive  *bool   `json:"is_active"`
}

// Validate validates the UpdateRateRequest fields
func (r *UpdateRateRequest) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if r.AmountCOP <= 0 {
		return fmt.Errorf("amount_cop must be greater than zero")
	}
	return nil
}
