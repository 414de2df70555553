package rate

import (
	"time"
)

// Rate represents a billed service rate (reception, storage, delivery)
type Rate struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string  `gorm:"type:varchar(50);not null;unique" json:"code"`
	Description string  `gorm:"type:varchar(255);not null" json:"description"`
	AmountCOP   float64 `gorm:"type:decimal(12,2);not null" json:"amount_cop"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
