package parcel

import (
	"time"
)

// ParcelStatusEvent represents a status change event for a parcel
type ParcelStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for parcel relationship
	ParcelID uint   `gorm:"not null;index" json:"parcel_id"`
	Parcel   Parcel `gorm:"foreignKey:ParcelID" json:"parcel"`

	Status    ParcelStatus `gorm:"size:20;not null" json:"status"`
	CreatedBy string       `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the ParcelStatusEvent model
func (ParcelStatusEvent) TableName() string {
	return "parcel_status_events"
}
