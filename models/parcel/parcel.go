package parcel

import (
	"time"

	"paquetes-elclub/models/announcement"
	"paquetes-elclub/models/customer"
	"paquetes-elclub/models/user"
)

// Parcel represents a physically received package linked to an announcement
type Parcel struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for announcement relationship
	AnnouncementID uint                      `gorm:"not null;unique" json:"announcement_id"`
	Announcement   announcement.Announcement `gorm:"foreignKey:AnnouncementID" json:"announcement"`

	// Foreign key for customer relationship
	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	Status   ParcelStatus `gorm:"type:varchar(50);not null" json:"status"`
	WeightKg *float64     `gorm:"type:decimal(8,3)" json:"weight_kg,omitempty"`
	Shelf    *string      `gorm:"type:varchar(50)" json:"shelf,omitempty"`

	ReceivedByID uint       `gorm:"not null" json:"received_by_id"`
	ReceivedBy   user.User  `gorm:"foreignKey:ReceivedByID" json:"received_by"`
	ReceivedAt   time.Time  `gorm:"not null" json:"received_at"`
	StoredAt     *time.Time `json:"stored_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"` // Soft delete field
}

// TableName sets the table name for the Parcel model
func (Parcel) TableName() string {
	return "parcels"
}
