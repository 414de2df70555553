package announcement

import (
	"time"

	"paquetes-elclub/models/customer"
	"paquetes-elclub/models/user"
)

// Announcement represents a customer-submitted notice of an incoming package
type Announcement struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid string `gorm:"type:varchar(36);not null;unique" json:"uuid"`

	CustomerName string `gorm:"type:varchar(255);not null" json:"customer_name"`
	Phone        string `gorm:"type:varchar(20);not null;index" json:"phone"`
	PhoneCountry string `gorm:"type:varchar(50)" json:"phone_country,omitempty"`

	// GuideNumber is the carrier's own tracking identifier, supplied by the customer.
	// TrackingCode is our short customer-facing code, assigned once and never reused.
	GuideNumber  string `gorm:"type:varchar(50);not null;unique" json:"guide_number"`
	TrackingCode string `gorm:"type:varchar(10);not null;unique" json:"tracking_code"`

	IsActive    bool `gorm:"default:true" json:"is_active"`
	IsProcessed bool `gorm:"default:false" json:"is_processed"`

	// Foreign key for customer relationship
	CustomerID *uint              `gorm:"index" json:"customer_id,omitempty"`
	Customer   *customer.Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	// ProcessedBy is the staff user who linked the announcement to a received parcel
	ProcessedByID *uint      `gorm:"index" json:"processed_by_id,omitempty"`
	ProcessedBy   *user.User `gorm:"foreignKey:ProcessedByID" json:"processed_by,omitempty"`

	AnnouncedAt time.Time  `gorm:"not null;index" json:"announced_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"` // Soft delete field
}

// TableName sets the table name for the Announcement model
func (Announcement) TableName() string {
	return "package_announcements"
}
