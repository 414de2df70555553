package customer

import (
	"time"
)

// Customer represents a recurring client identified by their normalized phone number
type Customer struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone string  `gorm:"type:varchar(20);not null;unique" json:"phone"`
	Email *string `gorm:"type:varchar(255)" json:"email,omitempty"`

	Country     string `gorm:"type:varchar(50)" json:"country,omitempty"`
	CallingCode string `gorm:"type:varchar(5)" json:"calling_code,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
