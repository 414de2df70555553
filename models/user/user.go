package user

import (
	"time"
)

// User is a staff account that processes announcements and parcels
type User struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid     string  `gorm:"type:varchar(36);not null;unique" json:"uuid"`
	Username string  `gorm:"type:varchar(255);not null;unique" json:"username"`
	FullName string  `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone    string  `gorm:"type:varchar(20);not null;unique" json:"phone"`
	Email    *string `gorm:"type:varchar(255);unique" json:"email,omitempty"`
	Role     string  `gorm:"type:varchar(50);not null;default:'operator'" json:"role"`
	IsActive bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
