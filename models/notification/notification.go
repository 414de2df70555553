package notification

import (
	"time"
)

// NotificationChannel represents the delivery channel for a notification
type NotificationChannel string

const (
	ChannelSMS   NotificationChannel = "sms"
	ChannelEmail NotificationChannel = "email"
)

// NotificationStatus enumerates the delivery state of a notification record
type NotificationStatus string

const (
	StatusQueued NotificationStatus = "queued"
	StatusSent   NotificationStatus = "sent"
	StatusFailed NotificationStatus = "failed"
)

// Notification records one delivery attempt for an announcement
type Notification struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	AnnouncementID uint `gorm:"not null;index" json:"announcement_id"`

	Channel   NotificationChannel `gorm:"type:varchar(10);not null" json:"channel"`
	Recipient string              `gorm:"type:varchar(255);not null;index" json:"recipient"`
	Body      string              `gorm:"type:text;not null" json:"body"`

	Status       NotificationStatus `gorm:"type:varchar(10);not null;default:'queued';index" json:"status"`
	ErrorMessage *string            `gorm:"type:text" json:"error_message,omitempty"`
	SentAt       *time.Time         `json:"sent_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}

// MarkSent flags the record as successfully delivered
func (n *Notification) MarkSent() {
	now := time.Now()
	n.Status = StatusSent
	n.SentAt = &now
}

// MarkFailed flags the record as failed with the gateway error
func (n *Notification) MarkFailed(err error) {
	n.Status = StatusFailed
	if err != nil {
		msg := err.Error()
		n.ErrorMessage = &msg
	}
}
