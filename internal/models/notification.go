package models

import (
	"time"
)

// Notification is a user-facing message record. Delivery is fire-and-forget:
// failures here never roll back the mutation that triggered the message.
type Notification struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserId    string    `gorm:"column:user_id;size:128;not null;index" json:"user_id"`
	Title     string    `gorm:"column:title;size:255" json:"title"`
	Message   string    `gorm:"column:message;type:text" json:"message"`
	Read      bool      `gorm:"column:read;default:false" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
