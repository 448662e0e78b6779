package models

import (
	"time"
)

// Sponsor application statuses. An application only ever moves
// pending -> approved or pending -> rejected.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// SponsorApplication is an owner's request to become a sponsor, reviewed by
// an admin. Approval makes the store eligible; the paid tier itself only
// activates when a level is purchased.
type SponsorApplication struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreId      int        `gorm:"column:store_id;not null;index" json:"store_id"`
	StoreName    string     `gorm:"column:store_name;size:255" json:"store_name"`
	OwnerId      string     `gorm:"column:owner_id;size:128;index" json:"owner_id"`
	OwnerEmail   string     `gorm:"column:owner_email;size:255" json:"owner_email"`
	Message      string     `gorm:"column:message;type:text" json:"message"`
	Status       string     `gorm:"column:status;size:20;not null;default:pending;index" json:"status"`
	RejectReason string     `gorm:"column:reject_reason;type:text" json:"reject_reason"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SponsorApplication) TableName() string {
	return "sponsor_applications"
}
