package models

import (
	"time"
)

// SponsorLevelPayment is the audit record for a sponsor plan purchase, kept
// separate from the wallet transaction log.
type SponsorLevelPayment struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreId       int       `gorm:"column:store_id;not null;index" json:"store_id"`
	StoreName     string    `gorm:"column:store_name;size:255" json:"store_name"`
	OwnerId       string    `gorm:"column:owner_id;size:128;index" json:"owner_id"`
	OwnerEmail    string    `gorm:"column:owner_email;size:255" json:"owner_email"`
	PreviousLevel int       `gorm:"column:previous_level;default:0" json:"previous_level"`
	NewLevel      int       `gorm:"column:new_level;not null" json:"new_level"`
	PlanLabel     string    `gorm:"column:plan_label;size:50" json:"plan_label"`
	Price         int64     `gorm:"column:price;not null" json:"price"`
	Weight        int       `gorm:"column:weight;not null" json:"weight"`
	PaidAt        time.Time `gorm:"column:paid_at" json:"paid_at"`
	ExpiresAt     time.Time `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SponsorLevelPayment) TableName() string {
	return "sponsor_level_payments"
}
