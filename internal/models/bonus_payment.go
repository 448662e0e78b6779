package models

import (
	"time"
)

// BonusPayment records a visit bonus paid out of a store's owner wallet to a
// visiting user.
type BonusPayment struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreId     int       `gorm:"column:store_id;not null;index" json:"store_id"`
	StoreName   string    `gorm:"column:store_name;size:255" json:"store_name"`
	OwnerId     string    `gorm:"column:owner_id;size:128;index" json:"owner_id"`
	UserId      string    `gorm:"column:user_id;size:128;index" json:"user_id"`
	BonusPoints int64     `gorm:"column:bonus_points;not null" json:"bonus_points"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (BonusPayment) TableName() string {
	return "bonus_payments"
}
