package models

import (
	"time"
)

// User point history types.
const (
	PointTypeRefund      = "refund"
	PointTypeUse         = "use"
	PointTypeAdminGive   = "admin_give"
	PointTypeAdminDeduct = "admin_deduct"
	PointTypeBonus       = "bonus"
)

// PointHistory is the append-only ledger for a user's personal points.
// Amount is signed.
type PointHistory struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserId      string    `gorm:"column:user_id;size:128;not null;index" json:"user_id"`
	Type        string    `gorm:"column:type;size:50;not null" json:"type"`
	Amount      int64     `gorm:"column:amount;not null" json:"amount"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	OrderId     string    `gorm:"column:order_id;size:64" json:"order_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PointHistory) TableName() string {
	return "point_histories"
}
