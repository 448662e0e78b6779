package models

import (
	"time"
)

// Wallet is the shared point balance for an owner account. One row per owner,
// created lazily on first use and never deleted. Balance must stay >= 0; every
// mutation goes through the wallet service so a matching WalletTransaction row
// exists for each change.
type Wallet struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerId      string    `gorm:"column:owner_id;size:128;not null;uniqueIndex" json:"owner_id"`
	OwnerEmail   string    `gorm:"column:owner_email;size:255" json:"owner_email"`
	Balance      int64     `gorm:"column:balance;not null;default:0" json:"balance"`
	TotalCharged int64     `gorm:"column:total_charged;not null;default:0" json:"total_charged"`
	TotalUsed    int64     `gorm:"column:total_used;not null;default:0" json:"total_used"`
	TotalFee     int64     `gorm:"column:total_fee;not null;default:0" json:"total_fee"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Wallet) TableName() string {
	return "owner_wallets"
}
