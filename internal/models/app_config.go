package models

import (
	"time"
)

// AppConfig holds the operator-editable business settings: the charge fee
// rate, the deposit bank account shown to owners, and the minimum charge.
// A single row, created with defaults on first read.
type AppConfig struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FeeRate         float64   `gorm:"column:fee_rate;not null;default:0.2" json:"fee_rate"`
	MinChargePoints int64     `gorm:"column:min_charge_points;not null;default:1000" json:"min_charge_points"`
	BankName        string    `gorm:"column:bank_name;size:100" json:"bank_name"`
	BankAccount     string    `gorm:"column:bank_account;size:100" json:"bank_account"`
	BankHolder      string    `gorm:"column:bank_holder;size:100" json:"bank_holder"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AppConfig) TableName() string {
	return "app_config"
}
