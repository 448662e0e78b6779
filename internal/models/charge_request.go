package models

import (
	"time"
)

// Charge request statuses. A request only ever moves pending -> completed or
// pending -> rejected; terminal states never transition again.
const (
	ChargeStatusPending   = "pending"
	ChargeStatusCompleted = "completed"
	ChargeStatusRejected  = "rejected"
)

// ChargeRequest is an owner-initiated top-up: the owner deposits TotalPayment
// (points + fee) by bank transfer and an admin approves or rejects after
// confirming the deposit. Retained indefinitely as an audit record.
type ChargeRequest struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference     string     `gorm:"column:reference;size:64;uniqueIndex" json:"reference"`
	OwnerId       string     `gorm:"column:owner_id;size:128;index" json:"owner_id"`
	OwnerEmail    string     `gorm:"column:owner_email;size:255" json:"owner_email"`
	WalletId      string     `gorm:"column:wallet_id;size:128" json:"wallet_id"`
	Points        int64      `gorm:"column:points;not null" json:"points"`
	Fee           int64      `gorm:"column:fee;not null;default:0" json:"fee"`
	TotalPayment  int64      `gorm:"column:total_payment;not null" json:"total_payment"`
	PaymentMethod string     `gorm:"column:payment_method;size:50;default:manual" json:"payment_method"`
	Status        string     `gorm:"column:status;size:20;not null;default:pending;index" json:"status"`
	ApprovedAt    *time.Time `gorm:"column:approved_at" json:"approved_at"`
	RejectedAt    *time.Time `gorm:"column:rejected_at" json:"rejected_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ChargeRequest) TableName() string {
	return "owner_charges"
}
