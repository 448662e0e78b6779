package models

import (
	"time"
)

// Owner wallet transaction types.
const (
	TrxChargeApproved = "charge_approved"
	TrxSponsorLevel   = "sponsor_level"
	TrxBonusPayment   = "bonus_payment"
)

// WalletTransaction is an append-only ledger entry for an owner wallet.
// Amount is signed: credits positive, debits negative. Rows are never updated
// or deleted; the sum of amounts per owner must reconcile with the wallet
// balance (see ReconciliationService).
type WalletTransaction struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerId       string    `gorm:"column:owner_id;size:128;not null;index" json:"owner_id"`
	OwnerEmail    string    `gorm:"column:owner_email;size:255" json:"owner_email"`
	TransactionNo string    `gorm:"column:transaction_no;size:64;index" json:"transaction_no"`
	Type          string    `gorm:"column:type;size:50;not null;index" json:"type"`
	Amount        int64     `gorm:"column:amount;not null" json:"amount"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	StoreName     string    `gorm:"column:store_name;size:255" json:"store_name"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
