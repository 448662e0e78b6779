package services

import (
	"owner-wallet-service/internal/models"
	"owner-wallet-service/pkg/common"

	"gorm.io/gorm"
)

// WalletService is the only writer of owner wallet balances. Every credit or
// debit updates the balance and appends exactly one WalletTransaction row in
// the same database transaction.
type WalletService struct {
	DB *gorm.DB
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{DB: db}
}

// LedgerEntryDTO describes a single wallet mutation. Amount is always
// positive; Debit negates it in the ledger row. ChargedTotal and Fee are the
// money-side counters bumped only on charge approvals.
type LedgerEntryDTO struct {
	OwnerId      string
	OwnerEmail   string
	Amount       int64
	Type         string
	Description  string
	StoreName    string
	ChargedTotal int64
	Fee          int64
}

// ensureWallet bootstraps a zero-balance wallet for the owner if none exists.
// Idempotent: a second call finds the existing row.
func ensureWallet(tx *gorm.DB, ownerId, ownerEmail string) (models.Wallet, error) {
	var wallet models.Wallet
	err := tx.Where(models.Wallet{OwnerId: ownerId}).
		Attrs(models.Wallet{OwnerEmail: ownerEmail}).
		FirstOrCreate(&wallet).Error
	return wallet, err
}

// Credit adds Amount points to the owner's wallet and returns the new
// balance. The wallet is created with zero balances first if missing.
func (s *WalletService) Credit(data LedgerEntryDTO) (int64, error) {
	var newBalance int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		newBalance, err = s.ApplyCredit(tx, data)
		return err
	})
	return newBalance, err
}

// ApplyCredit runs the credit inside an existing transaction so callers can
// combine it with their own guarded writes (e.g. the charge status flip).
func (s *WalletService) ApplyCredit(tx *gorm.DB, data LedgerEntryDTO) (int64, error) {
	if data.Amount <= 0 {
		return 0, common.ErrInvalidAmount
	}

	if _, err := ensureWallet(tx, data.OwnerId, data.OwnerEmail); err != nil {
		return 0, err
	}

	updates := map[string]interface{}{
		"balance": gorm.Expr("balance + ?", data.Amount),
	}
	if data.ChargedTotal > 0 {
		updates["total_charged"] = gorm.Expr("total_charged + ?", data.ChargedTotal)
	}
	if data.Fee > 0 {
		updates["total_fee"] = gorm.Expr("total_fee + ?", data.Fee)
	}

	if err := tx.Model(&models.Wallet{}).
		Where("owner_id = ?", data.OwnerId).
		Updates(updates).Error; err != nil {
		return 0, err
	}

	var wallet models.Wallet
	if err := tx.Where("owner_id = ?", data.OwnerId).First(&wallet).Error; err != nil {
		return 0, err
	}

	if err := s.appendTransaction(tx, data, data.Amount); err != nil {
		return 0, err
	}

	return wallet.Balance, nil
}

// Debit removes Amount points from the owner's wallet. The balance check and
// the subtraction are one conditional update, so a concurrent debit cannot
// push the balance negative: zero rows affected means insufficient balance
// and nothing is written.
func (s *WalletService) Debit(data LedgerEntryDTO) (int64, error) {
	var newBalance int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		newBalance, err = s.ApplyDebit(tx, data)
		return err
	})
	return newBalance, err
}

// ApplyDebit runs the debit inside an existing transaction. Returns
// common.ErrInsufficientBalance without writing anything when the balance
// does not cover the amount.
func (s *WalletService) ApplyDebit(tx *gorm.DB, data LedgerEntryDTO) (int64, error) {
	if data.Amount <= 0 {
		return 0, common.ErrInvalidAmount
	}

	if _, err := ensureWallet(tx, data.OwnerId, data.OwnerEmail); err != nil {
		return 0, err
	}

	res := tx.Model(&models.Wallet{}).
		Where("owner_id = ? AND balance >= ?", data.OwnerId, data.Amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", data.Amount),
			"total_used": gorm.Expr("total_used + ?", data.Amount),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, common.ErrInsufficientBalance
	}

	var wallet models.Wallet
	if err := tx.Where("owner_id = ?", data.OwnerId).First(&wallet).Error; err != nil {
		return 0, err
	}

	if err := s.appendTransaction(tx, data, -data.Amount); err != nil {
		return 0, err
	}

	return wallet.Balance, nil
}

func (s *WalletService) appendTransaction(tx *gorm.DB, data LedgerEntryDTO, signedAmount int64) error {
	trx := models.WalletTransaction{
		OwnerId:       data.OwnerId,
		OwnerEmail:    data.OwnerEmail,
		TransactionNo: common.GenerateTrxNo(),
		Type:          data.Type,
		Amount:        signedAmount,
		Description:   data.Description,
		StoreName:     data.StoreName,
	}
	return tx.Create(&trx).Error
}

// GetWallet returns the owner's wallet, bootstrapping an empty one on first
// access the way the owner console did.
func (s *WalletService) GetWallet(ownerId, ownerEmail string) (models.Wallet, error) {
	var wallet models.Wallet
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		wallet, err = ensureWallet(tx, ownerId, ownerEmail)
		return err
	})
	return wallet, err
}

type ListTransactionsDTO struct {
	OwnerId string
	Type    string
	Page    int
	Limit   int
}

func (s *WalletService) ListTransactions(data ListTransactionsDTO) (common.PaginationResult, error) {
	limit := data.Limit
	if limit <= 0 {
		limit = 50
	}
	page := data.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.WalletTransaction{}).Where("owner_id = ?", data.OwnerId)
	if data.Type != "" {
		query = query.Where("type = ?", data.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var transactions []models.WalletTransaction
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&transactions).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(transactions, total, page, limit, "Transactions fetched"), nil
}
