package services

import (
	"testing"

	"owner-wallet-service/internal/models"
	"owner-wallet-service/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditBootstrapsWallet(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	balance, err := svc.Credit(LedgerEntryDTO{
		OwnerId:     "owner-1",
		OwnerEmail:  "owner1@test.com",
		Amount:      5000,
		Type:        models.TrxChargeApproved,
		Description: "First charge",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), balance)

	var wallet models.Wallet
	require.NoError(t, db.Where("owner_id = ?", "owner-1").First(&wallet).Error)
	assert.Equal(t, int64(5000), wallet.Balance)
	assert.Equal(t, "owner1@test.com", wallet.OwnerEmail)

	var count int64
	db.Model(&models.WalletTransaction{}).Where("owner_id = ?", "owner-1").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDebitInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	_, err := svc.Credit(LedgerEntryDTO{OwnerId: "owner-2", Amount: 1000, Type: models.TrxChargeApproved})
	require.NoError(t, err)

	_, err = svc.Debit(LedgerEntryDTO{OwnerId: "owner-2", Amount: 1001, Type: models.TrxSponsorLevel})
	assert.ErrorIs(t, err, common.ErrInsufficientBalance)

	// Nothing written: balance untouched and no debit row in the ledger.
	assert.Equal(t, int64(1000), walletBalance(t, db, "owner-2"))
	var count int64
	db.Model(&models.WalletTransaction{}).Where("owner_id = ? AND amount < 0", "owner-2").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDebitExactBalance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	_, err := svc.Credit(LedgerEntryDTO{OwnerId: "owner-3", Amount: 1000, Type: models.TrxChargeApproved})
	require.NoError(t, err)

	balance, err := svc.Debit(LedgerEntryDTO{OwnerId: "owner-3", Amount: 1000, Type: models.TrxSponsorLevel})
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestLedgerSumMatchesBalance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	_, err := svc.Credit(LedgerEntryDTO{OwnerId: "owner-4", Amount: 10000, Type: models.TrxChargeApproved})
	require.NoError(t, err)
	_, err = svc.Debit(LedgerEntryDTO{OwnerId: "owner-4", Amount: 3000, Type: models.TrxSponsorLevel})
	require.NoError(t, err)
	_, err = svc.Credit(LedgerEntryDTO{OwnerId: "owner-4", Amount: 500, Type: models.TrxChargeApproved})
	require.NoError(t, err)

	var sum int64
	db.Model(&models.WalletTransaction{}).
		Where("owner_id = ?", "owner-4").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum)

	assert.Equal(t, walletBalance(t, db, "owner-4"), sum)
}

func TestDebitBumpsTotalUsed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	_, err := svc.Credit(LedgerEntryDTO{OwnerId: "owner-5", Amount: 10000, Type: models.TrxChargeApproved})
	require.NoError(t, err)
	_, err = svc.Debit(LedgerEntryDTO{OwnerId: "owner-5", Amount: 4000, Type: models.TrxBonusPayment})
	require.NoError(t, err)

	var wallet models.Wallet
	require.NoError(t, db.Where("owner_id = ?", "owner-5").First(&wallet).Error)
	assert.Equal(t, int64(4000), wallet.TotalUsed)
	assert.Equal(t, int64(6000), wallet.Balance)
}

func TestCreditRejectsNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	_, err := svc.Credit(LedgerEntryDTO{OwnerId: "owner-6", Amount: 0, Type: models.TrxChargeApproved})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)

	_, err = svc.Debit(LedgerEntryDTO{OwnerId: "owner-6", Amount: -10, Type: models.TrxSponsorLevel})
	assert.ErrorIs(t, err, common.ErrInvalidAmount)
}

func TestGetWalletBootstrapsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	wallet, err := svc.GetWallet("owner-7", "o7@test.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.Balance)

	// Second read finds the same row.
	again, err := svc.GetWallet("owner-7", "")
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, again.ID)
}

func TestListTransactionsFilterByType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWalletService(db)

	_, err := svc.Credit(LedgerEntryDTO{OwnerId: "owner-8", Amount: 10000, Type: models.TrxChargeApproved})
	require.NoError(t, err)
	_, err = svc.Debit(LedgerEntryDTO{OwnerId: "owner-8", Amount: 2000, Type: models.TrxSponsorLevel})
	require.NoError(t, err)

	result, err := svc.ListTransactions(ListTransactionsDTO{OwnerId: "owner-8", Type: models.TrxSponsorLevel})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Count)

	all, err := svc.ListTransactions(ListTransactionsDTO{OwnerId: "owner-8"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Count)
}
