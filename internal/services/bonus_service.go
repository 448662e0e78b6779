package services

import (
	"errors"
	"fmt"

	"owner-wallet-service/internal/models"
	"owner-wallet-service/pkg/common"

	"gorm.io/gorm"
)

// ErrBonusInactive is returned when a visit bonus payout is attempted for a
// store that has the bonus switched off or unconfigured.
var ErrBonusInactive = errors.New("visit bonus is not active for this store")

// BonusService pays visit-verification bonuses out of the owning store's
// wallet into the visiting user's personal points. The wallet debit and the
// user credit commit together: an empty wallet refuses the payout entirely.
type BonusService struct {
	DB     *gorm.DB
	Wallet *WalletService
}

func NewBonusService(db *gorm.DB, wallet *WalletService) *BonusService {
	return &BonusService{DB: db, Wallet: wallet}
}

type BonusSettingsUpdateDTO struct {
	StoreId        int
	PointsPerVisit int64
	Active         bool
}

func (s *BonusService) UpdateSettings(data BonusSettingsUpdateDTO) error {
	if data.PointsPerVisit < 0 {
		return common.ErrInvalidAmount
	}
	res := s.DB.Model(&models.Store{}).
		Where("id = ?", data.StoreId).
		Updates(map[string]interface{}{
			"bonus_points_per_visit": data.PointsPerVisit,
			"bonus_points_active":    data.Active,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

type BonusPaymentResult struct {
	BonusPoints  int64
	WalletRemain int64
}

// PayVisitBonus grants the store's configured per-visit points to a user.
// Funded from the owner wallet: the debit fails atomically when the balance
// does not cover the bonus, and a missing user rolls the debit back.
func (s *BonusService) PayVisitBonus(storeId int, userId string) (BonusPaymentResult, error) {
	var store models.Store
	if err := s.DB.First(&store, storeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BonusPaymentResult{}, common.ErrNotFound
		}
		return BonusPaymentResult{}, fmt.Errorf("%w: %v", common.ErrTransientIO, err)
	}

	if !store.BonusPointsActive || store.BonusPointsPerVisit <= 0 {
		return BonusPaymentResult{}, ErrBonusInactive
	}
	if store.OwnerId == "" {
		return BonusPaymentResult{}, common.ErrMissingOwnerReference
	}

	bonus := store.BonusPointsPerVisit

	var remain int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		remain, err = s.Wallet.ApplyDebit(tx, LedgerEntryDTO{
			OwnerId:     store.OwnerId,
			OwnerEmail:  store.OwnerEmail,
			Amount:      bonus,
			Type:        models.TrxBonusPayment,
			Description: fmt.Sprintf("Visit bonus (%s)", store.Name),
			StoreName:   store.Name,
		})
		if err != nil {
			return err
		}

		res := tx.Model(&models.User{}).
			Where("id = ?", userId).
			UpdateColumn("points", gorm.Expr("points + ?", bonus))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: user %s", common.ErrNotFound, userId)
		}

		history := models.PointHistory{
			UserId:      userId,
			Type:        models.PointTypeBonus,
			Amount:      bonus,
			Description: fmt.Sprintf("Visit bonus - %s", store.Name),
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		payment := models.BonusPayment{
			StoreId:     store.ID,
			StoreName:   store.Name,
			OwnerId:     store.OwnerId,
			UserId:      userId,
			BonusPoints: bonus,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return BonusPaymentResult{}, err
	}

	return BonusPaymentResult{BonusPoints: bonus, WalletRemain: remain}, nil
}

// ListPayments returns the recent visit bonus payouts for a store, newest
// first.
func (s *BonusService) ListPayments(storeId, limit int) ([]models.BonusPayment, error) {
	if limit <= 0 {
		limit = 30
	}
	var payments []models.BonusPayment
	err := s.DB.Where("store_id = ?", storeId).
		Order("created_at DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}
