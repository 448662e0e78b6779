package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"owner-wallet-service/internal/models"
	"owner-wallet-service/pkg/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChargeService owns the top-up workflow: an owner requests a charge, the
// admin confirms the bank deposit and approves, and the wallet is credited.
// Approval and rejection are guarded compare-and-swap updates on the pending
// status, so a second concurrent approval loses the race in the store rather
// than double-crediting.
type ChargeService struct {
	DB     *gorm.DB
	Wallet *WalletService
	Config *ConfigService
}

func NewChargeService(db *gorm.DB, wallet *WalletService, config *ConfigService) *ChargeService {
	return &ChargeService{DB: db, Wallet: wallet, Config: config}
}

type RequestChargeDTO struct {
	OwnerId       string
	OwnerEmail    string
	Points        int64
	PaymentMethod string
}

// RequestCharge creates a pending charge request. The fee comes from the
// configured rate; TotalPayment is the money amount the owner must deposit.
func (s *ChargeService) RequestCharge(data RequestChargeDTO) (models.ChargeRequest, error) {
	if data.OwnerId == "" {
		return models.ChargeRequest{}, common.ErrMissingOwnerReference
	}

	cfg, err := s.Config.Get()
	if err != nil {
		return models.ChargeRequest{}, err
	}

	if data.Points < cfg.MinChargePoints {
		return models.ChargeRequest{}, fmt.Errorf("%w: minimum charge is %dP", common.ErrInvalidAmount, cfg.MinChargePoints)
	}

	fee := int64(math.Round(float64(data.Points) * cfg.FeeRate))
	method := data.PaymentMethod
	if method == "" {
		method = "manual"
	}

	charge := models.ChargeRequest{
		Reference:     uuid.NewString(),
		OwnerId:       data.OwnerId,
		OwnerEmail:    data.OwnerEmail,
		WalletId:      data.OwnerId,
		Points:        data.Points,
		Fee:           fee,
		TotalPayment:  data.Points + fee,
		PaymentMethod: method,
		Status:        models.ChargeStatusPending,
	}

	if err := s.DB.Create(&charge).Error; err != nil {
		return models.ChargeRequest{}, err
	}
	return charge, nil
}

type ApprovalResult struct {
	Charge     models.ChargeRequest
	NewBalance int64
}

// Approve credits the owner wallet for a pending charge request.
//
// Guard order: the request must exist, must carry a resolvable owner id
// (legacy rows sometimes had only walletId; rows with neither are blocked
// rather than miscredited), and must still be pending. The status flip is a
// conditional update keyed on status = pending inside the same transaction as
// the credit, so either both commit or neither does, and a concurrent second
// approval gets ErrAlreadyProcessed.
func (s *ChargeService) Approve(chargeId int) (ApprovalResult, error) {
	var charge models.ChargeRequest
	if err := s.DB.First(&charge, chargeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApprovalResult{}, common.ErrNotFound
		}
		return ApprovalResult{}, fmt.Errorf("%w: %v", common.ErrTransientIO, err)
	}

	walletId := charge.OwnerId
	if walletId == "" {
		walletId = charge.WalletId
	}
	if walletId == "" {
		return ApprovalResult{}, common.ErrMissingOwnerReference
	}

	var newBalance int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.ChargeRequest{}).
			Where("id = ? AND status = ?", chargeId, models.ChargeStatusPending).
			Updates(map[string]interface{}{
				"status":      models.ChargeStatusCompleted,
				"approved_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrAlreadyProcessed
		}

		var err error
		newBalance, err = s.Wallet.ApplyCredit(tx, LedgerEntryDTO{
			OwnerId:      walletId,
			OwnerEmail:   charge.OwnerEmail,
			Amount:       charge.Points,
			Type:         models.TrxChargeApproved,
			Description:  fmt.Sprintf("Point charge approved (%dP)", charge.Points),
			ChargedTotal: charge.TotalPayment,
			Fee:          charge.Fee,
		})
		return err
	})
	if err != nil {
		return ApprovalResult{}, err
	}

	if err := s.DB.First(&charge, chargeId).Error; err != nil {
		return ApprovalResult{}, err
	}
	return ApprovalResult{Charge: charge, NewBalance: newBalance}, nil
}

// Reject marks a pending request rejected. No wallet mutation.
func (s *ChargeService) Reject(chargeId int) (models.ChargeRequest, error) {
	var charge models.ChargeRequest
	if err := s.DB.First(&charge, chargeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ChargeRequest{}, common.ErrNotFound
		}
		return models.ChargeRequest{}, fmt.Errorf("%w: %v", common.ErrTransientIO, err)
	}

	res := s.DB.Model(&models.ChargeRequest{}).
		Where("id = ? AND status = ?", chargeId, models.ChargeStatusPending).
		Updates(map[string]interface{}{
			"status":      models.ChargeStatusRejected,
			"rejected_at": time.Now(),
		})
	if res.Error != nil {
		return models.ChargeRequest{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.ChargeRequest{}, common.ErrAlreadyProcessed
	}

	if err := s.DB.First(&charge, chargeId).Error; err != nil {
		return models.ChargeRequest{}, err
	}
	return charge, nil
}

type ListChargesDTO struct {
	OwnerId string
	Status  string
	Page    int
	Limit   int
}

func (s *ChargeService) ListCharges(data ListChargesDTO) (common.PaginationResult, error) {
	limit := data.Limit
	if limit <= 0 {
		limit = 50
	}
	page := data.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.ChargeRequest{})
	if data.OwnerId != "" {
		query = query.Where("owner_id = ?", data.OwnerId)
	}
	if data.Status != "" {
		query = query.Where("status = ?", data.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var charges []models.ChargeRequest
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&charges).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(charges, total, page, limit, "Charge requests fetched"), nil
}

// PendingCount feeds the admin badge showing how many requests await review.
func (s *ChargeService) PendingCount() (int64, error) {
	var count int64
	err := s.DB.Model(&models.ChargeRequest{}).
		Where("status = ?", models.ChargeStatusPending).
		Count(&count).Error
	return count, err
}
