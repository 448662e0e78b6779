package services

import (
	"errors"
	"fmt"
	"time"

	"owner-wallet-service/internal/models"
	"owner-wallet-service/pkg/common"

	"gorm.io/gorm"
)

// SponsorPlan is a purchasable priority tier. Prices are points from the
// owner wallet; weight drives exposure in the consumer-facing selection.
type SponsorPlan struct {
	Level       int    `json:"level"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Weight      int    `json:"weight"`
}

var PriorityPlans = []SponsorPlan{
	{Level: 1, Label: "Basic", Description: "Standard sponsor exposure", Price: 10000, Weight: 1},
	{Level: 2, Label: "Premium", Description: "2x exposure weight", Price: 30000, Weight: 2},
	{Level: 3, Label: "VIP", Description: "3x exposure weight", Price: 50000, Weight: 3},
}

// Every purchase buys a fresh 30-day window; a repurchase before expiry
// resets the window with no pro-rating of the unused time.
const sponsorTermDays = 30

func PlanByLevel(level int) (SponsorPlan, bool) {
	for _, p := range PriorityPlans {
		if p.Level == level {
			return p, true
		}
	}
	return SponsorPlan{}, false
}

type SponsorService struct {
	DB     *gorm.DB
	Wallet *WalletService
}

func NewSponsorService(db *gorm.DB, wallet *WalletService) *SponsorService {
	return &SponsorService{DB: db, Wallet: wallet}
}

type PurchaseLevelDTO struct {
	StoreId    int
	OwnerId    string
	OwnerEmail string
	Level      int
}

type PurchaseResult struct {
	Store      models.Store
	Plan       SponsorPlan
	NewBalance int64
	ExpiresAt  time.Time
}

// PurchaseLevel debits the owner wallet for the plan price and activates the
// tier on the store. Debit, store update and audit record commit in one
// transaction; an insufficient balance refuses the purchase with nothing
// written.
func (s *SponsorService) PurchaseLevel(data PurchaseLevelDTO) (PurchaseResult, error) {
	plan, ok := PlanByLevel(data.Level)
	if !ok {
		return PurchaseResult{}, fmt.Errorf("%w: no sponsor plan for level %d", common.ErrNotFound, data.Level)
	}

	var store models.Store
	if err := s.DB.First(&store, data.StoreId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PurchaseResult{}, common.ErrNotFound
		}
		return PurchaseResult{}, fmt.Errorf("%w: %v", common.ErrTransientIO, err)
	}

	ownerId := store.OwnerId
	if ownerId == "" {
		ownerId = data.OwnerId
	}
	if ownerId == "" {
		return PurchaseResult{}, common.ErrMissingOwnerReference
	}

	now := time.Now()
	expires := now.Add(sponsorTermDays * 24 * time.Hour)

	var newBalance int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		newBalance, err = s.Wallet.ApplyDebit(tx, LedgerEntryDTO{
			OwnerId:     ownerId,
			OwnerEmail:  data.OwnerEmail,
			Amount:      plan.Price,
			Type:        models.TrxSponsorLevel,
			Description: fmt.Sprintf("Sponsor %s plan (%s)", plan.Label, store.Name),
			StoreName:   store.Name,
		})
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Store{}).
			Where("id = ?", store.ID).
			Updates(map[string]interface{}{
				"priority_level":       plan.Level,
				"priority_weight":      plan.Weight,
				"is_sponsored":         true,
				"sponsor_status":       models.SponsorStatusApproved,
				"sponsor_activated_at": now,
				"sponsor_expires_at":   expires,
			}).Error; err != nil {
			return err
		}

		payment := models.SponsorLevelPayment{
			StoreId:       store.ID,
			StoreName:     store.Name,
			OwnerId:       ownerId,
			OwnerEmail:    data.OwnerEmail,
			PreviousLevel: store.PriorityLevel,
			NewLevel:      plan.Level,
			PlanLabel:     plan.Label,
			Price:         plan.Price,
			Weight:        plan.Weight,
			PaidAt:        now,
			ExpiresAt:     expires,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return PurchaseResult{}, err
	}

	if err := s.DB.First(&store, store.ID).Error; err != nil {
		return PurchaseResult{}, err
	}
	return PurchaseResult{Store: store, Plan: plan, NewBalance: newBalance, ExpiresAt: expires}, nil
}

type ApplyDTO struct {
	StoreId int
	Message string
}

// Apply files a sponsor application for admin review and marks the store
// pending. One open application per store; a second apply while one is
// pending is refused.
func (s *SponsorService) Apply(data ApplyDTO) (models.SponsorApplication, error) {
	var store models.Store
	if err := s.DB.First(&store, data.StoreId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SponsorApplication{}, common.ErrNotFound
		}
		return models.SponsorApplication{}, fmt.Errorf("%w: %v", common.ErrTransientIO, err)
	}

	var open int64
	if err := s.DB.Model(&models.SponsorApplication{}).
		Where("store_id = ? AND status = ?", store.ID, models.ApplicationStatusPending).
		Count(&open).Error; err != nil {
		return models.SponsorApplication{}, err
	}
	if open > 0 {
		return models.SponsorApplication{}, common.ErrAlreadyProcessed
	}

	application := models.SponsorApplication{
		StoreId:    store.ID,
		StoreName:  store.Name,
		OwnerId:    store.OwnerId,
		OwnerEmail: store.OwnerEmail,
		Message:    data.Message,
		Status:     models.ApplicationStatusPending,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		return tx.Model(&models.Store{}).
			Where("id = ?", store.ID).
			Update("sponsor_status", models.SponsorStatusPending).Error
	})
	if err != nil {
		return models.SponsorApplication{}, err
	}
	return application, nil
}

// ApproveApplication marks the application approved and the store eligible.
// Nothing activates here; the paid window starts at PurchaseLevel. The status
// flip is conditional on pending, so a concurrent second review loses the
// race with ErrAlreadyProcessed.
func (s *SponsorService) ApproveApplication(applicationId int) (models.SponsorApplication, error) {
	var application models.SponsorApplication
	if err := s.DB.First(&application, applicationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SponsorApplication{}, common.ErrNotFound
		}
		return models.SponsorApplication{}, fmt.Errorf("%w: %v", common.ErrTransientIO, err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.SponsorApplication{}).
			Where("id = ? AND status = ?", applicationId, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":      models.ApplicationStatusApproved,
				"reviewed_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrAlreadyProcessed
		}
		return tx.Model(&models.Store{}).
			Where("id = ?", application.StoreId).
			Update("sponsor_status", models.SponsorStatusApproved).Error
	})
	if err != nil {
		return models.SponsorApplication{}, err
	}

	if err := s.DB.First(&application, applicationId).Error; err != nil {
		return models.SponsorApplication{}, err
	}
	return application, nil
}

// RejectApplication records the rejection and its reason on the application
// and mirrors the rejected state onto the store.
func (s *SponsorService) RejectApplication(applicationId int, reason string) (models.SponsorApplication, error) {
	var application models.SponsorApplication
	if err := s.DB.First(&application, applicationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SponsorApplication{}, common.ErrNotFound
		}
		return models.SponsorApplication{}, fmt.Errorf("%w: %v", common.ErrTransientIO, err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.SponsorApplication{}).
			Where("id = ? AND status = ?", applicationId, models.ApplicationStatusPending).
			Updates(map[string]interface{}{
				"status":        models.ApplicationStatusRejected,
				"reject_reason": reason,
				"reviewed_at":   time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return common.ErrAlreadyProcessed
		}
		return tx.Model(&models.Store{}).
			Where("id = ?", application.StoreId).
			Update("sponsor_status", models.SponsorStatusRejected).Error
	})
	if err != nil {
		return models.SponsorApplication{}, err
	}

	if err := s.DB.First(&application, applicationId).Error; err != nil {
		return models.SponsorApplication{}, err
	}
	return application, nil
}

func (s *SponsorService) ListApplications(status string, page, limit int) (common.PaginationResult, error) {
	if limit <= 0 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.SponsorApplication{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var applications []models.SponsorApplication
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&applications).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(applications, total, page, limit, "Sponsor applications fetched"), nil
}

type BonusSettingsDTO struct {
	StoreId            int
	SponsorBonusPoints int64
	BonusMultiplier    float64
}

// UpdateBonusSettings saves the sponsor-only bonus fields edited from the
// admin sponsor screen.
func (s *SponsorService) UpdateBonusSettings(data BonusSettingsDTO) error {
	res := s.DB.Model(&models.Store{}).
		Where("id = ?", data.StoreId).
		Updates(map[string]interface{}{
			"sponsor_bonus_points": data.SponsorBonusPoints,
			"bonus_multiplier":     data.BonusMultiplier,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Deactivate clears the sponsor flags without touching the wallet. Admin
// override; the owner keeps whatever term was already paid for on the audit
// trail only.
func (s *SponsorService) Deactivate(storeId int) error {
	res := s.DB.Model(&models.Store{}).
		Where("id = ?", storeId).
		Updates(map[string]interface{}{
			"is_sponsored":   false,
			"sponsor_status": models.SponsorStatusNone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// ListSponsors returns stores with an approved sponsor application. Active
// state is derived per row from the expiry, never stored.
func (s *SponsorService) ListSponsors() ([]models.Store, error) {
	var stores []models.Store
	err := s.DB.Where("sponsor_status = ?", models.SponsorStatusApproved).
		Order("created_at DESC").
		Find(&stores).Error
	return stores, err
}

type ListPaymentsDTO struct {
	StoreId int
	OwnerId string
	Page    int
	Limit   int
}

func (s *SponsorService) ListPayments(data ListPaymentsDTO) (common.PaginationResult, error) {
	limit := data.Limit
	if limit <= 0 {
		limit = 50
	}
	page := data.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.SponsorLevelPayment{})
	if data.StoreId != 0 {
		query = query.Where("store_id = ?", data.StoreId)
	}
	if data.OwnerId != "" {
		query = query.Where("owner_id = ?", data.OwnerId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var payments []models.SponsorLevelPayment
	if err := query.Order("paid_at DESC").Limit(limit).Offset(offset).Find(&payments).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(payments, total, page, limit, "Sponsor payments fetched"), nil
}
