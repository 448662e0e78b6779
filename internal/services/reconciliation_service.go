package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ReconciliationService is a read-only sweep comparing each wallet balance
// against the signed sum of its transaction log. Mismatches mean a mutation
// bypassed the ledger or a partial failure went unreconciled; they are logged
// for manual correction, never auto-fixed.
type ReconciliationService struct {
	DB *gorm.DB
}

func NewReconciliationService(db *gorm.DB) *ReconciliationService {
	return &ReconciliationService{DB: db}
}

type Discrepancy struct {
	OwnerId   string `json:"owner_id"`
	Balance   int64  `json:"balance"`
	LedgerSum int64  `json:"ledger_sum"`
}

func (s *ReconciliationService) Reconcile() ([]Discrepancy, error) {
	var results []Discrepancy
	err := s.DB.Table("owner_wallets AS w").
		Select("w.owner_id, w.balance, COALESCE(SUM(t.amount), 0) AS ledger_sum").
		Joins("LEFT JOIN wallet_transactions t ON t.owner_id = w.owner_id").
		Group("w.owner_id, w.balance").
		Having("w.balance <> COALESCE(SUM(t.amount), 0)").
		Scan(&results).Error
	return results, err
}

// StartScheduler runs the sweep hourly.
func (s *ReconciliationService) StartScheduler() {
	c := cron.New()
	c.AddFunc("@hourly", func() {
		discrepancies, err := s.Reconcile()
		if err != nil {
			log.Printf("Ledger reconciliation failed: %v", err)
			return
		}
		if len(discrepancies) == 0 {
			log.Println("Ledger reconciliation: all wallets consistent")
			return
		}
		for _, d := range discrepancies {
			log.Printf("Ledger discrepancy: owner %s balance %d, ledger sum %d (needs manual review)",
				d.OwnerId, d.Balance, d.LedgerSum)
		}
	})
	c.Start()
	log.Println("Reconciliation scheduler started (hourly)")
}
