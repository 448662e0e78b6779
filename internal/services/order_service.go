package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"owner-wallet-service/internal/models"
	"owner-wallet-service/pkg/common"

	"gorm.io/gorm"
)

// allowedTransitions is the order status machine. pending<->processing<->
// completed move freely; only pending/processing may cancel; completed and
// cancelled can be restored to pending by manual override.
var allowedTransitions = map[string][]string{
	models.OrderStatusPending:    {models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusProcessing: {models.OrderStatusPending, models.OrderStatusCompleted, models.OrderStatusCancelled},
	models.OrderStatusCompleted:  {models.OrderStatusProcessing, models.OrderStatusPending},
	models.OrderStatusCancelled:  {models.OrderStatusPending},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderService applies order status changes and the point compensations that
// ride along with them: a cancel refunds the user's points and restocks the
// product, a restore from cancelled re-debits. The status change is the
// primary effect; compensations are best-effort and surfaced when they fail,
// never silently dropped and never rolled back over.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type StatusUpdateResult struct {
	Order models.Order
	// Warning is set when a secondary step was skipped by policy, e.g. the
	// restore re-debit on an insufficient user balance.
	Warning string
}

// UpdateStatus moves the order to newStatus. The write is conditional on the
// current status, so a concurrent duplicate cancel loses the race and gets
// ErrAlreadyProcessed instead of refunding twice.
//
// When a compensation step fails outright (refund on cancel, re-debit on
// restore), the status change stays committed and a PartialFailureError names
// the amount and user needing manual correction. The insufficient-balance
// skip on restore is policy, not failure, and comes back as a warning.
func (s *OrderService) UpdateStatus(orderId int, newStatus, note string) (StatusUpdateResult, error) {
	var order models.Order
	if err := s.DB.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusUpdateResult{}, common.ErrNotFound
		}
		return StatusUpdateResult{}, fmt.Errorf("%w: %v", common.ErrTransientIO, err)
	}

	if !transitionAllowed(order.Status, newStatus) {
		return StatusUpdateResult{}, fmt.Errorf("%w: order is %s, cannot move to %s",
			common.ErrAlreadyProcessed, order.Status, newStatus)
	}

	priorStatus := order.Status

	res := s.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderId, priorStatus).
		Updates(map[string]interface{}{
			"status": newStatus,
			"note":   note,
		})
	if res.Error != nil {
		return StatusUpdateResult{}, res.Error
	}
	if res.RowsAffected == 0 {
		return StatusUpdateResult{}, common.ErrAlreadyProcessed
	}

	result := StatusUpdateResult{}

	if newStatus == models.OrderStatusCancelled && order.PointCost > 0 && order.UserId != "" {
		if err := s.refundUser(order); err != nil {
			// Status change already committed. Flag for manual reconciliation.
			if fetchErr := s.DB.First(&result.Order, orderId).Error; fetchErr != nil {
				result.Order = order
			}
			return result, &common.PartialFailureError{
				Amount:   order.PointCost,
				UserId:   order.UserId,
				Nickname: order.UserNickname,
				Reason:   err,
			}
		}
		s.restockProduct(order)
	}

	if newStatus == models.OrderStatusPending && priorStatus == models.OrderStatusCancelled &&
		order.PointCost > 0 && order.UserId != "" {
		warning, err := s.redebitUser(order)
		if err != nil {
			// Status change already committed. Flag for manual reconciliation.
			if fetchErr := s.DB.First(&result.Order, orderId).Error; fetchErr != nil {
				result.Order = order
			}
			return result, &common.PartialFailureError{
				Amount:   order.PointCost,
				UserId:   order.UserId,
				Nickname: order.UserNickname,
				Reason:   err,
			}
		}
		result.Warning = warning
	}

	if err := s.DB.First(&result.Order, orderId).Error; err != nil {
		return result, err
	}
	return result, nil
}

// refundUser credits the user's personal points and appends a refund history
// row in one transaction. A missing user record fails the whole refund.
func (s *OrderService) refundUser(order models.Order) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", order.UserId).
			UpdateColumn("points", gorm.Expr("points + ?", order.PointCost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: user %s", common.ErrNotFound, order.UserId)
		}

		history := models.PointHistory{
			UserId:      order.UserId,
			Type:        models.PointTypeRefund,
			Amount:      order.PointCost,
			Description: fmt.Sprintf("Order cancel refund - %s", order.ProductName),
			OrderId:     order.Reference,
		}
		return tx.Create(&history).Error
	})
}

// restockProduct puts one unit back unless the order used a synthetic default
// product id. Stock errors are logged only; the refund already committed.
func (s *OrderService) restockProduct(order models.Order) {
	if order.ProductId == "" || strings.HasPrefix(order.ProductId, models.DefaultProductPrefix) {
		return
	}
	err := s.DB.Model(&models.Product{}).
		Where("id = ?", order.ProductId).
		UpdateColumn("stock", gorm.Expr("stock + 1")).Error
	if err != nil {
		log.Printf("Order %s: restock failed for product %s: %v", order.Reference, order.ProductId, err)
	}
}

// redebitUser takes the refunded points back on a cancelled->pending restore.
// The debit is conditional on the user still holding enough points; when they
// do not, the debit is skipped and a warning is returned while the status
// change stands. That asymmetry is observed product behavior kept on purpose;
// see DESIGN.md.
func (s *OrderService) redebitUser(order models.Order) (string, error) {
	var warning string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND points >= ?", order.UserId, order.PointCost).
			UpdateColumn("points", gorm.Expr("points - ?", order.PointCost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var user models.User
			balance := int64(0)
			if err := tx.Where("id = ?", order.UserId).First(&user).Error; err == nil {
				balance = user.Points
			}
			warning = fmt.Sprintf("insufficient balance to re-debit %dP from %s (balance: %dP, debit skipped)",
				order.PointCost, order.UserId, balance)
			return nil
		}

		history := models.PointHistory{
			UserId:      order.UserId,
			Type:        models.PointTypeUse,
			Amount:      -order.PointCost,
			Description: fmt.Sprintf("Order restore re-debit - %s", order.ProductName),
			OrderId:     order.Reference,
		}
		return tx.Create(&history).Error
	})
	return warning, err
}

type ListOrdersDTO struct {
	Status string
	UserId string
	Page   int
	Limit  int
}

func (s *OrderService) ListOrders(data ListOrdersDTO) (common.PaginationResult, error) {
	limit := data.Limit
	if limit <= 0 {
		limit = 50
	}
	page := data.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	query := s.DB.Model(&models.Order{})
	if data.Status != "" {
		query = query.Where("status = ?", data.Status)
	}
	if data.UserId != "" {
		query = query.Where("user_id = ?", data.UserId)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.PaginationResult{}, err
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return common.PaginationResult{}, err
	}

	return common.PaginateResponse(orders, total, page, limit, "Orders fetched"), nil
}

type OrderStats struct {
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
}

// Stats feeds the admin dashboard counters.
func (s *OrderService) Stats() (OrderStats, error) {
	var stats OrderStats
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := s.DB.Model(&models.Order{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return stats, err
	}
	for _, r := range rows {
		switch r.Status {
		case models.OrderStatusPending:
			stats.Pending = r.Total
		case models.OrderStatusProcessing:
			stats.Processing = r.Total
		case models.OrderStatusCompleted:
			stats.Completed = r.Total
		case models.OrderStatusCancelled:
			stats.Cancelled = r.Total
		}
	}
	return stats, nil
}
