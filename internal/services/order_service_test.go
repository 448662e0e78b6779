package services

import (
	"errors"
	"testing"

	"owner-wallet-service/internal/models"
	"owner-wallet-service/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestOrder(t *testing.T, db *gorm.DB, userId, productId string, cost int64, status string) models.Order {
	t.Helper()
	order := models.Order{
		Reference:   "ord-" + t.Name() + "-" + status,
		UserId:      userId,
		ProductId:   productId,
		ProductName: "Americano",
		PointCost:   cost,
		Status:      status,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}
	return order
}

func userPoints(t *testing.T, db *gorm.DB, userId string) int64 {
	t.Helper()
	var user models.User
	if err := db.Where("id = ?", userId).First(&user).Error; err != nil {
		t.Fatalf("Failed to load user %s: %v", userId, err)
	}
	return user.Points
}

func TestCancelRefundsUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestUser(t, db, "user-1", 200)
	product := models.Product{ID: "prod-1", Name: "Americano", Stock: 3}
	require.NoError(t, db.Create(&product).Error)
	order := createTestOrder(t, db, "user-1", "prod-1", 500, models.OrderStatusPending)

	result, err := svc.UpdateStatus(order.ID, models.OrderStatusCancelled, "out of stock")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, result.Order.Status)
	assert.Empty(t, result.Warning)

	// Points back, refund history row, stock back.
	assert.Equal(t, int64(700), userPoints(t, db, "user-1"))

	var history models.PointHistory
	require.NoError(t, db.Where("user_id = ? AND type = ?", "user-1", models.PointTypeRefund).First(&history).Error)
	assert.Equal(t, int64(500), history.Amount)
	assert.Equal(t, order.Reference, history.OrderId)

	var reloaded models.Product
	require.NoError(t, db.Where("id = ?", "prod-1").First(&reloaded).Error)
	assert.Equal(t, 4, reloaded.Stock)
}

func TestCancelTwiceRefundsOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestUser(t, db, "user-1", 0)
	order := createTestOrder(t, db, "user-1", "", 500, models.OrderStatusPending)

	_, err := svc.UpdateStatus(order.ID, models.OrderStatusCancelled, "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(order.ID, models.OrderStatusCancelled, "")
	assert.ErrorIs(t, err, common.ErrAlreadyProcessed)

	assert.Equal(t, int64(500), userPoints(t, db, "user-1"))
}

func TestCancelSkipsRestockForDefaultProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestUser(t, db, "user-1", 0)
	product := models.Product{ID: "default_americano", Name: "Americano", Stock: 7}
	require.NoError(t, db.Create(&product).Error)
	order := createTestOrder(t, db, "user-1", "default_americano", 300, models.OrderStatusProcessing)

	_, err := svc.UpdateStatus(order.ID, models.OrderStatusCancelled, "")
	require.NoError(t, err)

	// Refund applied but stock untouched.
	assert.Equal(t, int64(300), userPoints(t, db, "user-1"))
	var reloaded models.Product
	require.NoError(t, db.Where("id = ?", "default_americano").First(&reloaded).Error)
	assert.Equal(t, 7, reloaded.Stock)
}

func TestCancelMissingUserPartialFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	order := createTestOrder(t, db, "ghost-user", "", 500, models.OrderStatusPending)

	result, err := svc.UpdateStatus(order.ID, models.OrderStatusCancelled, "")
	require.Error(t, err)

	var partial *common.PartialFailureError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, int64(500), partial.Amount)
	assert.Equal(t, "ghost-user", partial.UserId)
	assert.True(t, errors.Is(partial.Reason, common.ErrNotFound))

	// Status change already committed; only the refund needs manual fixing.
	assert.Equal(t, models.OrderStatusCancelled, result.Order.Status)
	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, reloaded.Status)
}

func TestRestoreRedebitsUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestUser(t, db, "user-1", 800)
	order := createTestOrder(t, db, "user-1", "", 500, models.OrderStatusCancelled)

	result, err := svc.UpdateStatus(order.ID, models.OrderStatusPending, "restored")
	require.NoError(t, err)
	assert.Empty(t, result.Warning)
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)

	assert.Equal(t, int64(300), userPoints(t, db, "user-1"))

	var history models.PointHistory
	require.NoError(t, db.Where("user_id = ? AND type = ?", "user-1", models.PointTypeUse).First(&history).Error)
	assert.Equal(t, int64(-500), history.Amount)
}

func TestRestoreInsufficientBalanceSkipsDebit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestUser(t, db, "user-1", 100)
	order := createTestOrder(t, db, "user-1", "", 500, models.OrderStatusCancelled)

	result, err := svc.UpdateStatus(order.ID, models.OrderStatusPending, "")
	require.NoError(t, err)

	// Status flips anyway; the skipped debit is surfaced as a warning.
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	assert.NotEmpty(t, result.Warning)
	assert.Contains(t, result.Warning, "insufficient balance")
	assert.Equal(t, int64(100), userPoints(t, db, "user-1"))

	// No debit history row was written.
	var count int64
	db.Model(&models.PointHistory{}).Where("user_id = ?", "user-1").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRestoreRedebitFailurePartialFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestUser(t, db, "user-1", 800)
	order := createTestOrder(t, db, "user-1", "", 500, models.OrderStatusCancelled)

	// Break the history table so the re-debit transaction fails outright.
	require.NoError(t, db.Migrator().DropTable(&models.PointHistory{}))

	result, err := svc.UpdateStatus(order.ID, models.OrderStatusPending, "")
	require.Error(t, err)

	var partial *common.PartialFailureError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, int64(500), partial.Amount)
	assert.Equal(t, "user-1", partial.UserId)

	// Status change already committed; the failed debit rolled back and needs
	// manual correction.
	assert.Equal(t, models.OrderStatusPending, result.Order.Status)
	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, reloaded.Status)
	assert.Equal(t, int64(800), userPoints(t, db, "user-1"))
}

func TestInvalidTransitionsRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestUser(t, db, "user-1", 0)
	order := createTestOrder(t, db, "user-1", "", 500, models.OrderStatusCompleted)

	// completed cannot cancel directly.
	_, err := svc.UpdateStatus(order.ID, models.OrderStatusCancelled, "")
	assert.ErrorIs(t, err, common.ErrAlreadyProcessed)

	// cancelled cannot complete directly.
	cancelled := createTestOrder(t, db, "user-1", "", 0, models.OrderStatusCancelled)
	_, err = svc.UpdateStatus(cancelled.ID, models.OrderStatusCompleted, "")
	assert.ErrorIs(t, err, common.ErrAlreadyProcessed)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	_, err := svc.UpdateStatus(9999, models.OrderStatusProcessing, "")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestOrderStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestOrder(t, db, "u", "", 0, models.OrderStatusPending)
	order := models.Order{Reference: "ord-stats-2", Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)
	completed := models.Order{Reference: "ord-stats-3", Status: models.OrderStatusCompleted}
	require.NoError(t, db.Create(&completed).Error)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(0), stats.Cancelled)
}

func TestListOrdersFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOrderService(db)

	createTestOrder(t, db, "user-1", "", 0, models.OrderStatusPending)
	createTestOrder(t, db, "user-2", "", 0, models.OrderStatusCompleted)

	byUser, err := svc.ListOrders(ListOrdersDTO{UserId: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), byUser.Count)

	byStatus, err := svc.ListOrders(ListOrdersDTO{Status: models.OrderStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, int64(1), byStatus.Count)
}
