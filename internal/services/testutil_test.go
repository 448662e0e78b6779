package services

import (
	"fmt"
	"testing"

	"owner-wallet-service/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database named after the test so that
// every test gets its own isolated schema. The shared cache keeps gorm's
// connection pool pointed at the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Wallet{},
		&models.WalletTransaction{},
		&models.ChargeRequest{},
		&models.Store{},
		&models.SponsorApplication{},
		&models.SponsorLevelPayment{},
		&models.Order{},
		&models.User{},
		&models.PointHistory{},
		&models.Product{},
		&models.Notification{},
		&models.AppConfig{},
		&models.BonusPayment{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, id string, points int64) {
	t.Helper()
	if err := db.Create(&models.User{ID: id, Nickname: "user-" + id, Points: points}).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

func walletBalance(t *testing.T, db *gorm.DB, ownerId string) int64 {
	t.Helper()
	var wallet models.Wallet
	if err := db.Where("owner_id = ?", ownerId).First(&wallet).Error; err != nil {
		t.Fatalf("Failed to load wallet for %s: %v", ownerId, err)
	}
	return wallet.Balance
}
