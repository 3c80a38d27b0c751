package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iuran-warga/backend/internal/integration/persistence/model"
)

// newTestDB opens an in-memory sqlite database with all models migrated.
// A single connection keeps the shared in-memory state alive for the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.BillingCycleModel{},
		&model.PaymentClaimModel{},
		&model.DirectoryEntryModel{},
		&model.LedgerEntryModel{},
		&model.PublishedPeriodModel{},
		&model.NotificationModel{},
		&model.NotificationDismissalModel{},
		&model.DeviceTokenModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
