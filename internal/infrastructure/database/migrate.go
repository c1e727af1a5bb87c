package database

import (
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.Consultant{},
		&model.Customer{},
		&model.Subscription{},
		&model.CustomerSubscription{},
		&model.Card{},
		&model.SessionPTType{},
		&model.CustomerPT{},
		&model.CustomerPTHistory{},
		&model.SessionPT{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	// Create custom indexes that GORM doesn't handle automatically
	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

func createCustomIndexes(db *gorm.DB) error {
	// At most one enabled card per customer
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS unique_active_card_per_customer ON cards (customer_id) WHERE enabled = true`).Error; err != nil {
		return err
	}

	// Dashboard ordering on the mirrored customer base
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_customers_last_access ON customers (last_access_date DESC NULLS LAST) WHERE enabled = true`).Error; err != nil {
		return err
	}

	// Sale expiry lookups for the detail view
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_customer_subscriptions_end_date ON customer_subscriptions (customer_id, end_date)`).Error; err != nil {
		return err
	}

	return nil
}
