package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomerSubscriptionRepository handles customer subscription (sale) storage
type CustomerSubscriptionRepository interface {
	GetActiveForCustomer(ctx context.Context, customerIdWinC int64, at time.Time) ([]model.CustomerSubscription, error)
	BulkUpsert(ctx context.Context, sales []model.CustomerSubscription) (int64, error)
}

type customerSubscriptionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCustomerSubscriptionRepository creates a new customer subscription repository
func NewCustomerSubscriptionRepository(db *gorm.DB, logger *zap.Logger) CustomerSubscriptionRepository {
	return &customerSubscriptionRepository{
		db:     db,
		logger: logger,
	}
}

// GetActiveForCustomer lists the sales of one customer still running at the
// given instant
func (r *customerSubscriptionRepository) GetActiveForCustomer(ctx context.Context, customerIdWinC int64, at time.Time) ([]model.CustomerSubscription, error) {
	var sales []model.CustomerSubscription

	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerIdWinC).
		Where("end_date >= ?", at).
		Order("end_date DESC").
		Find(&sales).Error

	if err != nil {
		r.logger.Error("Failed to list customer subscriptions",
			zap.Int64("customer_id", customerIdWinC),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list customer subscriptions: %w", err)
	}

	return sales, nil
}

// BulkUpsert writes the sale batch keyed by id_winc (the upstream sale id),
// returning the affected row count. Empty batches never touch the database.
func (r *customerSubscriptionRepository) BulkUpsert(ctx context.Context, sales []model.CustomerSubscription) (int64, error) {
	if len(sales) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id_winc"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"customer_id", "subscription_id", "sale_date",
				"start_date", "end_date", "renewed", "updated_at",
			}),
		}).
		Create(&sales)

	if result.Error != nil {
		r.logger.Error("Failed to upsert customer subscriptions",
			zap.Int("count", len(sales)),
			zap.Error(result.Error))
		return 0, fmt.Errorf("failed to upsert customer subscriptions: %w", result.Error)
	}

	return result.RowsAffected, nil
}
