package repository

import (
	"context"
	"fmt"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionRepository handles subscription definition storage
type SubscriptionRepository interface {
	GetValidForMatching(ctx context.Context) ([]model.Subscription, error)
	BulkUpsert(ctx context.Context, subscriptions []model.Subscription) (int64, error)
	DisableMissing(ctx context.Context, presentIDs []int64) (int64, error)
}

type subscriptionRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB, logger *zap.Logger) SubscriptionRepository {
	return &subscriptionRepository{
		db:     db,
		logger: logger,
	}
}

// GetValidForMatching loads the definitions that take part in sale matching
func (r *subscriptionRepository) GetValidForMatching(ctx context.Context) ([]model.Subscription, error) {
	var subscriptions []model.Subscription

	err := r.db.WithContext(ctx).
		Where("valid_as_subscription = ?", true).
		Find(&subscriptions).Error

	if err != nil {
		r.logger.Error("Failed to load subscription snapshot", zap.Error(err))
		return nil, fmt.Errorf("failed to load subscription snapshot: %w", err)
	}

	return subscriptions, nil
}

// BulkUpsert writes the definition batch keyed by id_winc, returning the
// affected row count. Empty batches never touch the database.
func (r *subscriptionRepository) BulkUpsert(ctx context.Context, subscriptions []model.Subscription) (int64, error) {
	if len(subscriptions) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id_winc"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"description", "enabled", "updated_at",
			}),
		}).
		Create(&subscriptions)

	if result.Error != nil {
		r.logger.Error("Failed to upsert subscriptions",
			zap.Int("count", len(subscriptions)),
			zap.Error(result.Error))
		return 0, fmt.Errorf("failed to upsert subscriptions: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// DisableMissing soft-disables definitions absent from the active feed.
// Nothing is ever hard-deleted; dashboards keep resolving old sales.
func (r *subscriptionRepository) DisableMissing(ctx context.Context, presentIDs []int64) (int64, error) {
	if len(presentIDs) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("enabled = ?", true).
		Where("id_winc NOT IN ?", presentIDs).
		Update("enabled", false)

	if result.Error != nil {
		r.logger.Error("Failed to disable missing subscriptions", zap.Error(result.Error))
		return 0, fmt.Errorf("failed to disable missing subscriptions: %w", result.Error)
	}

	return result.RowsAffected, nil
}
