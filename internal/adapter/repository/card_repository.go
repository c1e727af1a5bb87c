package repository

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/gymlink/wellness-backend/internal/domain/errors"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardRepository handles training card storage
type CardRepository interface {
	Create(ctx context.Context, card *model.Card) error
	GetActiveForCustomer(ctx context.Context, customerID int64) (*model.Card, error)
	Reschedule(ctx context.Context, cardID int64) error
	Undo(ctx context.Context, cardID int64) error
}

type cardRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB, logger *zap.Logger) CardRepository {
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new card, disabling whatever card was active for the
// customer before it.
func (r *cardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Card{}).
			Where("customer_id = ? AND enabled = ?", card.CustomerId, true).
			Update("enabled", false).Error
		if err != nil {
			return fmt.Errorf("failed to disable previous card: %w", err)
		}

		if err := tx.Create(card).Error; err != nil {
			r.logger.Error("Failed to create card",
				zap.Int64("customer_id", card.CustomerId),
				zap.Error(err))
			return fmt.Errorf("failed to create card: %w", err)
		}

		return nil
	})
}

// GetActiveForCustomer retrieves the enabled card of one customer
func (r *cardRepository) GetActiveForCustomer(ctx context.Context, customerID int64) (*model.Card, error) {
	var card model.Card

	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND enabled = ?", customerID, true).
		First(&card).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active card: %w", err)
	}

	return &card, nil
}

// Reschedule flags a card as rescheduled
func (r *cardRepository) Reschedule(ctx context.Context, cardID int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Card{}).
		Where("id = ?", cardID).
		Update("rescheduled", true)

	if result.Error != nil {
		return fmt.Errorf("failed to reschedule card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrCardNotFound
	}

	return nil
}

// Undo reverts the last operation on a card: a rescheduled card loses its
// flag, an ordinary card is deleted and the latest disabled card of the same
// customer and subscription is re-enabled in its place.
func (r *cardRepository) Undo(ctx context.Context, cardID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card model.Card
		if err := tx.Where("id = ?", cardID).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainErrors.ErrCardNotFound
			}
			return fmt.Errorf("failed to get card: %w", err)
		}

		if card.Rescheduled {
			return tx.Model(&model.Card{}).
				Where("id = ?", cardID).
				Update("rescheduled", false).Error
		}

		if err := tx.Delete(&model.Card{}, cardID).Error; err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}

		var previous model.Card
		err := tx.
			Where("customer_id = ?", card.CustomerId).
			Where("customer_subscription_id = ?", card.CustomerSubscriptionId).
			Where("enabled = ?", false).
			Order("date_start DESC").
			First(&previous).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to find previous card: %w", err)
		}

		return tx.Model(&model.Card{}).
			Where("id = ?", previous.ID).
			Update("enabled", true).Error
	})
}
