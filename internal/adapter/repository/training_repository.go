package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivePackage is the active PT package of a customer together with its
// session bookkeeping.
type ActivePackage struct {
	Package            model.CustomerPT
	Sessions           []model.SessionPT
	IntegrationHistory []model.CustomerPTHistory
	TotalSession       int
	SessionNumber      int
}

// TrainingRepository handles personal training packages and sessions
type TrainingRepository interface {
	GetActivePackage(ctx context.Context, customerID int64) (*ActivePackage, error)
	GetCompletedPackages(ctx context.Context, customerID int64) ([]model.CustomerPT, error)
	CreatePackage(ctx context.Context, pt *model.CustomerPT) error
	UpgradePackage(ctx context.Context, history *model.CustomerPTHistory, sessionPTTypeID int64) error
	CreateSession(ctx context.Context, session *model.SessionPT) error
	DeleteSession(ctx context.Context, customerPTID, sessionID int64) error
}

type trainingRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db *gorm.DB, logger *zap.Logger) TrainingRepository {
	return &trainingRepository{
		db:     db,
		logger: logger,
	}
}

// GetActivePackage retrieves the open PT package of a customer, with sessions
// and added-session history. TotalSession counts the package size plus every
// integration; SessionNumber counts performed sessions.
func (r *trainingRepository) GetActivePackage(ctx context.Context, customerID int64) (*ActivePackage, error) {
	var pt model.CustomerPT

	err := r.db.WithContext(ctx).
		Preload("Type").
		Where("customer_id = ? AND completed = ?", customerID, false).
		Order("date_start DESC").
		First(&pt).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get active package",
			zap.Int64("customer_id", customerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get active package: %w", err)
	}

	active := &ActivePackage{Package: pt}

	if err := r.db.WithContext(ctx).
		Where("customer_pt_id = ?", pt.ID).
		Order("date_start ASC").
		Find(&active.Sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("customer_pt_id = ?", pt.ID).
		Order("date_start ASC").
		Find(&active.IntegrationHistory).Error; err != nil {
		return nil, fmt.Errorf("failed to load integration history: %w", err)
	}

	if pt.Type != nil {
		active.TotalSession = pt.Type.TotalSession
	}
	for _, h := range active.IntegrationHistory {
		active.TotalSession += h.SessionAdded
	}
	active.SessionNumber = len(active.Sessions)

	return active, nil
}

// GetCompletedPackages lists the finished PT packages of a customer
func (r *trainingRepository) GetCompletedPackages(ctx context.Context, customerID int64) ([]model.CustomerPT, error) {
	var packages []model.CustomerPT

	err := r.db.WithContext(ctx).
		Preload("Type").
		Where("customer_id = ? AND completed = ?", customerID, true).
		Order("date_start DESC").
		Find(&packages).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list completed packages: %w", err)
	}

	return packages, nil
}

// CreatePackage inserts a new PT package
func (r *trainingRepository) CreatePackage(ctx context.Context, pt *model.CustomerPT) error {
	if err := r.db.WithContext(ctx).Create(pt).Error; err != nil {
		r.logger.Error("Failed to create PT package",
			zap.Int64("customer_id", pt.CustomerId),
			zap.Error(err))
		return fmt.Errorf("failed to create PT package: %w", err)
	}
	return nil
}

// UpgradePackage records added sessions and switches the package type
func (r *trainingRepository) UpgradePackage(ctx context.Context, history *model.CustomerPTHistory, sessionPTTypeID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("failed to record package upgrade: %w", err)
		}

		return tx.Model(&model.CustomerPT{}).
			Where("id = ?", history.CustomerPTId).
			Update("session_pt_type_id", sessionPTTypeID).Error
	})
}

// CreateSession inserts a performed session and marks the package completed
// once the session count reaches the package total.
func (r *trainingRepository) CreateSession(ctx context.Context, session *model.SessionPT) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		var pt model.CustomerPT
		if err := tx.Preload("Type").
			Where("id = ?", session.CustomerPTId).
			First(&pt).Error; err != nil {
			return fmt.Errorf("failed to load package: %w", err)
		}

		var performed int64
		if err := tx.Model(&model.SessionPT{}).
			Where("customer_pt_id = ?", pt.ID).
			Count(&performed).Error; err != nil {
			return fmt.Errorf("failed to count sessions: %w", err)
		}

		var added int64
		if err := tx.Model(&model.CustomerPTHistory{}).
			Where("customer_pt_id = ?", pt.ID).
			Select("COALESCE(SUM(session_added), 0)").
			Scan(&added).Error; err != nil {
			return fmt.Errorf("failed to sum added sessions: %w", err)
		}

		total := int64(0)
		if pt.Type != nil {
			total = int64(pt.Type.TotalSession)
		}
		total += added

		if performed >= total {
			return tx.Model(&model.CustomerPT{}).
				Where("id = ?", pt.ID).
				Update("completed", true).Error
		}

		return nil
	})
}

// DeleteSession removes a performed session and reopens the package
func (r *trainingRepository) DeleteSession(ctx context.Context, customerPTID, sessionID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SessionPT{}, sessionID).Error; err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}

		return tx.Model(&model.CustomerPT{}).
			Where("id = ?", customerPTID).
			Update("completed", false).Error
	})
}
