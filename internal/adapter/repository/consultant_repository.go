package repository

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/gymlink/wellness-backend/internal/domain/errors"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConsultantRepository handles consultant (operator) storage
type ConsultantRepository interface {
	GetAllIDs(ctx context.Context) ([]int64, error)
	GetByEmail(ctx context.Context, email string) (*model.Consultant, error)
	BulkUpsert(ctx context.Context, consultants []model.Consultant) (int64, error)
}

type consultantRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewConsultantRepository creates a new consultant repository
func NewConsultantRepository(db *gorm.DB, logger *zap.Logger) ConsultantRepository {
	return &consultantRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllIDs retrieves the wellness ids of every known consultant
func (r *consultantRepository) GetAllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64

	err := r.db.WithContext(ctx).
		Model(&model.Consultant{}).
		Pluck("id_winc", &ids).Error

	if err != nil {
		r.logger.Error("Failed to get consultant ids", zap.Error(err))
		return nil, fmt.Errorf("failed to get consultant ids: %w", err)
	}

	return ids, nil
}

// GetByEmail retrieves an enabled consultant by email
func (r *consultantRepository) GetByEmail(ctx context.Context, email string) (*model.Consultant, error) {
	var consultant model.Consultant

	err := r.db.WithContext(ctx).
		Where("email = ? AND enabled = ?", email, true).
		First(&consultant).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrConsultantNotFound
		}
		r.logger.Error("Failed to get consultant by email",
			zap.String("email", email),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get consultant: %w", err)
	}

	return &consultant, nil
}

// BulkUpsert writes the consultant batch keyed by id_winc, returning the
// affected row count. Empty batches never touch the database.
func (r *consultantRepository) BulkUpsert(ctx context.Context, consultants []model.Consultant) (int64, error) {
	if len(consultants) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id_winc"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "surname", "enabled", "updated_at",
			}),
		}).
		Create(&consultants)

	if result.Error != nil {
		r.logger.Error("Failed to upsert consultants",
			zap.Int("count", len(consultants)),
			zap.Error(result.Error))
		return 0, fmt.Errorf("failed to upsert consultants: %w", result.Error)
	}

	return result.RowsAffected, nil
}
