package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DashboardFilter narrows the customer dashboard listing.
type DashboardFilter struct {
	CustomerName       *string
	TrainingOperatorId *int64
}

// CustomerRepository handles mirrored customer storage
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]model.Customer, error)
	GetByIdWinC(ctx context.Context, idWinC int64) (*model.Customer, error)
	Dashboard(ctx context.Context, filter DashboardFilter) ([]model.Customer, error)
	BulkUpsert(ctx context.Context, customers []model.Customer) (int64, error)
}

type customerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB, logger *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// GetAll loads the full customer snapshot used for diffing during sync
func (r *customerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer

	err := r.db.WithContext(ctx).Find(&customers).Error
	if err != nil {
		r.logger.Error("Failed to load customer snapshot", zap.Error(err))
		return nil, fmt.Errorf("failed to load customer snapshot: %w", err)
	}

	return customers, nil
}

// GetByIdWinC retrieves one customer by wellness id
func (r *customerRepository) GetByIdWinC(ctx context.Context, idWinC int64) (*model.Customer, error) {
	var customer model.Customer

	err := r.db.WithContext(ctx).
		Where("id_winc = ?", idWinC).
		First(&customer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get customer",
			zap.Int64("id_winc", idWinC),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// Dashboard lists enabled customers matching the filter, most recent access first
func (r *customerRepository) Dashboard(ctx context.Context, filter DashboardFilter) ([]model.Customer, error) {
	query := r.db.WithContext(ctx).
		Where("enabled = ?", true)

	if filter.CustomerName != nil {
		query = query.Where("name ILIKE ?", "%"+*filter.CustomerName+"%")
	}
	if filter.TrainingOperatorId != nil {
		query = query.Where("training_operator_id = ?", *filter.TrainingOperatorId)
	}

	var customers []model.Customer
	err := query.
		Order("last_access_date DESC NULLS LAST").
		Find(&customers).Error

	if err != nil {
		r.logger.Error("Failed to list dashboard customers", zap.Error(err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

// BulkUpsert writes the customer batch keyed by id_winc, returning the
// affected row count. Empty batches never touch the database.
func (r *customerRepository) BulkUpsert(ctx context.Context, customers []model.Customer) (int64, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id_winc"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "birth_date", "medical_certificate_validity",
				"last_access_date", "training_operator_id", "enabled", "updated_at",
			}),
		}).
		Create(&customers)

	if result.Error != nil {
		r.logger.Error("Failed to upsert customers",
			zap.Int("count", len(customers)),
			zap.Error(result.Error))
		return 0, fmt.Errorf("failed to upsert customers: %w", result.Error)
	}

	return result.RowsAffected, nil
}
