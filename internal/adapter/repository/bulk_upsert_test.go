package repository

import (
	"context"
	"testing"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Empty batches must never reach the database; a nil connection proves it.

func TestBulkUpsert_EmptyBatchIsANoOp(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("consultants", func(t *testing.T) {
		repo := NewConsultantRepository(nil, logger)
		written, err := repo.BulkUpsert(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, written)
	})

	t.Run("customers", func(t *testing.T) {
		repo := NewCustomerRepository(nil, logger)
		written, err := repo.BulkUpsert(ctx, []model.Customer{})
		require.NoError(t, err)
		assert.Zero(t, written)
	})

	t.Run("subscriptions", func(t *testing.T) {
		repo := NewSubscriptionRepository(nil, logger)
		written, err := repo.BulkUpsert(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, written)
	})

	t.Run("customer subscriptions", func(t *testing.T) {
		repo := NewCustomerSubscriptionRepository(nil, logger)
		written, err := repo.BulkUpsert(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, written)
	})
}

func TestDisableMissing_EmptyFeedIsANoOp(t *testing.T) {
	repo := NewSubscriptionRepository(nil, zap.NewNop())

	disabled, err := repo.DisableMissing(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, disabled)
}
