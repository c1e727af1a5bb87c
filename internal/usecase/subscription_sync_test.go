package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubscriptionSyncService_Run(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("upserts the catalog and disables absent definitions", func(t *testing.T) {
		fake := newFakeWellness()
		defer fake.Close()

		fake.packages = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"itemsGroups":[{"groupLabel":"Packages","items":[
				{"value":"100","label":"Open Gym Annual","active":true},
				{"value":"200","label":"Open Gym Monthly","active":false}
			]}]}}`))
		}

		mockRepo := new(MockSubscriptionRepository)
		mockRepo.On("BulkUpsert", ctx, []model.Subscription{
			{IdWinC: 100, Description: "Open Gym Annual", Enabled: true, ValidAsSubscription: true},
			{IdWinC: 200, Description: "Open Gym Monthly", Enabled: false, ValidAsSubscription: true},
		}).Return(int64(2), nil)
		mockRepo.On("DisableMissing", ctx, []int64{100, 200}).Return(int64(1), nil)

		service := usecase.NewSubscriptionSyncService(fake.Client(), mockRepo, logger)

		report, err := service.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, report.Fetched)
		assert.Equal(t, int64(2), report.Written)
		mockRepo.AssertExpectations(t)
	})

	t.Run("malformed catalog item fails validation", func(t *testing.T) {
		fake := newFakeWellness()
		defer fake.Close()

		fake.packages = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"itemsGroups":[{"items":[
				{"value":"not-an-id","label":"Broken","active":true}
			]}]}}`))
		}

		mockRepo := new(MockSubscriptionRepository)
		service := usecase.NewSubscriptionSyncService(fake.Client(), mockRepo, logger)

		_, err := service.Run(ctx)

		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "BulkUpsert")
	})
}
