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

func TestConsultantSyncService_Run(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("writes active consultants with split names", func(t *testing.T) {
		fake := newFakeWellness()
		defer fake.Close()

		fake.consultants = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"itemsGroups":[{"groupLabel":"Staff","items":[
				{"value":"10","label":"Anna Rossi","active":true},
				{"value":"11","label":"Luca De Santis","active":true},
				{"value":"12","label":"Dismissed Guy","active":false},
				{"value":"13","label":"Cher","active":true}
			]}]}}`))
		}

		mockRepo := new(MockConsultantRepository)
		mockRepo.On("BulkUpsert", ctx, []model.Consultant{
			{IdWinC: 10, Name: "Anna", Surname: "Rossi", Enabled: true},
			{IdWinC: 11, Name: "Luca", Surname: "De Santis", Enabled: true},
			{IdWinC: 13, Name: "Cher", Surname: "", Enabled: true},
		}).Return(int64(3), nil)

		service := usecase.NewConsultantSyncService(fake.Client(), mockRepo, logger)

		report, err := service.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, 4, report.Fetched)
		assert.Equal(t, int64(3), report.Written)
		assert.Equal(t, 1, report.Skipped)
		mockRepo.AssertExpectations(t)
	})

	t.Run("upstream failure aborts before writing", func(t *testing.T) {
		fake := newFakeWellness()
		defer fake.Close()

		fake.consultants = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}

		mockRepo := new(MockConsultantRepository)
		service := usecase.NewConsultantSyncService(fake.Client(), mockRepo, logger)

		_, err := service.Run(ctx)

		require.Error(t, err)
		mockRepo.AssertNotCalled(t, "BulkUpsert")
	})
}
