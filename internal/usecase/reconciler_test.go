package usecase_test

import (
	"testing"
	"time"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"github.com/gymlink/wellness-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func int64Ptr(v int64) *int64 { return &v }

func TestCustomerReconciler_Reconcile(t *testing.T) {
	reconciler := usecase.CustomerReconciler{}
	access := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

	t.Run("unknown customer becomes a candidate with default operator", func(t *testing.T) {
		index := reconciler.Index(nil)

		candidates := reconciler.Reconcile([]wellness.CustomerRecord{
			{CustomerID: 11, CustomerName: "Anna Rossi", LastAccess: timePtr(access)},
		}, index)

		require.Len(t, candidates, 1)
		assert.Equal(t, int64(11), candidates[0].IdWinC)
		assert.Equal(t, int64(1), candidates[0].TrainingOperatorId)
		assert.True(t, candidates[0].Enabled)
	})

	t.Run("unknown customer takes the feed training operator when present", func(t *testing.T) {
		index := reconciler.Index(nil)

		candidates := reconciler.Reconcile([]wellness.CustomerRecord{
			{CustomerID: 11, CustomerName: "Anna Rossi", TrainingReferenceOperatorID: int64Ptr(7)},
		}, index)

		require.Len(t, candidates, 1)
		assert.Equal(t, int64(7), candidates[0].TrainingOperatorId)
	})

	t.Run("existing customer keeps its local operator", func(t *testing.T) {
		index := reconciler.Index([]model.Customer{
			{IdWinC: 11, Name: "Anna Rossi", TrainingOperatorId: 5},
		})

		candidates := reconciler.Reconcile([]wellness.CustomerRecord{
			{
				CustomerID:                  11,
				CustomerName:                "Anna Rossi",
				LastAccess:                  timePtr(access),
				TrainingReferenceOperatorID: int64Ptr(9),
			},
		}, index)

		require.Len(t, candidates, 1)
		assert.Equal(t, int64(5), candidates[0].TrainingOperatorId)
	})

	t.Run("unchanged customer is dropped", func(t *testing.T) {
		index := reconciler.Index([]model.Customer{
			{IdWinC: 11, Name: "Anna Rossi", TrainingOperatorId: 1, LastAccessDate: timePtr(access)},
		})

		candidates := reconciler.Reconcile([]wellness.CustomerRecord{
			{CustomerID: 11, CustomerName: "Anna Rossi", LastAccess: timePtr(access)},
		}, index)

		assert.Empty(t, candidates)
	})

	t.Run("time of day does not count as a change", func(t *testing.T) {
		index := reconciler.Index([]model.Customer{
			{IdWinC: 11, Name: "Anna Rossi", TrainingOperatorId: 1, LastAccessDate: timePtr(access)},
		})

		later := access.Add(5 * time.Hour)
		candidates := reconciler.Reconcile([]wellness.CustomerRecord{
			{CustomerID: 11, CustomerName: "Anna Rossi", LastAccess: timePtr(later)},
		}, index)

		assert.Empty(t, candidates)
	})

	t.Run("new access date counts as a change", func(t *testing.T) {
		index := reconciler.Index([]model.Customer{
			{IdWinC: 11, Name: "Anna Rossi", TrainingOperatorId: 1, LastAccessDate: timePtr(access)},
		})

		nextDay := access.AddDate(0, 0, 1)
		candidates := reconciler.Reconcile([]wellness.CustomerRecord{
			{CustomerID: 11, CustomerName: "Anna Rossi", LastAccess: timePtr(nextDay)},
		}, index)

		require.Len(t, candidates, 1)
		assert.Equal(t, nextDay, *candidates[0].LastAccessDate)
	})

	t.Run("changed medical certificate counts as a change", func(t *testing.T) {
		validity := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		index := reconciler.Index([]model.Customer{
			{IdWinC: 11, Name: "Anna Rossi", TrainingOperatorId: 1, MedicalCertificateValidity: timePtr(validity)},
		})

		candidates := reconciler.Reconcile([]wellness.CustomerRecord{
			{
				CustomerID:                 11,
				CustomerName:               "Anna Rossi",
				MedicalCertificateValidity: timePtr(validity.AddDate(1, 0, 0)),
			},
		}, index)

		assert.Len(t, candidates, 1)
	})

	t.Run("absent feed dates are not a change", func(t *testing.T) {
		index := reconciler.Index([]model.Customer{
			{IdWinC: 11, Name: "Anna Rossi", TrainingOperatorId: 1, LastAccessDate: timePtr(access)},
		})

		candidates := reconciler.Reconcile([]wellness.CustomerRecord{
			{CustomerID: 11, CustomerName: "Anna Rossi"},
		}, index)

		assert.Empty(t, candidates)
	})

	t.Run("second reconcile over the synced snapshot is a no-op", func(t *testing.T) {
		records := []wellness.CustomerRecord{
			{CustomerID: 11, CustomerName: "Anna Rossi", LastAccess: timePtr(access)},
			{CustomerID: 12, CustomerName: "Luca Bianchi", MedicalCertificateValidity: timePtr(access)},
		}

		first := reconciler.Reconcile(records, reconciler.Index(nil))
		require.Len(t, first, 2)

		second := reconciler.Reconcile(records, reconciler.Index(first))
		assert.Empty(t, second)
	})
}
