package usecase

import (
	"time"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
)

// defaultTrainingOperatorID is assigned to brand-new customers whose feed row
// carries no training operator.
const defaultTrainingOperatorID = 1

// CustomerReconciler diffs the customer feed against the local mirror and
// keeps only the rows worth writing. TrainingOperatorId is sticky: an
// existing row always keeps the locally stored value.
type CustomerReconciler struct{}

// Index builds the id_winc lookup used to match feed rows in O(1).
func (CustomerReconciler) Index(snapshot []model.Customer) map[int64]*model.Customer {
	index := make(map[int64]*model.Customer, len(snapshot))
	for i := range snapshot {
		index[snapshot[i].IdWinC] = &snapshot[i]
	}
	return index
}

// Reconcile returns the upsert candidates for a feed batch. A row qualifies
// when it is unknown locally or when one of the two tracked dates changed
// (date-only comparison). Unchanged rows are dropped so the store keeps its
// update timestamps.
func (r CustomerReconciler) Reconcile(records []wellness.CustomerRecord, index map[int64]*model.Customer) []model.Customer {
	var candidates []model.Customer

	for _, record := range records {
		local := index[record.CustomerID]
		if local != nil && !r.changed(record, local) {
			continue
		}

		operatorID := int64(defaultTrainingOperatorID)
		if local != nil {
			operatorID = local.TrainingOperatorId
		} else if record.TrainingReferenceOperatorID != nil {
			operatorID = *record.TrainingReferenceOperatorID
		}

		candidates = append(candidates, model.Customer{
			IdWinC:                     record.CustomerID,
			Name:                       record.CustomerName,
			BirthDate:                  record.DateOfBirth,
			MedicalCertificateValidity: record.MedicalCertificateValidity,
			LastAccessDate:             record.LastAccess,
			TrainingOperatorId:         operatorID,
			Enabled:                    true,
		})
	}

	return candidates
}

// changed looks only at the dates the feed is authoritative for. An absent
// feed value is not a change; the mirror keeps what it has.
func (r CustomerReconciler) changed(record wellness.CustomerRecord, local *model.Customer) bool {
	if record.LastAccess != nil && !sameDay(record.LastAccess, local.LastAccessDate) {
		return true
	}
	if record.MedicalCertificateValidity != nil && !sameDay(record.MedicalCertificateValidity, local.MedicalCertificateValidity) {
		return true
	}
	return false
}

// sameDay compares two optional timestamps by calendar date, ignoring
// time-of-day and zone.
func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
