package usecase

import (
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
)

// SubscriptionMatcher resolves the weak reference between a sale
// authorization and a subscription definition. Authorization rows carry only
// free-text package names, so matching is exact string equality against the
// definition description: case-sensitive, whitespace-sensitive. The feed's
// naming is consistent enough that anything fuzzier would hide real
// mismatches.
type SubscriptionMatcher struct {
	byDescription map[string]int64
}

// NewSubscriptionMatcher indexes the definitions once per job run.
func NewSubscriptionMatcher(definitions []model.Subscription) *SubscriptionMatcher {
	byDescription := make(map[string]int64, len(definitions))
	for _, def := range definitions {
		byDescription[def.Description] = def.IdWinC
	}
	return &SubscriptionMatcher{byDescription: byDescription}
}

// Match resolves the subscription id for a sale, preferring the renewal
// package name over the original sale package name.
func (m *SubscriptionMatcher) Match(record wellness.AuthorizationRecord) (int64, bool) {
	if record.RenewalSalePackageName != "" {
		if id, ok := m.byDescription[record.RenewalSalePackageName]; ok {
			return id, true
		}
	}
	if record.SalePackageName != "" {
		if id, ok := m.byDescription[record.SalePackageName]; ok {
			return id, true
		}
	}
	return 0, false
}
