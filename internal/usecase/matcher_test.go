package usecase_test

import (
	"testing"

	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"github.com/gymlink/wellness-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptionMatcher_Match(t *testing.T) {
	matcher := usecase.NewSubscriptionMatcher([]model.Subscription{
		{IdWinC: 100, Description: "Open Gym Annual"},
		{IdWinC: 200, Description: "Open Gym Monthly"},
	})

	tests := []struct {
		name    string
		record  wellness.AuthorizationRecord
		wantID  int64
		matched bool
	}{
		{
			name:    "sale package name matches",
			record:  wellness.AuthorizationRecord{SalePackageName: "Open Gym Annual"},
			wantID:  100,
			matched: true,
		},
		{
			name: "renewal name preferred over sale name",
			record: wellness.AuthorizationRecord{
				SalePackageName:        "Open Gym Annual",
				RenewalSalePackageName: "Open Gym Monthly",
			},
			wantID:  200,
			matched: true,
		},
		{
			name: "unmatched renewal name falls back to sale name",
			record: wellness.AuthorizationRecord{
				SalePackageName:        "Open Gym Annual",
				RenewalSalePackageName: "Something Else",
			},
			wantID:  100,
			matched: true,
		},
		{
			name:    "matching is case sensitive",
			record:  wellness.AuthorizationRecord{SalePackageName: "open gym annual"},
			matched: false,
		},
		{
			name:    "matching is whitespace sensitive",
			record:  wellness.AuthorizationRecord{SalePackageName: "Open Gym Annual "},
			matched: false,
		},
		{
			name:    "no names never matches",
			record:  wellness.AuthorizationRecord{},
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := matcher.Match(tt.record)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
