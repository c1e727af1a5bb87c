package usecase

import (
	"context"

	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"go.uber.org/zap"
)

// SubscriptionSyncService mirrors the package catalog into the subscriptions
// table. Definitions absent from the feed are soft-disabled, never deleted;
// a definition that reappears is re-enabled by the upsert.
type SubscriptionSyncService struct {
	client           *wellness.Client
	subscriptionRepo repository.SubscriptionRepository
	logger           *zap.Logger
}

// NewSubscriptionSyncService creates a new subscription synchronization service
func NewSubscriptionSyncService(client *wellness.Client, subscriptionRepo repository.SubscriptionRepository, logger *zap.Logger) *SubscriptionSyncService {
	return &SubscriptionSyncService{
		client:           client,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Run performs one full subscription definition sync.
func (s *SubscriptionSyncService) Run(ctx context.Context) (RunReport, error) {
	report := RunReport{Windows: 1}

	items, err := s.client.Packages(ctx)
	if err != nil {
		return report, err
	}
	report.Fetched = len(items)

	subscriptions := make([]model.Subscription, 0, len(items))
	presentIDs := make([]int64, 0, len(items))
	for _, item := range items {
		subscriptions = append(subscriptions, model.Subscription{
			IdWinC:              item.ID,
			Description:         item.Label,
			Enabled:             item.Active,
			ValidAsSubscription: true,
		})
		presentIDs = append(presentIDs, item.ID)
	}

	written, err := s.subscriptionRepo.BulkUpsert(ctx, subscriptions)
	if err != nil {
		return report, err
	}
	report.Written = written

	disabled, err := s.subscriptionRepo.DisableMissing(ctx, presentIDs)
	if err != nil {
		return report, err
	}

	s.logger.Info("Subscription sync completed",
		zap.Int("fetched", report.Fetched),
		zap.Int64("written", report.Written),
		zap.Int64("disabled", disabled))

	return report, nil
}
