package usecase

import (
	"context"

	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"go.uber.org/zap"
)

// saleHorizonDays bounds the windowed authorization fetch: sales whose
// authorization ends more than this far in the future are not mirrored.
const saleHorizonDays = 450

// SaleSyncService mirrors sale authorizations into customer subscriptions.
// The upstream endpoint only answers bounded expiry ranges, so the job walks
// a day-offset cursor from 0 to the horizon in fixed steps, writing after
// every window. A failed window stops the run; windows already written stay
// (the next run re-covers them idempotently from offset 0).
type SaleSyncService struct {
	client           *wellness.Client
	subscriptionRepo repository.SubscriptionRepository
	saleRepo         repository.CustomerSubscriptionRepository
	stepDays         int
	logger           *zap.Logger
}

// NewSaleSyncService creates a new customer subscription synchronization service
func NewSaleSyncService(client *wellness.Client, subscriptionRepo repository.SubscriptionRepository, saleRepo repository.CustomerSubscriptionRepository, stepDays int, logger *zap.Logger) *SaleSyncService {
	return &SaleSyncService{
		client:           client,
		subscriptionRepo: subscriptionRepo,
		saleRepo:         saleRepo,
		stepDays:         stepDays,
		logger:           logger,
	}
}

// Run performs one full customer subscription sync.
func (s *SaleSyncService) Run(ctx context.Context) (RunReport, error) {
	var report RunReport

	definitions, err := s.subscriptionRepo.GetValidForMatching(ctx)
	if err != nil {
		return report, err
	}
	matcher := NewSubscriptionMatcher(definitions)

	for days := 0; days < saleHorizonDays; days += s.stepDays {
		report.Windows++

		records, err := s.client.SearchAuthorizations(ctx, days, saleHorizonDays)
		if err != nil {
			return report, err
		}
		report.Fetched += len(records)

		sales := make([]model.CustomerSubscription, 0, len(records))
		for _, record := range records {
			subscriptionID, ok := matcher.Match(record)
			if !ok || record.MainReferenceOperatorID == nil {
				report.Skipped++
				s.logger.Info("Skipping unmatched sale",
					zap.Int64("sale_id", record.SaleID),
					zap.String("sale_package", record.SalePackageName),
					zap.String("renewal_package", record.RenewalSalePackageName),
					zap.Bool("has_operator", record.MainReferenceOperatorID != nil))
				continue
			}

			sales = append(sales, model.CustomerSubscription{
				IdWinC:         record.SaleID,
				CustomerId:     record.CustomerID,
				SubscriptionId: subscriptionID,
				SaleDate:       record.SaleDate,
				StartDate:      record.Start,
				EndDate:        record.End,
				Renewed:        record.Renewed,
			})
		}

		written, err := s.saleRepo.BulkUpsert(ctx, sales)
		if err != nil {
			return report, err
		}
		report.Written += written
	}

	s.logger.Info("Customer subscription sync completed",
		zap.Int("windows", report.Windows),
		zap.Int("fetched", report.Fetched),
		zap.Int64("written", report.Written),
		zap.Int("skipped", report.Skipped))

	return report, nil
}
