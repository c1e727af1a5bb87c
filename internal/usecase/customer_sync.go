package usecase

import (
	"context"

	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	domainErrors "github.com/gymlink/wellness-backend/internal/domain/errors"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"go.uber.org/zap"
)

// CustomerSyncService mirrors the customer base, one search per known
// consultant. Iterations are strictly sequential; a failed consultant search
// skips that consultant's save and moves on, a rejected credential aborts
// the whole run.
type CustomerSyncService struct {
	client         *wellness.Client
	consultantRepo repository.ConsultantRepository
	customerRepo   repository.CustomerRepository
	reconciler     CustomerReconciler
	logger         *zap.Logger
}

// NewCustomerSyncService creates a new customer synchronization service
func NewCustomerSyncService(client *wellness.Client, consultantRepo repository.ConsultantRepository, customerRepo repository.CustomerRepository, logger *zap.Logger) *CustomerSyncService {
	return &CustomerSyncService{
		client:         client,
		consultantRepo: consultantRepo,
		customerRepo:   customerRepo,
		logger:         logger,
	}
}

// Run performs one full customer sync across every known consultant.
func (s *CustomerSyncService) Run(ctx context.Context) (RunReport, error) {
	var report RunReport

	operatorIDs, err := s.consultantRepo.GetAllIDs(ctx)
	if err != nil {
		return report, err
	}

	// One snapshot per run; rows written during the run are folded into the
	// index so later iterations diff against what the store now holds.
	snapshot, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return report, err
	}
	index := s.reconciler.Index(snapshot)

	for _, operatorID := range operatorIDs {
		iteration, err := s.syncOperator(ctx, operatorID, index)
		report.merge(iteration)

		if err != nil {
			if domainErrors.IsSyncErrorType(err, domainErrors.ErrTypeAuthFailed) {
				return report, err
			}
			s.logger.Error("Customer sync iteration failed, continuing with next consultant",
				zap.Int64("operator_id", operatorID),
				zap.Error(err))
			continue
		}
	}

	s.logger.Info("Customer sync completed",
		zap.Int("consultants", len(operatorIDs)),
		zap.Int("fetched", report.Fetched),
		zap.Int64("written", report.Written))

	return report, nil
}

func (s *CustomerSyncService) syncOperator(ctx context.Context, operatorID int64, index map[int64]*model.Customer) (RunReport, error) {
	report := RunReport{Windows: 1}

	records, err := s.client.SearchCustomers(ctx, operatorID)
	if err != nil {
		return report, err
	}
	report.Fetched = len(records)

	candidates := s.reconciler.Reconcile(records, index)
	report.Skipped = len(records) - len(candidates)

	written, err := s.customerRepo.BulkUpsert(ctx, candidates)
	if err != nil {
		return report, err
	}
	report.Written = written

	s.logger.Debug("Customer sync iteration saved",
		zap.Int64("operator_id", operatorID),
		zap.Int("fetched", report.Fetched),
		zap.Int64("written", written))

	// Fold the written rows into the index.
	for i := range candidates {
		candidate := candidates[i]
		index[candidate.IdWinC] = &candidate
	}

	return report, nil
}
