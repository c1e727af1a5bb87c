package usecase

import (
	"context"
	"strings"

	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"go.uber.org/zap"
)

// ConsultantSyncService mirrors the consultant catalog into the users table.
// Only items flagged active upstream are written; the active flag there is
// the source of truth.
type ConsultantSyncService struct {
	client         *wellness.Client
	consultantRepo repository.ConsultantRepository
	logger         *zap.Logger
}

// NewConsultantSyncService creates a new consultant synchronization service
func NewConsultantSyncService(client *wellness.Client, consultantRepo repository.ConsultantRepository, logger *zap.Logger) *ConsultantSyncService {
	return &ConsultantSyncService{
		client:         client,
		consultantRepo: consultantRepo,
		logger:         logger,
	}
}

// Run performs one full consultant sync.
func (s *ConsultantSyncService) Run(ctx context.Context) (RunReport, error) {
	report := RunReport{Windows: 1}

	items, err := s.client.Consultants(ctx)
	if err != nil {
		return report, err
	}
	report.Fetched = len(items)

	var consultants []model.Consultant
	for _, item := range items {
		if !item.Active {
			report.Skipped++
			continue
		}

		name, surname := splitLabel(item.Label)
		consultants = append(consultants, model.Consultant{
			IdWinC:  item.ID,
			Name:    name,
			Surname: surname,
			Enabled: true,
		})
	}

	written, err := s.consultantRepo.BulkUpsert(ctx, consultants)
	if err != nil {
		return report, err
	}
	report.Written = written

	s.logger.Info("Consultant sync completed",
		zap.Int("fetched", report.Fetched),
		zap.Int64("written", report.Written),
		zap.Int("skipped", report.Skipped))

	return report, nil
}

// splitLabel turns the "Name Surname" catalog label into its two parts.
func splitLabel(label string) (string, string) {
	parts := strings.SplitN(label, " ", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
