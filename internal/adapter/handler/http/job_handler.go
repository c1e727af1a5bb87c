package http

import (
	"context"
	"net/http"

	"github.com/gymlink/wellness-backend/internal/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SyncJob is one runnable synchronization job.
type SyncJob interface {
	Run(ctx context.Context) (usecase.RunReport, error)
}

type JobHandler struct {
	logger *zap.Logger
	jobs   map[string]SyncJob
}

// NewJobHandler wires the four sync jobs under their route names.
func NewJobHandler(logger *zap.Logger, consultants, customers, subscriptions, sales SyncJob) *JobHandler {
	return &JobHandler{
		logger: logger,
		jobs: map[string]SyncJob{
			"users":                  consultants,
			"customers":              customers,
			"subscriptions":          subscriptions,
			"customer-subscriptions": sales,
		},
	}
}

// Trigger runs the job named in the path and blocks until it finishes.
func (h *JobHandler) Trigger(c echo.Context) error {
	name := c.Param("job")

	job, ok := h.jobs[name]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Unknown job",
			"code":  "UNKNOWN_JOB",
		})
	}

	h.logger.Info("Sync job triggered", zap.String("job", name))

	report, err := job.Run(c.Request().Context())
	if err != nil {
		h.logger.Error("Sync job failed",
			zap.String("job", name),
			zap.Int("fetched", report.Fetched),
			zap.Int64("written", report.Written),
			zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error": err.Error(),
			"code":  "SYNC_FAILED",
		})
	}

	h.logger.Info("Sync job completed",
		zap.String("job", name),
		zap.Int("fetched", report.Fetched),
		zap.Int64("written", report.Written),
		zap.Int("skipped", report.Skipped))

	return c.NoContent(http.StatusNoContent)
}
