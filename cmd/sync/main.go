package main

import (
	"context"
	"flag"
	"log"

	"github.com/gymlink/wellness-backend/internal/config"
	"github.com/gymlink/wellness-backend/internal/infrastructure/database"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"github.com/gymlink/wellness-backend/internal/logger"
	"github.com/gymlink/wellness-backend/internal/usecase"
	"go.uber.org/zap"
)

// syncJob is one runnable synchronization job.
type syncJob interface {
	Run(ctx context.Context) (usecase.RunReport, error)
}

func main() {
	jobName := flag.String("job", "all", "job to run: users, customers, subscriptions, customer-subscriptions or all")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database connection
	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run migrations
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, zapLogger)

	// Wellness API access
	authenticator := wellness.NewAuthenticator(
		cfg.Wellness.BaseURL,
		cfg.Wellness.Username,
		cfg.Wellness.Password,
		zapLogger,
	)
	client := wellness.NewClient(&cfg.Wellness, authenticator, zapLogger)

	// Jobs in dependency order: consultants and subscriptions feed the
	// customer and sale jobs.
	jobs := []struct {
		name string
		job  syncJob
	}{
		{"users", usecase.NewConsultantSyncService(client, repos.Consultant, zapLogger)},
		{"subscriptions", usecase.NewSubscriptionSyncService(client, repos.Subscription, zapLogger)},
		{"customers", usecase.NewCustomerSyncService(client, repos.Consultant, repos.Customer, zapLogger)},
		{"customer-subscriptions", usecase.NewSaleSyncService(client, repos.Subscription, repos.CustomerSubscription, cfg.Wellness.DaysRange, zapLogger)},
	}

	ctx := context.Background()

	ran := 0
	for _, entry := range jobs {
		if *jobName != "all" && *jobName != entry.name {
			continue
		}
		ran++

		report, err := entry.job.Run(ctx)
		if err != nil {
			zapLogger.Fatal("Sync job failed",
				zap.String("job", entry.name),
				zap.Int("fetched", report.Fetched),
				zap.Int64("written", report.Written),
				zap.Error(err))
		}

		zapLogger.Info("Sync job completed",
			zap.String("job", entry.name),
			zap.Int("fetched", report.Fetched),
			zap.Int64("written", report.Written),
			zap.Int("skipped", report.Skipped))
	}

	if ran == 0 {
		zapLogger.Fatal("Unknown job", zap.String("job", *jobName))
	}
}
