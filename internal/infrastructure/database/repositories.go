package database

import (
	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Consultant           repository.ConsultantRepository
	Customer             repository.CustomerRepository
	Subscription         repository.SubscriptionRepository
	CustomerSubscription repository.CustomerSubscriptionRepository
	Card                 repository.CardRepository
	Training             repository.TrainingRepository
}

// NewRepositories creates new repository instances with database connection
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Consultant:           repository.NewConsultantRepository(db, logger),
		Customer:             repository.NewCustomerRepository(db, logger),
		Subscription:         repository.NewSubscriptionRepository(db, logger),
		CustomerSubscription: repository.NewCustomerSubscriptionRepository(db, logger),
		Card:                 repository.NewCardRepository(db, logger),
		Training:             repository.NewTrainingRepository(db, logger),
	}
}
