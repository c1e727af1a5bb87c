package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gymlink/wellness-backend/internal/adapter/repository"
	"github.com/gymlink/wellness-backend/internal/config"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

// MockConsultantRepository is a mock implementation of ConsultantRepository
type MockConsultantRepository struct {
	mock.Mock
}

func (m *MockConsultantRepository) GetAllIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockConsultantRepository) GetByEmail(ctx context.Context, email string) (*model.Consultant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Consultant), args.Error(1)
}

func (m *MockConsultantRepository) BulkUpsert(ctx context.Context, consultants []model.Consultant) (int64, error) {
	args := m.Called(ctx, consultants)
	return args.Get(0).(int64), args.Error(1)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByIdWinC(ctx context.Context, idWinC int64) (*model.Customer, error) {
	args := m.Called(ctx, idWinC)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Dashboard(ctx context.Context, filter repository.DashboardFilter) ([]model.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) BulkUpsert(ctx context.Context, customers []model.Customer) (int64, error) {
	args := m.Called(ctx, customers)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) GetValidForMatching(ctx context.Context) ([]model.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) BulkUpsert(ctx context.Context, subscriptions []model.Subscription) (int64, error) {
	args := m.Called(ctx, subscriptions)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) DisableMissing(ctx context.Context, presentIDs []int64) (int64, error) {
	args := m.Called(ctx, presentIDs)
	return args.Get(0).(int64), args.Error(1)
}

// MockCustomerSubscriptionRepository is a mock implementation of CustomerSubscriptionRepository
type MockCustomerSubscriptionRepository struct {
	mock.Mock
}

func (m *MockCustomerSubscriptionRepository) GetActiveForCustomer(ctx context.Context, customerIdWinC int64, at time.Time) ([]model.CustomerSubscription, error) {
	args := m.Called(ctx, customerIdWinC, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CustomerSubscription), args.Error(1)
}

func (m *MockCustomerSubscriptionRepository) BulkUpsert(ctx context.Context, sales []model.CustomerSubscription) (int64, error) {
	args := m.Called(ctx, sales)
	return args.Get(0).(int64), args.Error(1)
}

// fakeWellness is an httptest stand-in for the wellness API. Tests override
// the per-endpoint handlers they exercise; login succeeds by default.
type fakeWellness struct {
	server *httptest.Server

	login          http.HandlerFunc
	consultants    http.HandlerFunc
	packages       http.HandlerFunc
	customers      http.HandlerFunc
	authorizations http.HandlerFunc
}

func newFakeWellness() *fakeWellness {
	f := &fakeWellness{}
	f.login = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"token":"test-token"}}`))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) { f.login(w, r) })
	mux.HandleFunc("/club/Analysis/consultant", func(w http.ResponseWriter, r *http.Request) { f.consultants(w, r) })
	mux.HandleFunc("/club/Analysis/packages", func(w http.ResponseWriter, r *http.Request) { f.packages(w, r) })
	mux.HandleFunc("/club/analysis/analysis_customers/search", func(w http.ResponseWriter, r *http.Request) { f.customers(w, r) })
	mux.HandleFunc("/club/analysis/analysis_authorizations/search", func(w http.ResponseWriter, r *http.Request) { f.authorizations(w, r) })

	f.server = httptest.NewServer(mux)
	return f
}

func (f *fakeWellness) Close() {
	f.server.Close()
}

// Client returns a wellness client wired against the fake server.
func (f *fakeWellness) Client() *wellness.Client {
	logger := zap.NewNop()
	auth := wellness.NewAuthenticator(f.server.URL+"/", "service", "secret", logger)
	return wellness.NewClient(&config.WellnessConfig{
		BaseURL:         f.server.URL + "/",
		Company:         "club",
		ActivityTypeIDs: []int{1, 4},
		DaysRange:       50,
	}, auth, logger)
}
