package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handlers "github.com/gymlink/wellness-backend/internal/adapter/handler/http"
	domainErrors "github.com/gymlink/wellness-backend/internal/domain/errors"
	"github.com/gymlink/wellness-backend/internal/domain/model"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

func loginServer(t *testing.T, status int) *wellness.Authenticator {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Write([]byte(`{"data":{"token":"tok"}}`))
	}))
	t.Cleanup(server.Close)

	return wellness.NewAuthenticator(server.URL+"/", "service", "secret", zap.NewNop())
}

func postToken(t *testing.T, handler *handlers.AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Token(e.NewContext(req, rec)))
	return rec
}

func TestAuthHandler_Token(t *testing.T) {
	logger := zap.NewNop()
	email := "anna@club.example"

	t.Run("valid credentials yield an access token", func(t *testing.T) {
		mockRepo := new(MockConsultantRepository)
		mockRepo.On("GetByEmail", mock.Anything, email).Return(&model.Consultant{
			IdWinC:  42,
			Name:    "Anna",
			Surname: "Rossi",
			Roles:   model.RoleList{"IST"},
			Enabled: true,
		}, nil)

		handler := handlers.NewAuthHandler(logger, "test-secret", loginServer(t, http.StatusOK), mockRepo)

		rec := postToken(t, handler, `{"username":"anna@club.example","password":"pw"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "access_token")
		assert.Contains(t, rec.Body.String(), "bearer")
	})

	t.Run("unknown consultant is rejected", func(t *testing.T) {
		mockRepo := new(MockConsultantRepository)
		mockRepo.On("GetByEmail", mock.Anything, email).Return(nil, domainErrors.ErrConsultantNotFound)

		handler := handlers.NewAuthHandler(logger, "test-secret", loginServer(t, http.StatusOK), mockRepo)

		rec := postToken(t, handler, `{"username":"anna@club.example","password":"pw"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("wrong password is rejected by the wellness login", func(t *testing.T) {
		mockRepo := new(MockConsultantRepository)
		mockRepo.On("GetByEmail", mock.Anything, email).Return(&model.Consultant{
			IdWinC:  42,
			Enabled: true,
		}, nil)

		handler := handlers.NewAuthHandler(logger, "test-secret", loginServer(t, http.StatusUnauthorized), mockRepo)

		rec := postToken(t, handler, `{"username":"anna@club.example","password":"bad"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non email username fails validation", func(t *testing.T) {
		mockRepo := new(MockConsultantRepository)
		handler := handlers.NewAuthHandler(logger, "test-secret", loginServer(t, http.StatusOK), mockRepo)

		rec := postToken(t, handler, `{"username":"anna","password":"pw"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockRepo.AssertNotCalled(t, "GetByEmail")
	})
}
