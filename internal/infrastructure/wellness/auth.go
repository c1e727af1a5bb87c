package wellness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	domainErrors "github.com/gymlink/wellness-backend/internal/domain/errors"
	"go.uber.org/zap"
)

// tokenValidity is how long a login token is trusted, measured from the
// login call. The API does not advertise an expiry, so a fixed window is used.
const tokenValidity = time.Hour

// Authenticator obtains and caches a bearer token for the wellness API. One
// instance is shared by every sync job; all jobs authenticate as the same
// service account, so a shared cache only saves login calls. Concurrent
// refreshes are possible and harmless (one redundant login).
type Authenticator struct {
	baseURL  string
	username string
	password string
	client   *http.Client
	logger   *zap.Logger

	mu     sync.Mutex
	token  string
	expiry time.Time

	now func() time.Time
}

// NewAuthenticator creates an authenticator for the given service account.
func NewAuthenticator(baseURL, username, password string, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		baseURL:  baseURL,
		username: username,
		password: password,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
		now:      time.Now,
	}
}

// Token returns the cached token when still valid, logging in otherwise.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	if a.token != "" && a.now().Before(a.expiry) {
		token := a.token
		a.mu.Unlock()
		return token, nil
	}
	a.mu.Unlock()

	return a.login(ctx)
}

// Verify checks a consultant's own credentials against the login endpoint
// without touching the cached service-account token.
func (a *Authenticator) Verify(ctx context.Context, username, password string) error {
	_, err := a.loginAs(ctx, username, password, false)
	return err
}

func (a *Authenticator) login(ctx context.Context) (string, error) {
	return a.loginAs(ctx, a.username, a.password, true)
}

func (a *Authenticator) loginAs(ctx context.Context, username, password string, cache bool) (string, error) {
	endpoint := a.baseURL + "login"

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	a.logger.Info("Logging in to wellness API", zap.String("username", username))

	resp, err := a.client.Do(req)
	if err != nil {
		return "", domainErrors.NewAuthError(endpoint, 0, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domainErrors.NewAuthError(endpoint, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("Wellness login rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))
		return "", domainErrors.NewAuthError(endpoint, resp.StatusCode, nil)
	}

	var login loginResponse
	if err := json.Unmarshal(respBody, &login); err != nil {
		return "", domainErrors.NewAuthError(endpoint, resp.StatusCode, err)
	}
	if login.Data.Token == "" {
		return "", domainErrors.NewAuthError(endpoint, resp.StatusCode,
			fmt.Errorf("login response contains no token"))
	}

	if cache {
		a.mu.Lock()
		a.token = login.Data.Token
		a.expiry = a.now().Add(tokenValidity)
		a.mu.Unlock()
	}

	return login.Data.Token, nil
}
