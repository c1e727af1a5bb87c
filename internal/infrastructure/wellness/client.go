package wellness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gymlink/wellness-backend/internal/config"
	domainErrors "github.com/gymlink/wellness-backend/internal/domain/errors"
	"go.uber.org/zap"
)

// Analysis envelope constants required by the search endpoints.
const (
	customerAnalysisClass      = "FliptonicAppDb.ViewModels.Analysis.Customers.CustomersStatsSearch"
	customerAnalysisController = "Analysis_Customers"

	authorizationAnalysisClass      = "FliptonicAppDb.ViewModels.Analysis.Authorizations.AuthorizationExpirationStatsSearch"
	authorizationAnalysisController = "Analysis_Authorizations"
)

// Client is the read-only client for the wellness API data endpoints. Every
// call authenticates through the shared Authenticator and treats any
// non-200 response as fatal.
type Client struct {
	baseURL         string
	company         string
	activityTypeIDs []int
	auth            *Authenticator
	client          *http.Client
	logger          *zap.Logger
}

// NewClient creates a wellness API client from config.
func NewClient(cfg *config.WellnessConfig, auth *Authenticator, logger *zap.Logger) *Client {
	// Analysis searches can take a while on large tenants: allow 60s for
	// the response, 10s for everything else.
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
		IdleConnTimeout:       10 * time.Second,
		MaxIdleConnsPerHost:   4,
	}

	return &Client{
		baseURL:         cfg.BaseURL,
		company:         cfg.Company,
		activityTypeIDs: cfg.ActivityTypeIDs,
		auth:            auth,
		client: &http.Client{
			Transport: transport,
			Timeout:   90 * time.Second,
		},
		logger: logger,
	}
}

// Consultants fetches the consultant catalog, one item per operator with an
// active flag.
func (c *Client) Consultants(ctx context.Context) ([]CatalogItem, error) {
	endpoint := fmt.Sprintf("%s%s/Analysis/consultant", c.baseURL, c.company)
	return c.fetchCatalog(ctx, endpoint)
}

// Packages fetches the package catalog (subscription definitions).
func (c *Client) Packages(ctx context.Context) ([]CatalogItem, error) {
	endpoint := fmt.Sprintf("%s%s/Analysis/packages", c.baseURL, c.company)
	return c.fetchCatalog(ctx, endpoint)
}

func (c *Client) fetchCatalog(ctx context.Context, endpoint string) ([]CatalogItem, error) {
	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var payload domainResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domainErrors.NewValidationError(endpoint, err)
	}

	var items []CatalogItem
	for _, group := range payload.Data.ItemsGroups {
		for _, item := range group.Items {
			catalogItem, err := item.toCatalogItem()
			if err != nil {
				return nil, domainErrors.NewValidationError(endpoint, err)
			}
			items = append(items, catalogItem)
		}
	}

	return items, nil
}

// SearchCustomers fetches every active customer assigned to one consultant.
func (c *Client) SearchCustomers(ctx context.Context, operatorID int64) ([]CustomerRecord, error) {
	endpoint := fmt.Sprintf("%s%s/analysis/analysis_customers/search", c.baseURL, c.company)

	request := map[string]interface{}{
		"mainReferenceOperatorIds": []int64{operatorID},
		"customerStatus":           1,
		"analysisClassName":        customerAnalysisClass,
		"analysisResultMode":       0,
		"exportCsv":                false,
		"analysisController":       customerAnalysisController,
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, request)
	if err != nil {
		return nil, err
	}

	var payload customerSearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domainErrors.NewValidationError(endpoint, err)
	}

	records := make([]CustomerRecord, 0, len(payload.Data.DataSet))
	for _, row := range payload.Data.DataSet {
		record, err := row.toRecord()
		if err != nil {
			return nil, domainErrors.NewValidationError(endpoint, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// SearchAuthorizations fetches the sale authorizations whose expiration falls
// between startDelta and endDelta days from today.
func (c *Client) SearchAuthorizations(ctx context.Context, startDelta, endDelta int) ([]AuthorizationRecord, error) {
	endpoint := fmt.Sprintf("%s%s/analysis/analysis_authorizations/search", c.baseURL, c.company)

	request := map[string]interface{}{
		"activityTypeIds":                            c.activityTypeIDs,
		"authEnd_range_start_days_delta":             startDelta,
		"authEnd_range_end_days_delta":               endDelta,
		"analysisClassName":                          authorizationAnalysisClass,
		"analysisResultMode":                         0,
		"customerStatus":                             1,
		"excludeAccessCountAuthorizations":           false,
		"includeAuthorizationsWithoutExpirationDate": false,
		"exportCsv":                                  false,
		"analysisController":                         authorizationAnalysisController,
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, request)
	if err != nil {
		return nil, err
	}

	var payload authorizationSearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domainErrors.NewValidationError(endpoint, err)
	}

	records := make([]AuthorizationRecord, 0, len(payload.Data.DataSet))
	for _, row := range payload.Data.DataSet {
		record, err := row.toRecord()
		if err != nil {
			return nil, domainErrors.NewValidationError(endpoint, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, request interface{}) ([]byte, error) {
	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if request != nil {
		jsonBody, err := json.Marshal(request)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domainErrors.NewUpstreamError(endpoint, 0, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainErrors.NewUpstreamError(endpoint, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Wellness API request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))
		return nil, domainErrors.NewUpstreamError(endpoint, resp.StatusCode, nil)
	}

	return respBody, nil
}
