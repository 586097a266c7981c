package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	searchhttp "github.com/lk2023060901/search-api-backend/internal/search/http"
	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

const libraryDefaultTimeout = 30 * time.Second

// LibraryBackend retrieves results from a SearXNG-compatible JSON search API.
// It is the primary retrieval strategy when configured.
type LibraryBackend struct {
	config *types.LibraryConfig
	client *http.Client
	gate   requestGate
	logger *zap.Logger
}

// NewLibraryBackend creates a library backend from configuration.
func NewLibraryBackend(config *types.LibraryConfig, logger *zap.Logger) (*LibraryBackend, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = libraryDefaultTimeout
	}

	return &LibraryBackend{
		config: config,
		client: searchhttp.NewHTTPClient(timeout),
		logger: logger,
	}, nil
}

// Name returns the method tag for this backend.
func (b *LibraryBackend) Name() types.Method {
	return types.MethodLibrary
}

// Fetch executes a search against the configured API.
func (b *LibraryBackend) Fetch(ctx context.Context, query *types.SearchQuery) ([]*types.SearchResult, error) {
	if query.Term == "" {
		return nil, types.ErrEmptyQuery
	}

	// Honor the per-query minimum delay between outbound requests.
	if err := b.gate.wait(ctx, time.Duration(query.SleepInterval)*time.Second); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query.Term)
	params.Set("format", "json")
	params.Set("language", query.Lang)
	params.Set("pageno", "1")
	params.Set("number_of_results", fmt.Sprintf("%d", query.NumResults))

	apiURL := fmt.Sprintf("%s/search?%s", b.config.APIHost, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range BuildDefaultHeaders() {
		httpReq.Header.Set(k, v)
	}
	if b.config.BasicAuthUsername != "" && b.config.BasicAuthPassword != "" {
		httpReq.SetBasicAuth(b.config.BasicAuthUsername, b.config.BasicAuthPassword)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, &types.BackendError{
			Backend: b.Name(),
			Code:    "REQUEST_FAILED",
			Message: "Failed to execute request",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &types.BackendError{
			Backend: b.Name(),
			Code:    fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message: string(body),
		}
	}

	// The results shape drifts across API instances, so pull fields
	// leniently instead of decoding into a fixed struct.
	results := make([]*types.SearchResult, 0, query.NumResults)
	for _, r := range gjson.GetBytes(body, "results").Array() {
		if len(results) >= query.NumResults {
			break
		}
		link := r.Get("url").String()
		if link == "" {
			continue
		}
		results = append(results, &types.SearchResult{
			Title:       r.Get("title").String(),
			URL:         link,
			Description: r.Get("content").String(),
			Kind:        types.ResultKind,
		})
	}

	b.logger.Debug("library search completed",
		zap.String("query", query.Term),
		zap.Int("results", len(results)),
	)

	return results, nil
}
