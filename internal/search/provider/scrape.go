package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/lk2023060901/search-api-backend/internal/search/extractor"
	searchhttp "github.com/lk2023060901/search-api-backend/internal/search/http"
	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

const (
	scrapeDefaultTimeout = 10 * time.Second

	// The target rejects unidentified clients, so a browser User-Agent
	// is required.
	scrapeDefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
)

// ScrapeBackend retrieves results by fetching the public results page
// and extracting structured records from its markup.
type ScrapeBackend struct {
	config    *types.ScrapeConfig
	client    *http.Client
	extractor *extractor.Extractor
	logger    *zap.Logger
}

// NewScrapeBackend creates a scrape backend from configuration.
func NewScrapeBackend(config *types.ScrapeConfig, logger *zap.Logger) (*ScrapeBackend, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = scrapeDefaultTimeout
	}

	return &ScrapeBackend{
		config:    config,
		client:    searchhttp.NewHTTPClient(timeout),
		extractor: extractor.New(logger),
		logger:    logger,
	}, nil
}

// Name returns the method tag for this backend.
func (b *ScrapeBackend) Name() types.Method {
	return types.MethodScrape
}

// Fetch issues a single GET to the results page and extracts records
// from the body. No retries: a transient failure is reported to the
// caller, which owns the fallback policy.
func (b *ScrapeBackend) Fetch(ctx context.Context, query *types.SearchQuery) ([]*types.SearchResult, error) {
	if query.Term == "" {
		return nil, types.ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("q", query.Term)
	params.Set("num", fmt.Sprintf("%d", query.NumResults))
	params.Set("hl", query.Lang)

	pageURL := fmt.Sprintf("%s/search?%s", b.config.BaseURL, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	userAgent := b.config.UserAgent
	if userAgent == "" {
		userAgent = scrapeDefaultUserAgent
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept-Language", query.Lang)

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, &types.BackendError{
			Backend: b.Name(),
			Code:    "REQUEST_FAILED",
			Message: "Failed to fetch results page",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &types.BackendError{
			Backend: b.Name(),
			Code:    fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message: "Results page returned non-success status",
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	results := b.extractor.Extract(string(body), query.NumResults)

	b.logger.Debug("scrape completed",
		zap.String("query", query.Term),
		zap.Int("results", len(results)),
	)

	return results, nil
}
