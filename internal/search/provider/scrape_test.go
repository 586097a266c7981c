package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

const scrapePage = `<html><body>
<div class="g"><a href="/url?q=https://go.dev&sa=U"><h3>The Go Programming Language</h3></a><div class="VwiC3b">Build simple, secure, scalable systems.</div></div>
<div class="g"><a href="https://en.wikipedia.org/wiki/Go"><h3>Go (programming language)</h3></a></div>
</body></html>`

func newScrapeForTest(t *testing.T, handler http.HandlerFunc) *ScrapeBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend, err := NewScrapeBackend(&types.ScrapeConfig{
		BaseURL: srv.URL,
		Timeout: 5,
	}, nil)
	require.NoError(t, err)
	return backend
}

func TestNewScrapeBackend_InvalidConfig(t *testing.T) {
	_, err := NewScrapeBackend(&types.ScrapeConfig{}, nil)
	assert.ErrorIs(t, err, types.ErrInvalidBaseURL)
}

func TestScrapeBackend_Fetch(t *testing.T) {
	backend := newScrapeForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "en", r.URL.Query().Get("hl"))
		// A browser User-Agent is mandatory for this target.
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")

		w.Write([]byte(scrapePage))
	})

	query := types.NewSearchQuery("golang", 10, "en", 1)
	results, err := backend.Fetch(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "The Go Programming Language", results[0].Title)
	assert.Equal(t, "https://go.dev", results[0].URL)
	assert.Equal(t, "Build simple, secure, scalable systems.", results[0].Description)

	assert.Equal(t, "https://en.wikipedia.org/wiki/Go", results[1].URL)
	assert.Equal(t, "No description available", results[1].Description)
}

func TestScrapeBackend_NonSuccessStatus(t *testing.T) {
	backend := newScrapeForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	query := types.NewSearchQuery("golang", 10, "en", 1)
	_, err := backend.Fetch(context.Background(), query)
	require.Error(t, err)

	var backendErr *types.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, types.MethodScrape, backendErr.Backend)
	assert.Equal(t, "HTTP_403", backendErr.Code)
}

func TestScrapeBackend_NetworkError(t *testing.T) {
	backend, err := NewScrapeBackend(&types.ScrapeConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 1,
	}, nil)
	require.NoError(t, err)

	query := types.NewSearchQuery("golang", 10, "en", 1)
	_, err = backend.Fetch(context.Background(), query)

	var backendErr *types.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "REQUEST_FAILED", backendErr.Code)
}

func TestScrapeBackend_UnparseableBodyYieldsEmpty(t *testing.T) {
	backend := newScrapeForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not a results page"))
	})

	query := types.NewSearchQuery("golang", 10, "en", 1)
	results, err := backend.Fetch(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScrapeBackend_EmptyQuery(t *testing.T) {
	backend := newScrapeForTest(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := backend.Fetch(context.Background(), &types.SearchQuery{})
	assert.ErrorIs(t, err, types.ErrEmptyQuery)
}
