package provider

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

// PlaceholderBackend produces deterministic synthetic results when every
// real retrieval strategy has failed. It performs no network I/O and
// never fails, which is what guarantees the API a well-formed response.
type PlaceholderBackend struct{}

// NewPlaceholderBackend creates a placeholder backend.
func NewPlaceholderBackend() *PlaceholderBackend {
	return &PlaceholderBackend{}
}

// Name returns the method tag for this backend.
func (b *PlaceholderBackend) Name() types.Method {
	return types.MethodPlaceholder
}

// Fetch returns synthetic results tagged to the query text.
func (b *PlaceholderBackend) Fetch(_ context.Context, query *types.SearchQuery) ([]*types.SearchResult, error) {
	escaped := url.QueryEscape(query.Term)

	results := []*types.SearchResult{
		{
			Title:       fmt.Sprintf("Search results for '%s'", query.Term),
			URL:         "https://www.google.com/search?q=" + escaped,
			Description: fmt.Sprintf("Direct link to search results for '%s'.", query.Term),
			Kind:        types.ResultKind,
		},
		{
			Title:       fmt.Sprintf("'%s' on Wikipedia", query.Term),
			URL:         "https://en.wikipedia.org/wiki/Special:Search?search=" + escaped,
			Description: fmt.Sprintf("Wikipedia articles related to '%s'.", query.Term),
			Kind:        types.ResultKind,
		},
		{
			Title:       fmt.Sprintf("News about '%s'", query.Term),
			URL:         "https://news.google.com/search?q=" + escaped,
			Description: fmt.Sprintf("Recent news coverage for '%s'.", query.Term),
			Kind:        types.ResultKind,
		},
	}

	if query.NumResults < len(results) {
		results = results[:query.NumResults]
	}
	return results, nil
}
