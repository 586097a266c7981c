package types

import "time"

// ResultKind is the fixed tag carried by every result record,
// kept compatible with the Google Custom Search response shape.
const ResultKind = "customsearch#result"

// Method identifies which retrieval strategy produced an outcome.
type Method string

const (
	MethodLibrary       Method = "primary-library"
	MethodLibraryFailed Method = "primary-library-failed"
	MethodScrape        Method = "direct-scrape"
	MethodScrapeFailed  Method = "direct-scrape-failed"
	MethodPlaceholder   Method = "placeholder"
)

// SearchResult represents a single search result.
// Result order is the order returned by the source; it is never re-sorted.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// SearchOutcome is the terminal product of the fallback cascade for one query.
type SearchOutcome struct {
	Query      *SearchQuery
	Results    []*SearchResult
	MethodUsed Method
	Elapsed    time.Duration
}
