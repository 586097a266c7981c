package types

// Query limits enforced on inbound requests
const (
	DefaultNumResults = 10
	MaxNumResults     = 20
	DefaultLang       = "en"
	MinSleepSeconds   = 1
)

// SearchQuery represents a single inbound search request.
// It is built once per request and never mutated afterwards.
type SearchQuery struct {
	Term          string `json:"term"`
	NumResults    int    `json:"num_results"`
	Lang          string `json:"lang"`
	SleepInterval int    `json:"sleep_interval"` // seconds between outbound requests
}

// NewSearchQuery builds a query with the raw parameter values clamped
// into their allowed ranges.
func NewSearchQuery(term string, numResults int, lang string, sleepInterval int) *SearchQuery {
	if numResults <= 0 {
		numResults = DefaultNumResults
	}
	if numResults > MaxNumResults {
		numResults = MaxNumResults
	}
	if lang == "" {
		lang = DefaultLang
	}
	if sleepInterval < MinSleepSeconds {
		sleepInterval = MinSleepSeconds
	}

	return &SearchQuery{
		Term:          term,
		NumResults:    numResults,
		Lang:          lang,
		SleepInterval: sleepInterval,
	}
}
