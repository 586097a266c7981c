package provider

import (
	"context"
	"sync"
	"time"

	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

// Backend defines the contract shared by all retrieval strategies.
type Backend interface {
	// Fetch executes a single retrieval attempt for the query.
	// Exactly one attempt per call; retry policy, if any, belongs to the caller.
	Fetch(ctx context.Context, query *types.SearchQuery) ([]*types.SearchResult, error)

	// Name returns the method tag recorded when this backend succeeds.
	Name() types.Method
}

// requestGate enforces a minimum interval between consecutive outbound
// requests across all goroutines sharing one backend.
type requestGate struct {
	mu   sync.Mutex
	last time.Time
}

// wait blocks until at least interval has passed since the previous call,
// or until the context is cancelled.
func (g *requestGate) wait(ctx context.Context, interval time.Duration) error {
	g.mu.Lock()
	if d := time.Until(g.last.Add(interval)); d > 0 {
		g.mu.Unlock()
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return ctx.Err()
		}
		g.mu.Lock()
	}
	g.last = time.Now()
	g.mu.Unlock()
	return nil
}

// BuildDefaultHeaders builds the headers sent on structured API requests.
func BuildDefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   "Search-API-Backend/1.0",
	}
}
