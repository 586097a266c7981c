package ratelimit

import (
	"sync"
	"time"
)

// DefaultMaxRequests matches the historical per-endpoint default.
const DefaultMaxRequests = 30

// Decision describes the limiter state observed by one admission check.
// It carries everything needed for the X-RateLimit-* response headers.
type Decision struct {
	Limit     int   // configured maximum for the key
	Remaining int   // slots left in the current window after this check
	Reset     int64 // unix seconds when the oldest entry leaves the window
}

// Limiter is an in-memory sliding-window admission controller keyed by
// endpoint identity. All state is process-local; restarting the process
// resets every window.
type Limiter struct {
	mu         sync.Mutex
	window     time.Duration
	defaultMax int
	limits     map[string]int
	windows    map[string][]time.Time
}

// New creates a limiter with the given window size and default per-key maximum.
func New(window time.Duration, defaultMax int) *Limiter {
	if window <= 0 {
		window = time.Minute
	}
	if defaultMax <= 0 {
		defaultMax = DefaultMaxRequests
	}
	return &Limiter{
		window:     window,
		defaultMax: defaultMax,
		limits:     make(map[string]int),
		windows:    make(map[string][]time.Time),
	}
}

// SetLimit overrides the maximum for a single key.
func (l *Limiter) SetLimit(key string, max int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if max > 0 {
		l.limits[key] = max
	}
}

// Admit checks whether a request for key may proceed at time now.
// Expired entries are pruned lazily on each call; there is no background
// sweeper, so an idle key holds its stale entries until the next check.
// A refused attempt is not recorded.
func (l *Limiter) Admit(key string, now time.Time) (Decision, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	max := l.defaultMax
	if m, ok := l.limits[key]; ok {
		max = m
	}

	cutoff := now.Add(-l.window)
	entries := l.windows[key][:0]
	for _, t := range l.windows[key] {
		if t.After(cutoff) {
			entries = append(entries, t)
		}
	}

	decision := Decision{Limit: max}
	if len(entries) > 0 {
		decision.Reset = entries[0].Add(l.window).Unix()
	} else {
		decision.Reset = now.Add(l.window).Unix()
	}

	if len(entries) >= max {
		l.windows[key] = entries
		decision.Remaining = 0
		return decision, false
	}

	entries = append(entries, now)
	l.windows[key] = entries
	decision.Remaining = max - len(entries)
	return decision, true
}

// Window returns the configured window duration.
func (l *Limiter) Window() time.Duration {
	return l.window
}

// Len reports the number of recorded entries for key. Test hook.
func (l *Limiter) Len(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows[key])
}
