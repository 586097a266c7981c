package biz

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lk2023060901/search-api-backend/internal/search/provider"
	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

// SearchUseCase runs the retrieval cascade: library backend first (when
// configured), then direct scraping, then deterministic placeholders.
// Each strategy gets exactly one attempt; the first non-empty result set
// terminates the cascade. The placeholder step cannot fail, so Search
// always yields a usable outcome.
type SearchUseCase struct {
	library     provider.Backend // nil when not configured
	scrape      provider.Backend
	placeholder provider.Backend
	logger      *zap.Logger
}

// NewSearchUseCase creates the search use case. library may be nil.
func NewSearchUseCase(library, scrape provider.Backend, logger *zap.Logger) *SearchUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchUseCase{
		library:     library,
		scrape:      scrape,
		placeholder: provider.NewPlaceholderBackend(),
		logger:      logger,
	}
}

// HasLibrary reports whether the primary library backend is configured.
func (uc *SearchUseCase) HasLibrary() bool {
	return uc.library != nil
}

// Search executes the full cascade for one query. Elapsed time covers the
// whole cascade, not individual strategies.
func (uc *SearchUseCase) Search(ctx context.Context, query *types.SearchQuery) *types.SearchOutcome {
	start := time.Now()

	if uc.library != nil {
		results, err := uc.library.Fetch(ctx, query)
		switch {
		case err != nil:
			uc.logger.Warn("library backend failed, falling back to scrape",
				zap.String("query", query.Term),
				zap.String("method", string(types.MethodLibraryFailed)),
				zap.Error(err),
			)
		case len(results) > 0:
			return uc.outcome(query, results, types.MethodLibrary, start)
		}
	}

	results, err := uc.scrape.Fetch(ctx, query)
	switch {
	case err != nil:
		uc.logger.Warn("scrape backend failed, falling back to placeholder",
			zap.String("query", query.Term),
			zap.String("method", string(types.MethodScrapeFailed)),
			zap.Error(err),
		)
	case len(results) > 0:
		return uc.outcome(query, results, types.MethodScrape, start)
	}

	// Infallible by construction.
	results, _ = uc.placeholder.Fetch(ctx, query)
	return uc.outcome(query, results, types.MethodPlaceholder, start)
}

// SearchDirect executes only the library backend, without fallback.
// Callers that run in library-only mode surface the error themselves.
func (uc *SearchUseCase) SearchDirect(ctx context.Context, query *types.SearchQuery) (*types.SearchOutcome, error) {
	start := time.Now()

	backend := uc.library
	if backend == nil {
		backend = uc.scrape
	}

	results, err := backend.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	return uc.outcome(query, results, backend.Name(), start), nil
}

func (uc *SearchUseCase) outcome(query *types.SearchQuery, results []*types.SearchResult, method types.Method, start time.Time) *types.SearchOutcome {
	elapsed := time.Since(start)

	uc.logger.Info("search completed",
		zap.String("query", query.Term),
		zap.String("method", string(method)),
		zap.Int("results", len(results)),
		zap.Duration("elapsed", elapsed),
	)

	return &types.SearchOutcome{
		Query:      query,
		Results:    results,
		MethodUsed: method,
		Elapsed:    elapsed,
	}
}
