package service

import (
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lk2023060901/search-api-backend/internal/docs"
	apperrors "github.com/lk2023060901/search-api-backend/internal/pkg/errors"
	"github.com/lk2023060901/search-api-backend/internal/pkg/response"
	"github.com/lk2023060901/search-api-backend/internal/pkg/validator"
	"github.com/lk2023060901/search-api-backend/internal/search/biz"
	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

const (
	ServiceName = "search-api-backend"
	Version     = "1.0.0"
)

// SearchService exposes the search use case over HTTP.
type SearchService struct {
	searchUseCase   *biz.SearchUseCase
	fallbackEnabled bool
	environment     string
	docsPage        []byte
	logger          *zap.Logger
}

// NewSearchService creates the HTTP service.
func NewSearchService(searchUseCase *biz.SearchUseCase, fallbackEnabled bool, environment string, logger *zap.Logger) (*SearchService, error) {
	page, err := docs.Render()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SearchService{
		searchUseCase:   searchUseCase,
		fallbackEnabled: fallbackEnabled,
		environment:     environment,
		docsPage:        page,
		logger:          logger,
	}, nil
}

// RegisterRoutes registers the non-rate-limited routes.
// Search routes are registered separately so the server can attach the
// rate-limit middleware to them alone.
func (s *SearchService) RegisterRoutes(r gin.IRouter) {
	r.GET("/", s.Home)
	r.GET("/docs", s.Docs)
	r.GET("/health", s.Health)
}

// Home returns the capability and version descriptor.
func (s *SearchService) Home(c *gin.Context) {
	response.Success(c, gin.H{
		"message": "Search API",
		"version": Version,
		"endpoints": gin.H{
			"/search":         "GET - Perform search",
			"/search/<query>": "GET - Perform search with path parameter",
			"/health":         "GET - Health check",
			"/docs":           "GET - API documentation page",
		},
		"parameters": gin.H{
			"q":     "Search query (required)",
			"num":   "Number of results (default: 10, max: 20)",
			"lang":  "Language code (default: 'en')",
			"sleep": "Delay between requests in seconds (default: 1)",
		},
		"examples": gin.H{
			"basic":    "/search?q=python+flask",
			"advanced": "/search?q=python+flask&num=5&lang=en&sleep=1",
			"path":     "/search/python%20flask?num=3",
		},
	})
}

// Docs serves the rendered documentation page.
func (s *SearchService) Docs(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.docsPage)
}

// Health returns liveness and build information.
func (s *SearchService) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":      "healthy",
		"service":     ServiceName,
		"version":     Version,
		"timestamp":   unixSeconds(time.Now()),
		"environment": s.environment,
	})
}

// Search handles GET /search with the query in the q parameter.
func (s *SearchService) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.ErrorWithCode(c, apperrors.ErrSearchMissingQuery)
		return
	}
	s.handleSearch(c, term)
}

// SearchPath handles GET /search/<query> with a percent-encoded path query.
func (s *SearchService) SearchPath(c *gin.Context) {
	raw := strings.TrimPrefix(c.Param("query"), "/")
	term, err := url.PathUnescape(raw)
	if err != nil {
		term = raw
	}
	if term == "" {
		response.ErrorWithCode(c, apperrors.ErrSearchMissingQuery)
		return
	}
	s.handleSearch(c, term)
}

func (s *SearchService) handleSearch(c *gin.Context, term string) {
	query, err := s.parseQuery(c, term)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	s.logger.Info("search request",
		zap.String("query", query.Term),
		zap.Int("num_results", query.NumResults),
	)

	if !s.fallbackEnabled {
		outcome, err := s.searchUseCase.SearchDirect(c.Request.Context(), query)
		if err != nil {
			s.logger.Error("search failed", zap.String("query", query.Term), zap.Error(err))
			response.ErrorWithCode(c, apperrors.ErrSearchUnavailable)
			return
		}
		response.Success(c, s.envelope(outcome, false))
		return
	}

	// The cascade cannot fail: the placeholder strategy always succeeds.
	outcome := s.searchUseCase.Search(c.Request.Context(), query)
	response.Success(c, s.envelope(outcome, true))
}

// parseQuery builds the immutable query value from request parameters.
func (s *SearchService) parseQuery(c *gin.Context, term string) (*types.SearchQuery, error) {
	numResults, err := intParam(c, "num", types.DefaultNumResults)
	if err != nil {
		return nil, err
	}
	sleepInterval, err := intParam(c, "sleep", types.MinSleepSeconds)
	if err != nil {
		return nil, err
	}
	lang := validator.NormalizeLangCode(c.Query("lang"), types.DefaultLang)

	return types.NewSearchQuery(term, numResults, lang, sleepInterval), nil
}

func intParam(c *gin.Context, name string, defaultValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrSearchInvalidParams)
	}
	return v, nil
}

// searchEnvelope is the JSON body returned by the search endpoints.
type searchEnvelope struct {
	Query        string                `json:"query"`
	Parameters   searchParams          `json:"parameters"`
	TotalResults int                   `json:"total_results"`
	Results      []*types.SearchResult `json:"results"`
	MethodUsed   string                `json:"method_used,omitempty"`
	ResponseTime *float64              `json:"response_time,omitempty"`
	Timestamp    float64               `json:"timestamp"`
}

type searchParams struct {
	NumResults    int    `json:"num_results"`
	Lang          string `json:"lang"`
	SleepInterval int    `json:"sleep_interval"`
}

func (s *SearchService) envelope(outcome *types.SearchOutcome, withMethod bool) *searchEnvelope {
	env := &searchEnvelope{
		Query: outcome.Query.Term,
		Parameters: searchParams{
			NumResults:    outcome.Query.NumResults,
			Lang:          outcome.Query.Lang,
			SleepInterval: outcome.Query.SleepInterval,
		},
		TotalResults: len(outcome.Results),
		Results:      outcome.Results,
		Timestamp:    unixSeconds(time.Now()),
	}

	if withMethod {
		env.MethodUsed = string(outcome.MethodUsed)
		elapsed := math.Round(outcome.Elapsed.Seconds()*1000) / 1000
		env.ResponseTime = &elapsed
	}

	return env
}

// unixSeconds returns the time as fractional unix seconds, the timestamp
// format historically used by this API.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
