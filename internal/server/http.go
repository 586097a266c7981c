package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lk2023060901/search-api-backend/internal/conf"
	apperrors "github.com/lk2023060901/search-api-backend/internal/pkg/errors"
	"github.com/lk2023060901/search-api-backend/internal/pkg/logger"
	"github.com/lk2023060901/search-api-backend/internal/pkg/ratelimit"
	"github.com/lk2023060901/search-api-backend/internal/pkg/response"
	"github.com/lk2023060901/search-api-backend/internal/search/service"
)

// Endpoint keys used by the rate limiter. One window per key; the
// documentation and health endpoints are exempt.
const (
	EndpointSearch     = "search"
	EndpointSearchPath = "search_path"
)

type HTTPServer struct {
	server        *http.Server
	logger        *logger.Logger
	searchService *service.SearchService
}

func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	searchService *service.SearchService,
) *HTTPServer {
	router := NewRouter(config, log, searchService)

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)

	return &HTTPServer{
		server: &http.Server{
			Addr:    addr,
			Handler: router,
		},
		logger:        log,
		searchService: searchService,
	}
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(
	config *conf.Config,
	log *logger.Logger,
	searchService *service.SearchService,
) *gin.Engine {
	if config.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.GinRecovery(log))
	router.Use(logger.GinLogger(log))

	router.NoRoute(func(c *gin.Context) {
		response.ErrorWithCode(c, apperrors.ErrNotFound)
	})

	limiter := newLimiter(&config.RateLimit)

	searchService.RegisterRoutes(router)
	router.GET("/search",
		RateLimitMiddleware(limiter, EndpointSearch, log.Logger),
		searchService.Search,
	)
	router.GET("/search/*query",
		RateLimitMiddleware(limiter, EndpointSearchPath, log.Logger),
		searchService.SearchPath,
	)

	return router
}

func newLimiter(cfg *conf.RateLimitConfig) *ratelimit.Limiter {
	window := time.Duration(cfg.WindowSeconds) * time.Second
	limiter := ratelimit.New(window, cfg.DefaultMax)
	limiter.SetLimit(EndpointSearch, cfg.SearchMax)
	limiter.SetLimit(EndpointSearchPath, cfg.SearchPathMax)
	return limiter
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
