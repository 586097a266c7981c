package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lk2023060901/search-api-backend/internal/conf"
	"github.com/lk2023060901/search-api-backend/internal/pkg/logger"
	"github.com/lk2023060901/search-api-backend/internal/search/biz"
	"github.com/lk2023060901/search-api-backend/internal/search/provider"
	"github.com/lk2023060901/search-api-backend/internal/search/service"
	"github.com/lk2023060901/search-api-backend/internal/server"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	logConfig := &logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	}

	log, err := logger.New(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Initialize global logger
	if err := logger.InitGlobal(logConfig); err != nil {
		log.Fatal("failed to initialize global logger", zap.Error(err))
	}

	log.Info("config loaded successfully")

	// Initialize search backends. The library backend is optional: whether
	// it participates in the cascade is decided here, once, at startup.
	var library provider.Backend
	if config.Search.Library.Enabled() {
		library, err = provider.NewLibraryBackend(config.Search.Library, log.Logger)
		if err != nil {
			log.Fatal("failed to initialize library backend", zap.Error(err))
		}
		log.Info("library backend enabled", zap.String("api_host", config.Search.Library.APIHost))
	} else {
		log.Info("library backend not configured, scrape is the primary strategy")
	}

	scrape, err := provider.NewScrapeBackend(config.Search.Scrape, log.Logger)
	if err != nil {
		log.Fatal("failed to initialize scrape backend", zap.Error(err))
	}

	// Initialize use cases
	searchUseCase := biz.NewSearchUseCase(library, scrape, log.Logger)

	// Initialize services
	searchService, err := service.NewSearchService(
		searchUseCase,
		config.Search.FallbackEnabled,
		config.Server.Environment,
		log.Logger,
	)
	if err != nil {
		log.Fatal("failed to initialize search service", zap.Error(err))
	}

	// Initialize HTTP server
	httpServer := server.NewHTTPServer(config, log, searchService)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
