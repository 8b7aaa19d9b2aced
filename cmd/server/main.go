package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "repo-search/docs"
	"repo-search/internal/application/service"
	"repo-search/internal/config"
	"repo-search/internal/github"
	infraGitHub "repo-search/internal/infrastructure/github"
	"repo-search/internal/logger"
	"repo-search/internal/metrics"
	"repo-search/internal/presentation/handlers"
	"repo-search/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// @title Repo Search API
// @version 1.0
// @description Searches GitHub repositories by topic, language and stars

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize infrastructure layer
	githubClient := github.NewClient(cfg.GitHub.Token,
		github.WithBaseURL(cfg.GitHub.BaseURL),
		github.WithUserAgent(cfg.GitHub.UserAgent),
		github.WithTimeout(cfg.GitHub.Timeout),
	)
	searcher := infraGitHub.NewSearchService(githubClient, m, zlog)

	// Initialize application layer
	searchService := service.NewSearchService(searcher)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize presentation layer
	router := server.NewRouter(cfg, server.Deps{
		SearchHandler: handlers.NewSearchHandler(searchService, zlog),
		HealthHandler: handlers.NewHealthHandler(),
		Metrics:       m,
		Gatherer:      reg,
		Logger:        zlog,
	})

	srv := server.NewHTTPServer(cfg, router, zlog)

	// Start server in a goroutine
	go func() {
		if err := srv.Start(); err != nil {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		zlog.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	zlog.Info("Server exited")
}
