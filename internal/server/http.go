package server

import (
	"context"
	"net/http"
	"time"

	"repo-search/internal/config"
	"repo-search/internal/metrics"
	"repo-search/internal/middleware"
	"repo-search/internal/presentation/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Deps are the collaborators the router needs
type Deps struct {
	SearchHandler *handlers.SearchHandler
	HealthHandler *handlers.HealthHandler
	Metrics       *metrics.Metrics
	// Gatherer backs /metrics; nil disables the route
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// NewRouter builds the gin engine with all middleware and routes
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()

	router.Use(handlers.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger, deps.Metrics))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	router.GET("/health", deps.HealthHandler.Health)

	repos := router.Group("/api/repos")
	{
		repos.POST("/", deps.SearchHandler.SearchRepositories)
		repos.GET("/", deps.SearchHandler.SearchRepositories)
	}

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(c.AllowedOrigins) == 0 || (len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowedOrigins
	}
	return cc
}

// HTTPServer wraps http.Server with the configured timeouts
type HTTPServer struct {
	server *http.Server
	logger *zap.Logger
}

// NewHTTPServer creates a server for handler on the configured address
func NewHTTPServer(cfg *config.Config, handler http.Handler, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:         cfg.GetServerAddress(),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving until the server is shut down
func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Stop gracefully drains in-flight requests
func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
