// Package server hosts the HTTP front door of the pipeline.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"m2t/internal/api/middleware"
	"m2t/internal/api/v1/handlers"
)

// Config represents API server configuration.
type Config struct {
	Host          string
	Port          string
	ReadTimeout   time.Duration
	IdleTimeout   time.Duration
	Environment   string
	DefaultDevice string
}

// Server wraps the gin router and its http.Server.
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// New builds the server around a pipeline runner. The prometheus gatherer
// backs the /metrics endpoint.
func New(config Config, pipeline handlers.PipelineRunner, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	transcriptions := handlers.NewTranscriptionHandler(pipeline, config.DefaultDevice, logger)
	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1.POST("/transcriptions", transcriptions.Create)
	}

	// No write timeout: responses stay open for long engine runs.
	httpServer := &http.Server{
		Addr:        fmt.Sprintf("%s:%s", config.Host, config.Port),
		Handler:     router,
		ReadTimeout: config.ReadTimeout,
		IdleTimeout: config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	s.logger.Info("starting API server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
