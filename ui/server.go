package ui

import (
	"log"

	"github.com/gin-gonic/gin"

	"golift/app"
	"golift/internal/config"
)

// Server represents the JSON API server for the significance engine
type Server struct {
	router  *gin.Engine
	config  *config.Config
	compare *app.CompareService
	batch   *app.BatchService
}

// NewServer creates a new API server instance
func NewServer(cfg *config.Config) *Server {
	compare := app.NewCompareService(cfg.Analysis.Confidence, cfg.Analysis.Alpha)
	s := &Server{
		router:  gin.Default(),
		config:  cfg,
		compare: compare,
		batch:   app.NewBatchService(compare),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/compare", s.handleCompare)
		api.POST("/batch", s.handleBatch)
	}
}

// Run starts the HTTP server on the configured port
func (s *Server) Run() error {
	addr := ":" + s.config.Server.Port
	log.Printf("[Server] Starting API server on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying gin engine for testing
func (s *Server) Router() *gin.Engine {
	return s.router
}
