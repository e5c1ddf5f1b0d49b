// Package api exposes the variate generators over HTTP for the teaching
// visualization front end. The core stays transport-free; this adapter only
// translates JSON requests into service calls.
package api

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"simvar/app"
	"simvar/internal"
)

//go:embed docs.md
var docsFS embed.FS

// Config holds the server settings.
type Config struct {
	Port    string
	GinMode string
}

// Server serves the variate-generation API.
type Server struct {
	router *gin.Engine
	svc    *app.VariateService
	sweep  *app.SweepService
	logger *internal.Logger
	port   string
}

// NewServer builds the router and wires the handlers.
func NewServer(cfg Config, svc *app.VariateService) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		router: gin.New(),
		svc:    svc,
		sweep:  app.NewSweepService(svc),
		logger: internal.DefaultLogger,
		port:   cfg.Port,
	}
	s.router.Use(gin.Recovery(), RequestID())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleDocs)
	s.router.GET("/healthz", s.handleHealth)

	v1 := s.router.Group("/v1")
	{
		v1.GET("/streams", s.handleStreams)
		v1.POST("/seed", s.handleSeed)
		v1.POST("/variates/unif", s.handleUnif)
		v1.POST("/variates/exp", s.handleExp)
		v1.POST("/variates/binom", s.handleBinom)
		v1.POST("/variates/norm", s.handleNorm)
		v1.POST("/sweeps", s.handleSweep)
	}
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	s.logger.Info("serving variate API on :%s", s.port)
	return s.router.Run(":" + s.port)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleStreams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"num_streams": s.svc.NumStreams()})
}

func (s *Server) handleDocs(c *gin.Context) {
	src, err := docsFS.ReadFile("docs.md")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "docs unavailable"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", markdown.ToHTML(src, nil, nil))
}
