// Package server exposes descriptor lookups over HTTP for inspecting a
// definitions deployment.
package server

import (
	"net/http"
	"time"

	"github.com/danmuck/bufrkit/internal/descriptor"
	"github.com/danmuck/bufrkit/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Lookup resolves one code.
type Lookup interface {
	Descriptor(code int) (*descriptor.Descriptor, error)
}

type Config struct {
	Name        string
	Addr        string
	CorsOrigins []string
}

type Server struct {
	cfg      Config
	lookup   Lookup
	logger   zerolog.Logger
	router   *gin.Engine
	appeared time.Time
}

func New(cfg Config, lookup Lookup, logger zerolog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(logger))
	router.Use(observability.RequestMetricsMiddleware(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CorsOrigins
		corsCfg.AllowMethods = []string{http.MethodGet}
		router.Use(cors.New(corsCfg))
	}

	s := &Server{
		cfg:      cfg,
		lookup:   lookup,
		logger:   logger,
		router:   router,
		appeared: time.Now(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.logger.Info().Str("addr", s.cfg.Addr).Msg("server: listening")
	return s.router.Run(s.cfg.Addr)
}
