// ABOUTME: HTTP server exposing the tool endpoint, records API, and avatar session broker.
// ABOUTME: Built on gin; wires the dispatcher and avatar client behind JSON routes.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harperreed/vitalog/internal/avatar"
	"github.com/harperreed/vitalog/internal/resolver"
	"github.com/harperreed/vitalog/internal/store"
	"github.com/harperreed/vitalog/internal/tools"
)

// Server hosts the HTTP surface consumed by the web UI and by the external
// avatar service's tool callbacks.
type Server struct {
	engine     *gin.Engine
	store      store.Store
	dispatcher *tools.Dispatcher
	avatar     *avatar.Client
	logger     zerolog.Logger
}

// NewServer builds the HTTP server and its routes. The avatar client may be
// nil when no avatar API key is configured; the session route then reports
// the missing configuration.
func NewServer(st store.Store, av *avatar.Client, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:     engine,
		store:      st,
		dispatcher: tools.NewDispatcher(resolver.New(st)),
		avatar:     av,
		logger:     logger.With().Str("component", "api").Logger(),
	}

	engine.Use(s.requestLogger())

	engine.GET("/healthz", s.handleHealthz)
	engine.GET("/api/records", s.handleGetRecords)
	engine.POST("/api/avatar-tool", s.handleAvatarTool)
	engine.POST("/api/avatar/session", s.handleAvatarSession)

	return s
}

// Engine exposes the underlying gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server on addr and blocks until it stops.
func (s *Server) Run(addr string) error {
	s.logger.Info().Str("addr", addr).Msg("starting HTTP server")
	return s.engine.Run(addr)
}
