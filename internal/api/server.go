// Package api provides the HTTP API server and handlers for nameflags.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/listenupapp/nameflags/internal/config"
	"github.com/listenupapp/nameflags/internal/ratelimit"
	"github.com/listenupapp/nameflags/internal/service"
	"github.com/listenupapp/nameflags/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store         *store.Store
	flags         *service.FlagService
	router        *chi.Mux
	api           huma.API
	logger        *slog.Logger
	renderLimiter *ratelimit.KeyedRateLimiter
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, flags *service.FlagService, cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		store:  st,
		flags:  flags,
		router: chi.NewRouter(),
		logger: logger,
	}
	if cfg.RateLimit.RenderPerMinute > 0 {
		s.renderLimiter = ratelimit.PerMinute(cfg.RateLimit.RenderPerMinute, cfg.RateLimit.Burst)
	}

	s.setupMiddleware(cfg.Server.AllowedOrigins)

	humaConfig := huma.DefaultConfig("nameflags API", "1.0.0")
	humaConfig.Info.Description = "Deterministic colour flags generated from names."
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	if s.renderLimiter != nil {
		s.renderLimiter.Stop()
	}
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware(origins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "If-None-Match", "X-Request-ID"},
		ExposedHeaders:   []string{"ETag", "X-BlurHash", "X-Render-Cache", "Content-Disposition", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

func (s *Server) setupRoutes() {
	s.registerHealthRoutes()
	s.registerPaletteRoutes()
	s.registerExampleRoutes()
	s.registerImageRoutes()
	s.registerFlagRoutes()
}
