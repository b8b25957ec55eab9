// Package api serves the research stream and the document CRUD endpoints
// over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ammar944/AI-GOS-sub011/internal/auth"
	"github.com/ammar944/AI-GOS-sub011/internal/config"
	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/internal/monitoring"
	"github.com/ammar944/AI-GOS-sub011/internal/pipeline"
	"github.com/ammar944/AI-GOS-sub011/internal/store"
)

// ResearchStarter starts one research run.
type ResearchStarter interface {
	Start(ctx context.Context, req model.ResearchRequest) (*pipeline.Run, error)
}

// ResearcherFactory builds a fresh ResearchStarter for each request.
type ResearcherFactory func() ResearchStarter

// Deps are the collaborators a Server needs.
type Deps struct {
	Store    store.Store
	Verifier auth.Verifier
	Research ResearcherFactory
	Metrics  *monitoring.Metrics
}

// Server routes HTTP requests to handlers.
type Server struct {
	deps     Deps
	cfg      config.ServerConfig
	limiters *lru.Cache[string, *rate.Limiter]
}

const maxTrackedPrincipals = 10000

// NewServer creates a Server. Metrics may be nil.
func NewServer(deps Deps, cfg config.ServerConfig) *Server {
	if deps.Metrics == nil {
		deps.Metrics = monitoring.NewMetrics()
	}
	limiters, _ := lru.New[string, *rate.Limiter](maxTrackedPrincipals)
	return &Server{deps: deps, cfg: cfg, limiters: limiters}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.deps.Metrics.Handler())
	r.Get("/api/shared/{token}", s.handleGetShared)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.deps.Verifier))

		r.Post("/api/company-research", s.handleResearch)

		r.Route("/api/blueprints", func(r chi.Router) {
			r.Get("/", s.handleListBlueprints)
			r.Post("/", s.handleCreateBlueprint)
			r.Get("/{id}", s.handleGetBlueprint)
			r.Put("/{id}", s.handleUpdateBlueprint)
			r.Delete("/{id}", s.handleDeleteBlueprint)
			r.Post("/{id}/share", s.handleCreateShare)
		})

		r.Route("/api/media-plans", func(r chi.Router) {
			r.Get("/", s.handleListMediaPlans)
			r.Post("/", s.handleCreateMediaPlan)
			r.Get("/{id}", s.handleGetMediaPlan)
			r.Put("/{id}", s.handleUpdateMediaPlan)
			r.Delete("/{id}", s.handleDeleteMediaPlan)
		})

		r.Route("/api/conversations", func(r chi.Router) {
			r.Get("/", s.handleListConversations)
			r.Post("/", s.handleCreateConversation)
			r.Get("/{id}", s.handleGetConversation)
			r.Delete("/{id}", s.handleDeleteConversation)
			r.Get("/{id}/messages", s.handleListMessages)
			r.Post("/{id}/messages", s.handleAddMessage)
		})
	})
	return r
}

// observe logs each request and records it under its route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := ""
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		s.deps.Metrics.ObserveHTTP(r.Method, route, status, elapsed)
		zap.L().Debug("api: request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.deps.Store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.deps.Store.Ping(ctx); err != nil {
			zap.L().Warn("api: health store ping failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "store": "unreachable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// allow applies the per-principal research rate limit. A non-positive
// rate disables limiting.
func (s *Server) allow(principalID string) bool {
	if s.cfg.ResearchRateLimit <= 0 {
		return true
	}
	lim, ok := s.limiters.Get(principalID)
	if !ok {
		burst := s.cfg.ResearchBurst
		if burst < 1 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(s.cfg.ResearchRateLimit), burst)
		if prev, found, _ := s.limiters.PeekOrAdd(principalID, lim); found {
			lim = prev
		}
	}
	return lim.Allow()
}
