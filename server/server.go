package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pileup/pileup/pkg/domain"
	"github.com/pileup/pileup/pkg/engine"
	"github.com/pileup/pileup/pkg/scheduler"
	"github.com/pileup/pileup/pkg/stats"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	store     Store
	scheduler Scheduler
	engine    *engine.Engine
	version   string
	debug     bool
	sanitizer *bluemonday.Policy

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store interface for server operations
type Store interface {
	Backlog(ctx context.Context, filter domain.EntryFilter) ([]domain.BacklogEntry, error)
	Entry(ctx context.Context, id int64) (*domain.BacklogEntry, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status, reason string) (bool, error)
	CountByStatus(ctx context.Context, status domain.Status) (int, error)
	CreateShare(ctx context.Context, payload stats.Shareable) (string, error)
	GetShare(ctx context.Context, id string) (*stats.Shareable, error)
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	SyncNow(ctx context.Context) (scheduler.SyncResult, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetUserName() string
}

// New initializes a new server instance
func New(cfg ConfigProvider, store Store, sched Scheduler, eng *engine.Engine, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		store:     store,
		scheduler: sched,
		engine:    eng,
		version:   version,
		debug:     debug,
		sanitizer: bluemonday.StrictPolicy(),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pileup", "pileup", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /pile", s.pileHandler)
		r.HandleFunc("POST /pile/sync", s.syncHandler)
		r.HandleFunc("POST /pile/{id}/{action}", s.entryActionHandler)

		r.HandleFunc("GET /recommendations", s.recommendationsHandler)
		r.HandleFunc("GET /plans", s.plansHandler)
		r.HandleFunc("GET /greeting", s.greetingHandler)
		r.HandleFunc("GET /analysis", s.analysisHandler)
		r.HandleFunc("GET /motivation", s.motivationHandler)

		r.HandleFunc("GET /stats/reality-check", s.realityCheckHandler)
		r.HandleFunc("GET /stats/shame-score", s.shameScoreHandler)
		r.HandleFunc("GET /stats/insights", s.insightsHandler)

		r.HandleFunc("POST /share", s.createShareHandler)
		r.HandleFunc("GET /share/{id}", s.getShareHandler)
	})
}

// statusHandler returns server status with backlog counts
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	unplayed, err := s.store.CountByStatus(r.Context(), domain.StatusUnplayed)
	if err != nil {
		lgr.Printf("[ERROR] failed to count unplayed entries: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"unplayed": unplayed,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
