package server

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ThomasCrouzet/tierview/internal/metrics"
	"github.com/ThomasCrouzet/tierview/internal/model"
	"github.com/ThomasCrouzet/tierview/internal/render"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

// SnapshotBuilder builds a fresh snapshot on every call.
type SnapshotBuilder interface {
	Build(ctx context.Context) *model.Snapshot
}

// Config controls the optional parts of the router.
type Config struct {
	StaticDir string // served for every unmatched path, nothing when empty
	Metrics   bool   // expose /metrics
}

// Server serves the dashboard. Each page load runs one full discovery.
type Server struct {
	builder  SnapshotBuilder
	cfg      Config
	listener net.Listener
	page     render.Renderer
	api      render.Renderer
}

// New returns a dashboard server that will serve on listener.
func New(builder SnapshotBuilder, cfg Config, listener net.Listener) *Server {
	return &Server{
		builder:  builder,
		cfg:      cfg,
		listener: listener,
		page:     render.NewHTMLRenderer(),
		api:      render.JSONRenderer{},
	}
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestID, Logger(zap.L(), "http"))
		r.Get("/", s.handleSnapshot(s.page))
		r.Get("/index.html", s.handleSnapshot(s.page))
		r.Get("/api/snapshot", s.handleSnapshot(s.api))
	})

	if s.cfg.Metrics {
		router.Handle("/metrics", metrics.Handler())
	}

	static := http.NotFoundHandler()
	if s.cfg.StaticDir != "" {
		static = http.FileServer(http.Dir(s.cfg.StaticDir))
	}
	router.NotFound(static.ServeHTTP)

	return router
}

func (s *Server) handleSnapshot(renderer render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := s.builder.Build(r.Context())

		var buf bytes.Buffer
		if err := renderer.Render(&buf, snap); err != nil {
			zap.S().Named("server").Errorw("failed to render snapshot", "error", err)
			http.Error(w, "failed to render snapshot", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", renderer.ContentType())
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := http.Server{Handler: s.Router(), ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		zap.S().Named("server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
	}()

	zap.S().Named("server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil &&
		!errors.Is(err, http.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
