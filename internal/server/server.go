// Package server exposes trace building over HTTP.
//
// Routes:
//
//	POST /v1/traces              build a trace from {graph, engine, options}
//	POST /v1/graphs/parse        text, YAML or JSON graph -> graph JSON
//	GET  /v1/pseudocode/{engine} the listing an engine highlights
//	GET  /healthz                liveness
//	GET  /metrics                Prometheus
//
// Every response carries an X-Run-ID header for log correlation.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/mstrace/internal/config"
	"github.com/katalvlaran/mstrace/kruskal"
)

// RunIDHeader carries the per-request uuid.
const RunIDHeader = "X-Run-ID"

const shutdownTimeout = 5 * time.Second

// Server wires configuration, logging, metrics and the trace memo behind a
// chi router.
type Server struct {
	cfg      config.ServerConfig
	engine   kruskal.Engine
	defaults kruskal.Options
	log      *slog.Logger
	metrics  *Metrics
	memo     *traceMemo
	router   chi.Router
}

// New builds a Server from a validated configuration.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	engine, defaults, err := cfg.TraceOptions()
	if err != nil {
		return nil, err
	}
	memo, err := newTraceMemo(cfg.Cache)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg.Server,
		engine:   engine,
		defaults: defaults,
		log:      log,
		metrics:  NewMetrics(),
		memo:     memo,
	}
	s.router = s.routes()

	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the service collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Close releases the memo.
func (s *Server) Close() error {
	return s.memo.close()
}

// Run listens on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("mstrace server listening", "addr", srv.Addr, "engine", s.engine)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)

	case <-ctx.Done():
		s.log.Info("mstrace server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			return srv.Close()
		}
		return nil
	}
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.runID)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/traces", s.instrument("traces", s.handleTrace))
		r.Post("/graphs/parse", s.instrument("parse", s.handleParse))
		r.Get("/pseudocode/{engine}", s.instrument("pseudocode", s.handlePseudocode))
	})

	return r
}

type runIDKey struct{}

// runID tags the request with a fresh uuid and echoes it in the response.
func (s *Server) runID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set(RunIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), runIDKey{}, id)))
	})
}

func runIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// instrument counts requests per route and status.
func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		h(ww, r)
		s.metrics.RequestsTotal.WithLabelValues(route, fmt.Sprint(ww.Status())).Inc()
	}
}
