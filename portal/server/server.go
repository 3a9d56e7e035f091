package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viant/designsuite/portal/config"
	"github.com/viant/designsuite/portal/module"
	"github.com/viant/designsuite/portal/page"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per request id assigned by the server.
const RequestIDHeader = "X-Request-Id"

// Server serves the landing page, the module directory and metrics.
type Server struct {
	cfg      *config.Config
	registry *module.Registry
	page     *page.Page
	renderer *page.Renderer
	logger   *zap.Logger
	metrics  *metrics
	router   *mux.Router
}

// New creates a server for the supplied configuration and renderer. A nil
// logger disables logging.
func New(cfg *config.Config, renderer *page.Renderer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := cfg.Registry()
	s := &Server{
		cfg:      cfg,
		registry: registry,
		page:     page.NewWithRegistry(cfg, registry),
		renderer: renderer,
		logger:   logger,
		metrics:  newMetrics(),
		router:   mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.middleware)
	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc("/api/modules", s.handleModules).Methods(http.MethodGet)
	s.router.HandleFunc("/api/modules/{id}", s.handleModule).Methods(http.MethodGet)
	s.router.HandleFunc("/launch/{id}", s.handleLaunch).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	httpCfg := s.cfg.HTTP
	srv := &http.Server{
		Addr:         httpCfg.Addr,
		Handler:      s.router,
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("portal listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("portal shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	buf := new(bytes.Buffer)
	if err := s.renderer.Render(buf, s.page); err != nil {
		s.logger.Error("page render failed", zap.Error(err), zap.String("request_id", requestID(r)))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.metrics.renders.Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

// ModulesResponse is the JSON response for GET /api/modules.
type ModulesResponse struct {
	Modules []module.Status `json:"modules"`
	Count   int             `json:"count"`
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	statuses := s.registry.Statuses()
	s.sendJSON(w, http.StatusOK, ModulesResponse{Modules: statuses, Count: len(statuses)})
}

func (s *Server) handleModule(w http.ResponseWriter, r *http.Request) {
	m, err := s.registry.Lookup(mux.Vars(r)["id"])
	if err != nil {
		s.sendError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.sendJSON(w, http.StatusOK, m.Status())
}

func (s *Server) handleLaunch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	target, err := s.registry.Target(id)
	switch {
	case errors.Is(err, module.ErrUnknownModule):
		s.sendError(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, module.ErrNotConfigured):
		s.metrics.launches.WithLabelValues(id, "not_configured").Inc()
		m, _ := s.registry.Lookup(id)
		s.sendError(w, m.Link().Warning, http.StatusNotFound)
		return
	case err != nil:
		s.sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.metrics.launches.WithLabelValues(id, "redirect").Inc()
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response failed", zap.Error(err))
	}
}

func (s *Server) sendError(w http.ResponseWriter, message string, status int) {
	s.sendJSON(w, status, map[string]string{"error": message})
}

type requestIDKey struct{}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// middleware assigns a request id, logs the request and records its latency.
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		elapsed := time.Since(started)
		s.metrics.duration.WithLabelValues(route, strconv.Itoa(rec.status)).Observe(elapsed.Seconds())
		s.logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", elapsed))
	})
}
