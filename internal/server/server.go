package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Server wires configuration, storage, and the HTTP stack together.
type Server struct {
	cfg        Config
	log        *zap.SugaredLogger
	store      AdhesionStore
	limiter    *rateLimiter
	origins    []string
	httpServer *http.Server
}

// New assembles the router and middleware chain. Order matters: request
// id and logging first, then the unconditional security headers, the
// CORS allow-list, and finally the per-IP rate limit on the /v1 subtree.
// Development mode skips the rate limit entirely.
func New(cfg Config, log *zap.SugaredLogger, store AdhesionStore) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log,
		store:   store,
		limiter: newRateLimiter(cfg.RateLimitMaxRequests, cfg.RateLimitWindow()),
		origins: cfg.AllowedOrigins(),
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(s.corsMiddleware)

	r.Route("/v1", func(r chi.Router) {
		if !cfg.DevMode() {
			r.Use(s.limiter.middleware)
		}
		r.Get("/health", s.handleHealth)
		r.Post("/adhesions", s.handleCreateAdhesion)
		r.With(s.requireAdmin).Get("/adhesions", s.handleListAdhesions)
	})

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the assembled routes; used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.httpServer.Serve(ln)
}

// Shutdown drains in-flight requests and stops the limiter's reaper.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}

// Close releases background resources without having served; for tests
// that drive the handler directly.
func (s *Server) Close() {
	s.limiter.Stop()
}
