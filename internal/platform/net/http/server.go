package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"prokontra/internal/platform/config"
	"prokontra/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server wraps a chi mux inside a stdlib http.Server.
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer builds a server from config. Each opt receives the mux so
// callers can mount routes and middleware before it starts.
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("API_PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("API_READ_HEADER_TIMEOUT", 10*time.Second),
			IdleTimeout:       cfg.MayDuration("API_IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router exposes the mux through the platform Router seam.
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Run listens and blocks until the server is shut down.
func (s *Server) Run(ctx context.Context) error {
	logger.Named("http").Info().Str("addr", s.addr).Msg("http listening")
	if err := s.srv.ListenAndServe(); err != stdhttp.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
