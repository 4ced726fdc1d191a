// Package httpapi exposes the authentication flows over the JSON HTTP
// contract consumed by the SecureConnect web client.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/secureconnect/internal/logging"
	"github.com/dmitrijs2005/secureconnect/internal/server/services"
)

type Server struct {
	address string
	users   *services.UserService
	logger  logging.Logger
}

func NewServer(a string, l logging.Logger, us *services.UserService) (*Server, error) {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
	}, nil
}

// Handler builds the route table. Split out from Run so tests can drive
// the full stack through httptest without binding a socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/signup", s.handleSignup)
	mux.HandleFunc("POST /api/check-username", s.handleCheckUsername)
	mux.HandleFunc("GET /api/ping", s.handlePing)
	return s.withRequestLogging(mux)
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
