// Package callback runs the loopback HTTP server that receives the OAuth2
// redirect during the authorization-code flow.
package callback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v3"
)

// Result carries the authorization code delivered to the redirect endpoint.
type Result struct {
	Code string
}

// Server listens for a single GET /callback redirect, validates the state
// parameter, and hands the authorization code to the login flow.
type Server struct {
	mux     *http.ServeMux
	server  *http.Server
	state   string
	results chan Result
}

// Compile-time check that Server implements http.Handler
var _ http.Handler = (*Server)(nil)

// New creates a callback server expecting the given state value on the
// redirect.
func New(logger *slog.Logger, state string) *Server {
	s := &Server{
		state:   state,
		results: make(chan Result, 1),
	}

	mux := http.NewServeMux()
	mux.Handle("GET /callback", applyMiddlewares(http.HandlerFunc(s.handleCallback),
		logging(logger),
		recovery,
	))
	s.mux = mux

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Result delivers the authorization code once the redirect arrives.
func (s *Server) Result() <-chan Result {
	return s.results
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if errCode := q.Get("error"); errCode != "" {
		writeJSONError(r.Context(), w, fmt.Sprintf("authorization denied: %s", errCode), http.StatusBadRequest)
		return
	}
	if q.Get("state") != s.state {
		writeJSONError(r.Context(), w, "state mismatch", http.StatusForbidden)
		return
	}
	code := q.Get("code")
	if code == "" {
		writeJSONError(r.Context(), w, "missing code parameter", http.StatusBadRequest)
		return
	}

	select {
	case s.results <- Result{Code: code}:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Authorized. You can close this window and return to the terminal.\n"))
	default:
		writeJSONError(r.Context(), w, "authorization code already received", http.StatusConflict)
	}
}

// Start starts the HTTP server in the background and returns immediately.
// The listener is created synchronously so port-in-use errors surface here;
// runtime errors go to the returned channel. The caller must call Shutdown.
func (s *Server) Start(ctx context.Context, address string) (<-chan error, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s.server = &http.Server{
		Handler:      s,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		err := s.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return errCh, nil
}

// Shutdown performs graceful shutdown of the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	if err := s.server.Shutdown(ctx); err != nil {
		_ = s.server.Close()
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// recovery recovers from panics in the handler and returns HTTP 500.
func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recover() != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// logging logs callback requests with method, path, status, and duration.
func logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		Schema: httplog.SchemaECS.Concise(true),

		// The redirect query carries the authorization code; never log it.
		LogRequestHeaders:  []string{},
		LogResponseHeaders: []string{},
		LogRequestBody:     nil,
		LogResponseBody:    nil,

		RecoverPanics: false,
	})
}

// applyMiddlewares applies middlewares to a handler in the order they appear.
// The first middleware in the slice is the outermost.
func applyMiddlewares(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
