// Package apitest provides a stub ERP backend for tests.
//
// Register a responder per endpoint path, point a client at Server.URL and inspect the recorded requests afterwards:
//
//	srv := apitest.NewServer(t)
//	srv.Handle("/api/customers/getById", apitest.Failure("not found", apperrors.ErrCodeNotFound))
//	c := client.NewClient(srv.URL, logger)
package apitest

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/alex005489465/MeowManager/internal/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Request is a request received by the stub server
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

type Server struct {
	*httptest.Server

	router    *chi.Mux
	logger    *slog.Logger
	closed    chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	requests []Request
}

type Option func(*Server)

// WithLogger logs the requests served by the stub (requests are not logged by default)
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer starts a stub backend that is closed when the test ends
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		router: chi.NewRouter(),
		logger: slog.New(slog.DiscardHandler),
		closed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(chimiddleware.RequestID)
	s.router.Use(logger.RequestLogging(s.logger))
	s.router.Use(s.recordRequests)

	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Close)

	return s
}

// Handle registers the handler for POST requests to path
func (s *Server) Handle(path string, h http.HandlerFunc) {
	s.router.Post(path, h)
}

// Hang returns a handler that does not respond until the client gives up or the server is closed
func (s *Server) Hang() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-s.closed:
		}
	}
}

// Close releases hanging handlers and shuts the server down
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.Server.Close()
	})
}

// Requests returns the requests received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request to path
func (s *Server) LastRequest(path string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Path == path {
			return s.requests[i], true
		}
	}
	return Request{}, false
}

func (s *Server) recordRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
