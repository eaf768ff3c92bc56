// Package http exposes a shelf.Navigator to presentation layers over HTTP.
// Every endpoint responds with a JSON-encoded shelf.View.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/shelf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ShutdownTimeout is the time given for outstanding requests to finish
// before the server is forcibly closed.
const ShutdownTimeout = 5 * time.Second

// ClientIDHeader identifies the end user on whose behalf a request is made.
// Requests without it are keyed by remote host for rate limiting.
const ClientIDHeader = "X-Client-ID"

// Server serves navigation views over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux

	// Bind address. Set before calling Open().
	Addr string

	// Services used by the handlers.
	Navigator shelf.Navigator

	// Optional. Requests over a client's rate are rejected with 429.
	Limiter *ClientLimiter

	// Optional. Served at /metrics when set.
	Gatherer prometheus.Gatherer

	Logger *slog.Logger
}

// NewServer returns a new Server with routes registered.
func NewServer() *Server {
	s := &Server{
		router: http.NewServeMux(),
		Logger: slog.Default(),
	}
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.HandleFunc("GET /healthz", s.handleHealth)
	s.router.HandleFunc("GET /metrics", s.handleMetrics)
	s.router.Handle("GET /catalog", s.limit(http.HandlerFunc(s.handleCatalog)))
	s.router.Handle("GET /directory", s.limit(http.HandlerFunc(s.handleDirectory)))
	s.router.Handle("GET /search", s.limit(http.HandlerFunc(s.handleSearch)))
	s.router.Handle("GET /action", s.limit(http.HandlerFunc(s.handleAction)))
	s.router.Handle("POST /action", s.limit(http.HandlerFunc(s.handleAction)))

	return s
}

// Open begins listening on Addr and serving requests in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if s.Gatherer == nil {
		http.NotFound(w, r)
		return
	}
	promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeView(w, s.Navigator.OpenRoot())
}

func (s *Server) handleDirectory(w http.ResponseWriter, r *http.Request) {
	s.writeView(w, s.Navigator.OpenDirectory())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.writeView(w, s.Navigator.HandleSearch(r.URL.Query().Get("q")))
}

// handleAction accepts the payload as a query parameter or a form field.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	s.writeView(w, s.Navigator.HandleAction(r.FormValue("payload")))
}

// limit rejects requests from clients that exceed their rate.
func (s *Server) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Limiter != nil && !s.Limiter.Allow(ClientID(r)) {
			w.Header().Set("Retry-After", "1")
			_ = writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeView(w http.ResponseWriter, v *shelf.View) {
	if err := writeJSON(w, ErrorStatusCode(v.Code), v); err != nil {
		s.Logger.Error("write view", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// ClientID returns the identity used to rate limit r.
func ClientID(r *http.Request) string {
	if id := r.Header.Get(ClientIDHeader); id != "" {
		return id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	shelf.EINVALID:   http.StatusBadRequest,
	shelf.EMALFORMED: http.StatusBadRequest,
	shelf.ENOTFOUND:  http.StatusNotFound,
	shelf.EINTERNAL:  http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an error view code.
// An empty code maps to 200 OK.
func ErrorStatusCode(code string) int {
	if code == "" {
		return http.StatusOK
	}
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}
