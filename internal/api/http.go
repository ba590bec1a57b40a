package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/heysubinoy/kvgate/internal/gateway"
	"github.com/heysubinoy/kvgate/pkg/kv"
)

// MaxBodyBytes caps the size of a POST / body.
const MaxBodyBytes = 1 << 20

// Backend is the subset of the gateway client used by the HTTP layer.
type Backend interface {
	CallInsert(ctx context.Context, key, value string) error
	CallGet(ctx context.Context, key string) (string, error)
}

// Compile-time check to ensure gateway.Client implements Backend.
var _ Backend = (*gateway.Client)(nil)

// Server exposes the gateway over HTTP. Status codes come from gateway.HTTPStatus.
type Server struct {
	Backend Backend
	Logger  hclog.Logger
}

// NewServer creates a new HTTP server forwarding to backend.
func NewServer(backend Backend, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Server{
		Backend: backend,
		Logger:  logger,
	}
}

// RegisterRoutes registers all HTTP handlers on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health_check", s.handleHealthCheck)
	mux.HandleFunc("GET /{key}", s.handleGet)
	mux.HandleFunc("POST /{$}", s.handleInsert)
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return LogRequests(s.Logger, mux)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("OK"))
}

// handleGet handles GET /{key} requests.
// Returns the value as plain text, 404 for absent keys, 500 otherwise.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	logger := requestLogger(r.Context(), s.Logger)

	value, err := s.Backend.CallGet(r.Context(), key)
	if err != nil {
		code := gateway.HTTPStatus(err)
		logger.Warn("get failed", "key", key, "status", code, "error", err)
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(value))
}

// handleInsert handles POST / requests with JSON body.
// Expects: {"key": "foo", "value": "bar"}
func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r.Context(), s.Logger)

	var req kv.Entry
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	err := s.Backend.CallInsert(r.Context(), req.Key, req.Value)
	if err != nil {
		code := gateway.HTTPStatus(err)
		logger.Warn("insert failed", "key", req.Key, "status", code, "error", err)
		if code == http.StatusBadRequest {
			http.Error(w, err.Error(), code)
			return
		}
		w.WriteHeader(code)
		return
	}

	w.WriteHeader(http.StatusOK)
}
