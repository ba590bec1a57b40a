package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// RequestIDHeader carries the request id on HTTP responses.
const RequestIDHeader = "X-Request-Id"

type loggerKey struct{}

// requestLogger returns the request-scoped logger stored in ctx, or fallback.
func requestLogger(ctx context.Context, fallback hclog.Logger) hclog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(hclog.Logger); ok {
		return l
	}
	return fallback
}

// UnaryRequestLogger tags each RPC with a fresh request id and logs its outcome.
func UnaryRequestLogger(logger hclog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqLogger := logger.With("request_id", uuid.NewString(), "method", info.FullMethod)
		ctx = context.WithValue(ctx, loggerKey{}, reqLogger)

		start := time.Now()
		resp, err := handler(ctx, req)
		reqLogger.Info("rpc handled", "code", status.Code(err).String(), "duration", time.Since(start))
		return resp, err
	}
}

// statusRecorder remembers the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LogRequests wraps next with per-request logging and an X-Request-Id header.
func LogRequests(logger hclog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		reqLogger := logger.With("request_id", id)
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), loggerKey{}, reqLogger)))

		reqLogger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
