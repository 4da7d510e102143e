// Package httpx provides HTTP middleware and response helpers shared by web
// modules.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

const (
	requestIDHeader    = "X-Request-ID"
	htmxHeader         = "HX-Request"
	htmxRedirectHeader = "HX-Redirect"
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in declaration order: the first wraps outermost.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] == nil {
			continue
		}
		handler = middleware[idx](handler)
	}
	return handler
}

// MethodNotAllowed writes a 405 response with an Allow header.
func MethodNotAllowed(w http.ResponseWriter, allow ...string) {
	w.Header().Set("Allow", strings.Join(allow, ", "))
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// RequestID echoes the incoming X-Request-ID or assigns a new one.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if requestID == "" || len(requestID) > 128 {
				requestID = uuid.NewString()
				r.Header.Set(requestIDHeader, requestID)
			}
			w.Header().Set(requestIDHeader, requestID)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDFrom returns the correlation id set by RequestID.
func RequestIDFrom(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get(requestIDHeader)
}

// RecoverPanic logs panics and converts them into 500 responses.
func RecoverPanic(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					if recovered == http.ErrAbortHandler {
						panic(recovered)
					}
					logger.Error("panic recovered",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("request_id", RequestIDFrom(r)),
						zap.Any("panic", recovered),
						zap.ByteString("stack", debug.Stack()),
					)
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestObserver receives one call per completed request.
type RequestObserver interface {
	ObserveRequest(method string, status int, elapsed time.Duration)
}

// AccessLog logs each request and reports it to observer when non-nil.
func AccessLog(logger *zap.Logger, observer RequestObserver) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			elapsed := time.Since(started)
			if observer != nil {
				observer.ObserveRequest(r.Method, rec.status, elapsed)
			}
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", elapsed),
				zap.String("request_id", RequestIDFrom(r)),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(status int) {
	if !s.wroteHeader {
		s.status = status
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Write(p []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(p)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// RequestContext returns r.Context() with a nil-safe fallback.
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether the request came from HTMX.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(htmxHeader) == "true"
}

// WriteHTML writes an HTML payload with status.
func WriteHTML(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}

// WriteError writes a plain-text error using the typed status mapping.
func WriteError(w http.ResponseWriter, err error) {
	if w == nil || err == nil {
		return
	}
	status := apperrors.HTTPStatus(err)
	http.Error(w, http.StatusText(status), status)
}

// WriteRedirect writes a 302 redirect, or an HX-Redirect header with 200
// for HTMX requests so the browser performs a full navigation.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if w == nil {
		return
	}
	if IsHTMXRequest(r) {
		w.Header().Set(htmxRedirectHeader, location)
		w.WriteHeader(http.StatusOK)
		return
	}
	if r == nil {
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusFound)
		return
	}
	http.Redirect(w, r, location, http.StatusFound)
}
