package observability

import (
	"context"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/platform/requestctx"
)

// InjectLoggerMiddleware seeds every request context with the base logger.
func InjectLoggerMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(requestctx.WithLogger(r.Context(), logger)))
		})
	}
}

// RequestLoggerMiddleware logs one line at request start and one at
// completion, enriched with the request ID, route, trace identity, and
// caller. The completion level follows the response class: 5xx and panics
// log as errors, 4xx as warnings.
func RequestLoggerMiddleware(projectID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			route := SanitizeRoute(routePattern(r))
			logger := requestScopedLogger(ctx, r, route, projectID)
			ctx = requestctx.WithLogger(ctx, logger)

			sw := &statusWriter{ResponseWriter: w}
			start := time.Now()
			logger.Info("request started")

			panicked := true
			defer func() {
				status := sw.code()
				if panicked && status < http.StatusInternalServerError {
					status = http.StatusInternalServerError
				}
				annotateSpan(trace.SpanFromContext(ctx), route, status)
				logCompletion(logger, status, panicked, time.Since(start), sw.written)
			}()

			next.ServeHTTP(sw, r.WithContext(ctx))
			panicked = false
		})
	}
}

// RecoveryMiddleware converts panics into logged 500 responses so one bad
// request cannot take the process down.
func RecoveryMiddleware(fallback *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				ctx := r.Context()
				logger := requestctx.Logger(ctx)
				if logger == requestctx.NoopLogger() && fallback != nil {
					logger = fallback
				}
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				httpx.WriteError(ctx, w, httpx.NewError("internal_server_error",
					"internal server error", http.StatusInternalServerError))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func requestScopedLogger(ctx context.Context, r *http.Request, route, projectID string) *zap.Logger {
	traceInfo, _ := requestctx.Trace(ctx)
	logger := WithRequestFields(requestctx.Logger(ctx),
		zap.String("request_id", middleware.GetReqID(ctx)),
		zap.String("method", SanitizeMethod(r.Method)),
		zap.String("route", route),
		zap.String("trace_id", traceInfo.TraceID),
		zap.String("user_id", callerID(ctx)),
	)
	if projectID != "" && traceInfo.TraceID != "" {
		// Cloud Logging correlates entries with traces through this field.
		logger = logger.With(zap.String("logging.googleapis.com/trace",
			"projects/"+projectID+"/traces/"+traceInfo.TraceID))
	}
	if ip := clientIP(r); ip != "" {
		logger = logger.With(zap.String("remote_ip", ip))
	}
	return logger
}

func logCompletion(logger *zap.Logger, status int, panicked bool, latency time.Duration, bytes int64) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.Int64("bytes", bytes),
	}
	switch {
	case panicked || status >= http.StatusInternalServerError:
		logger.Error("request completed", fields...)
	case status >= http.StatusBadRequest:
		logger.Warn("request completed", fields...)
	default:
		logger.Info("request completed", fields...)
	}
}

func annotateSpan(span trace.Span, route string, status int) {
	if span == nil {
		return
	}
	span.SetAttributes(
		semconv.HTTPResponseStatusCode(status),
		semconv.HTTPRoute(route),
	)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	} else {
		span.SetStatus(codes.Ok, http.StatusText(status))
	}
}

func callerID(ctx context.Context) string {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok || identity == nil {
		return ""
	}
	return SanitizeUserID(identity.UID)
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	if r.URL != nil && r.URL.Path != "" {
		return r.URL.Path
	}
	return "/"
}

func clientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if addr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	return sanitizeString(addr, 64)
}

// statusWriter records the status and byte count as they pass through.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusWriter) WriteHeader(status int) {
	if status < 100 {
		status = http.StatusOK
	}
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

func (w *statusWriter) code() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
