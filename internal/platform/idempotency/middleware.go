package idempotency

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/platform/httpx"
)

const (
	defaultHeaderName = "Idempotency-Key"
	replayHeaderName  = "X-Idempotent-Replay"
)

// Logger receives background persistence failures that cannot surface to
// the client.
type Logger interface {
	Printf(format string, args ...any)
}

type middlewareConfig struct {
	headerName string
	ttl        time.Duration
	methods    map[string]struct{}
	clock      func() time.Time
	logger     Logger
}

// MiddlewareOption customises middleware behaviour.
type MiddlewareOption func(*middlewareConfig)

// WithHeader overrides the header carrying the idempotency key.
func WithHeader(name string) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.headerName = name
		}
	}
}

// WithTTL sets how long completed records are retained.
func WithTTL(ttl time.Duration) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		if ttl > 0 {
			cfg.ttl = ttl
		}
	}
}

// WithMethods restricts which HTTP methods the middleware guards.
func WithMethods(methods ...string) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		if len(methods) == 0 {
			return
		}
		cfg.methods = make(map[string]struct{}, len(methods))
		for _, method := range methods {
			if method = strings.ToUpper(strings.TrimSpace(method)); method != "" {
				cfg.methods[method] = struct{}{}
			}
		}
	}
}

// WithLogger injects a logger for persistence errors.
func WithLogger(logger Logger) MiddlewareOption {
	return func(cfg *middlewareConfig) { cfg.logger = logger }
}

// WithClock overrides the time source, primarily for testing.
func WithClock(clock func() time.Time) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

func mutatingMethods() map[string]struct{} {
	return map[string]struct{}{
		http.MethodPost:   {},
		http.MethodPut:    {},
		http.MethodPatch:  {},
		http.MethodDelete: {},
	}
}

// Middleware makes the guarded mutations replay-safe: a repeated request
// with the same key and payload gets the stored response instead of a
// second execution. Admin catalog writes sit behind it so a retried
// create cannot mint two monasteries.
func Middleware(store Store, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if store == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	cfg := middlewareConfig{
		headerName: defaultHeaderName,
		ttl:        DefaultTTL,
		methods:    mutatingMethods(),
		clock:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if len(cfg.methods) == 0 {
		cfg.methods = mutatingMethods()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, guarded := cfg.methods[r.Method]; !guarded {
				next.ServeHTTP(w, r)
				return
			}

			key := strings.TrimSpace(r.Header.Get(cfg.headerName))
			if key == "" {
				httpx.WriteError(r.Context(), w, httpx.NewError("idempotency_key_required",
					"missing "+cfg.headerName+" header", http.StatusBadRequest))
				return
			}

			body, err := readAndReplayBody(r)
			if err != nil {
				httpx.WriteError(r.Context(), w, httpx.NewError("idempotency_read_body_failed",
					"unable to read request body", http.StatusInternalServerError))
				return
			}

			identity := extractRequester(r.Context())
			fingerprint := requestFingerprint(r, body, identity)
			scoped := scopedKey(key, identity)
			now := cfg.clock().UTC()

			reservation, err := store.Reserve(r.Context(), scoped, fingerprint, now, cfg.ttl)
			if err != nil {
				writeReserveError(r.Context(), w, cfg.logger, err)
				return
			}

			switch reservation.State {
			case ReservationStateCompleted:
				replayStoredResponse(w, reservation.Record)
				return
			case ReservationStatePending:
				httpx.WriteError(r.Context(), w, httpx.NewError("idempotency_in_progress",
					"another request is processing this idempotency key", http.StatusConflict))
				return
			case ReservationStateNew:
			default:
				httpx.WriteError(r.Context(), w, httpx.NewError("idempotency_unknown_state",
					"unexpected idempotency state", http.StatusInternalServerError))
				return
			}

			buffered := &bufferedResponse{header: make(http.Header)}
			next.ServeHTTP(buffered, r)

			response := Response{
				Status:  buffered.statusCode(),
				Headers: buffered.headerCopy(),
				Body:    buffered.bodyBytes(),
			}
			if err := store.SaveResponse(r.Context(), scoped, fingerprint, response, cfg.clock().UTC(), cfg.ttl); err != nil {
				if cfg.logger != nil {
					cfg.logger.Printf("idempotency: persist response for key %s: %v", key, err)
				}
				if releaseErr := store.Release(r.Context(), scoped, fingerprint); releaseErr != nil && cfg.logger != nil {
					cfg.logger.Printf("idempotency: release key %s: %v", key, releaseErr)
				}
				httpx.WriteError(r.Context(), w, httpx.NewError("idempotency_store_error",
					"unable to persist idempotency state", http.StatusInternalServerError))
				return
			}

			buffered.flush(w)
		})
	}
}

// readAndReplayBody drains the body for fingerprinting and puts an
// equivalent reader back so the handler still sees it.
func readAndReplayBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if err := r.Body.Close(); err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}

// requestFingerprint ties a key to the exact request it was first used
// with, so key reuse across different payloads is detected.
func requestFingerprint(r *http.Request, body []byte, identity string) string {
	parts := []string{
		strings.ToUpper(r.Method),
		r.URL.Path,
		r.URL.RawQuery,
		r.Host,
		r.Header.Get("Content-Type"),
		identity,
	}
	if len(body) > 0 {
		parts = append(parts, sha256Hex(body))
	}
	return sha256Hex([]byte(strings.Join(parts, "|")))
}

func extractRequester(ctx context.Context) string {
	if identity, ok := auth.IdentityFromContext(ctx); ok && identity.UID != "" {
		return identity.UID
	}
	return "anonymous"
}

// scopedKey namespaces keys per requester so two curators using the same
// client-generated key do not collide.
func scopedKey(key, identity string) string {
	if identity = strings.TrimSpace(identity); identity == "" {
		identity = "anonymous"
	}
	return strings.TrimSpace(key) + "|" + identity
}

func writeReserveError(ctx context.Context, w http.ResponseWriter, logger Logger, err error) {
	if errors.Is(err, ErrFingerprintMismatch) {
		httpx.WriteError(ctx, w, httpx.NewError("idempotency_key_conflict",
			"idempotency key already used for a different request", http.StatusConflict))
		return
	}
	if logger != nil {
		logger.Printf("idempotency: reserve: %v", err)
	}
	httpx.WriteError(ctx, w, httpx.NewError("idempotency_store_error",
		"unable to process idempotency key", http.StatusInternalServerError))
}

func replayStoredResponse(w http.ResponseWriter, record Record) {
	header := w.Header()
	for key := range header {
		header.Del(key)
	}
	for key, values := range record.ResponseHeaders {
		for _, value := range values {
			header.Add(key, value)
		}
	}
	header.Set(replayHeaderName, "true")

	status := record.ResponseStatus
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if len(record.ResponseBody) > 0 {
		_, _ = w.Write(record.ResponseBody)
	}
}

// bufferedResponse holds the handler's output until the record is safely
// persisted; only then does it reach the client.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(status int) {
	if status > 0 && b.status == 0 {
		b.status = status
	}
}

func (b *bufferedResponse) Write(data []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(data)
}

func (b *bufferedResponse) statusCode() int {
	if b.status == 0 {
		return http.StatusOK
	}
	return b.status
}

func (b *bufferedResponse) bodyBytes() []byte {
	if b.body.Len() == 0 {
		return nil
	}
	return b.body.Bytes()
}

func (b *bufferedResponse) headerCopy() http.Header {
	copied := make(http.Header, len(b.header))
	for key, values := range b.header {
		copied[key] = append([]string(nil), values...)
	}
	return copied
}

func (b *bufferedResponse) flush(w http.ResponseWriter) {
	dst := w.Header()
	for key := range dst {
		dst.Del(key)
	}
	for key, values := range b.header {
		for _, value := range values {
			dst.Add(key, value)
		}
	}
	w.WriteHeader(b.statusCode())
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
