package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"
)

// DefaultTTL is how long a completed record stays replayable.
const DefaultTTL = 24 * time.Hour

// Status is the lifecycle state of a stored record.
type Status string

const (
	// StatusPending marks a key that is reserved while its first request
	// is still executing.
	StatusPending Status = "pending"
	// StatusCompleted marks a key whose response has been captured.
	StatusCompleted Status = "completed"
)

// ReservationState tells the middleware what to do after Reserve.
type ReservationState int

const (
	// ReservationStateNew: the key was unused, run the handler.
	ReservationStateNew ReservationState = iota
	// ReservationStateCompleted: replay the stored response.
	ReservationStateCompleted
	// ReservationStatePending: a concurrent request holds the key.
	ReservationStatePending
)

// Reservation is the outcome of Reserve, carrying the stored record when
// one exists.
type Reservation struct {
	State  ReservationState
	Record Record
}

// Record is the persisted state for one idempotency key.
type Record struct {
	Key             string
	Fingerprint     string
	Status          Status
	ResponseStatus  int
	ResponseHeaders map[string][]string
	ResponseBody    []byte
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       time.Time
}

// expired reports whether the record's retention window has passed.
func (r Record) expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

// Response is the handler output captured for replay.
type Response struct {
	Status  int
	Headers http.Header
	Body    []byte
}

// Store persists reservations and captured responses.
type Store interface {
	Reserve(ctx context.Context, key, fingerprint string, now time.Time, ttl time.Duration) (Reservation, error)
	SaveResponse(ctx context.Context, key, fingerprint string, resp Response, now time.Time, ttl time.Duration) error
	Release(ctx context.Context, key, fingerprint string) error
	CleanupExpired(ctx context.Context, now time.Time, limit int) (int, error)
}

// ErrFingerprintMismatch signals a key reused with a different request.
var ErrFingerprintMismatch = errors.New("idempotency: key reserved for a different request")

// newPendingRecord is the state written when a key is first reserved.
func newPendingRecord(key, fingerprint string, now time.Time, ttl time.Duration) Record {
	return Record{
		Key:         key,
		Fingerprint: fingerprint,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
}

// recordID derives the storage document name from the scoped key. The key
// already embeds the requester identity, so the hash alone is unique.
func recordID(key string) string {
	return sha256Hex([]byte(strings.TrimSpace(key)))
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// storableHeaders copies the response headers worth replaying. Hop-by-hop
// headers and values the server recomputes per response are dropped.
func storableHeaders(header http.Header) map[string][]string {
	if len(header) == 0 {
		return nil
	}

	kept := make(map[string][]string, len(header))
	for name, values := range header {
		canonical := http.CanonicalHeaderKey(name)
		if volatileHeaders[strings.ToLower(canonical)] {
			continue
		}
		kept[canonical] = append([]string(nil), values...)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

var volatileHeaders = map[string]bool{
	"content-length":      true,
	"date":                true,
	"connection":          true,
	"keep-alive":          true,
	"proxy-authenticate":  true,
	"proxy-authorization": true,
	"te":                  true,
	"trailers":            true,
	"transfer-encoding":   true,
	"upgrade":             true,
}

func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
