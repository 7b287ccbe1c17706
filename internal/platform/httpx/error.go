package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/monastery360/api/internal/platform/requestctx"
)

// Error is the API failure shape. The client sees {"success": false,
// "message": ...}; Code stays server-side for logs and Stack is only
// serialised outside production.
type Error struct {
	Code      string
	Message   string
	Status    int
	Stack     string
	RequestID string
}

// NewError builds an Error, defaulting a zero status to 500.
func NewError(code, message string, status int) Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Error{
		Code:    singleLine(code, 80),
		Message: singleLine(message, 512),
		Status:  status,
	}
}

// WithStack records failure detail for the non-production stack field.
func (e Error) WithStack(detail string) Error {
	e.Stack = singleLine(detail, 2048)
	return e
}

// WithRequestID pins the request identifier instead of reading it from
// context.
func (e Error) WithRequestID(id string) Error {
	e.RequestID = singleLine(id, 80)
	return e
}

type errorEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	TraceID   string `json:"trace_id,omitempty"`
	Stack     string `json:"stack,omitempty"`
}

// WriteError serialises the failure envelope.
func WriteError(ctx context.Context, w http.ResponseWriter, err Error) {
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	envelope := errorEnvelope{
		Message:   err.Message,
		RequestID: err.RequestID,
		TraceID:   singleLine(requestctx.TraceID(ctx), 64),
	}
	if envelope.RequestID == "" {
		envelope.RequestID = singleLine(middleware.GetReqID(ctx), 80)
	}
	if exposeStacks() {
		envelope.Stack = err.Stack
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope)
}

// singleLine folds newlines away and truncates, keeping log-reflected
// values on one line.
func singleLine(value string, limit int) string {
	value = strings.NewReplacer("\n", " ", "\r", " ").Replace(value)
	value = strings.TrimSpace(value)
	if limit > 0 && len(value) > limit {
		value = value[:limit]
	}
	return value
}
