package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRouterUnknownRouteReturnsEnvelope(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/nowhere", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatalf("expected failure envelope: %s", rec.Body.String())
	}
	if !strings.Contains(env.Message, "/api/v1/nowhere") {
		t.Fatalf("expected path in message, got %q", env.Message)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodDelete, "/api/v1/chat/message", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if decodeEnvelope(t, rec).Success {
		t.Fatalf("expected failure envelope: %s", rec.Body.String())
	}
}

func TestRouterHealthAndReadiness(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}
	rec = app.do(t, http.MethodGet, "/readyz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("readyz: expected 200, got %d", rec.Code)
	}
}

func TestRouterReadinessFailure(t *testing.T) {
	failing := NewHealthHandlers(func(context.Context) error {
		return errors.New("datastore unreachable")
	})
	router := NewRouter(WithHealthHandlers(failing))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRouterMissingRegistrarReportsNotImplemented(t *testing.T) {
	router := NewRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/monasteries", nil))
	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", rec.Code)
	}
}
