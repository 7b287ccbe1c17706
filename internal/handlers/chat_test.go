package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/monastery360/api/internal/repositories/memory"
	"github.com/monastery360/api/internal/services"
)

func sendChat(t *testing.T, app *testApp, message string) (*chatReplyView, int) {
	t.Helper()
	rec := app.do(t, http.MethodPost, "/api/v1/chat/message", jsonBody(t, map[string]string{"message": message}))
	if rec.Code != http.StatusOK {
		return nil, rec.Code
	}
	var reply chatReplyView
	decodeData(t, rec, &reply)
	return &reply, rec.Code
}

func TestChatMonasteryAnswer(t *testing.T) {
	app := newTestApp(t)

	reply, code := sendChat(t, app, "rumtek kagyu")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if reply.Type != "monastery" || reply.Monastery == nil {
		t.Fatalf("expected a monastery reply, got %+v", reply)
	}
	if reply.Monastery.Name != "Rumtek Monastery" {
		t.Fatalf("expected Rumtek Monastery, got %q", reply.Monastery.Name)
	}
}

func TestChatSectListAnswer(t *testing.T) {
	app := newTestApp(t)

	reply, code := sendChat(t, app, "nyingma monasteries")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if reply.Type != "sect_list" {
		t.Fatalf("expected sect_list, got %q (%s)", reply.Type, reply.Message)
	}
	if !strings.Contains(reply.Message, "...and 2 more.") {
		t.Fatalf("expected truncated list, got %s", reply.Message)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	app := newTestApp(t)

	if _, code := sendChat(t, app, "   "); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestChatGreeting(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/chat/greeting?language=hindi", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]string
	decodeData(t, rec, &payload)
	if payload["greeting"] == "" {
		t.Fatal("expected a greeting")
	}
}

func TestChatRateLimiting(t *testing.T) {
	chatSvc, err := services.NewChatService(services.ChatServiceDeps{
		Monasteries: memory.NewCuratedRegistry().Monasteries(),
	})
	if err != nil {
		t.Fatalf("chat service: %v", err)
	}
	handler := NewChatHandlers(chatSvc, WithChatRateLimiter(newWindowLimiter(2, time.Minute, nil)))
	router := NewRouter(WithChatRoutes(handler.Routes))

	body := func() *bytes.Reader {
		return bytes.NewReader([]byte(`{"message":"hello"}`))
	}
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/message", body())
		req.RemoteAddr = "203.0.113.7:1234"
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/message", body())
	req.RemoteAddr = "203.0.113.7:1234"
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	// A different client is unaffected.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/chat/message", body())
	req.RemoteAddr = "198.51.100.9:4321"
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for second client, got %d", rec.Code)
	}
}
