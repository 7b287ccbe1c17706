package httpx

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestWriteListEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteList(rec, []string{"a", "b"}, Pagination{Page: 1, Limit: 10, Total: 2, Pages: 1})

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Success    bool       `json:"success"`
		Data       []string   `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Success || len(payload.Data) != 2 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.Pagination.Total != 2 || payload.Pagination.Pages != 1 {
		t.Fatalf("unexpected pagination %+v", payload.Pagination)
	}
}

func TestWriteErrorEnvelope(t *testing.T) {
	SetStackExposure(false)
	rec := httptest.NewRecorder()
	WriteError(context.Background(), rec, NewError("not_found", "monastery not found", 404).WithStack("secret detail"))

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["success"] != false {
		t.Fatalf("expected success false, got %v", payload["success"])
	}
	if payload["message"] != "monastery not found" {
		t.Fatalf("unexpected message %v", payload["message"])
	}
	if _, leaked := payload["stack"]; leaked {
		t.Fatalf("stack must not be exposed by default")
	}
}

func TestWriteErrorExposesStackWhenEnabled(t *testing.T) {
	SetStackExposure(true)
	defer SetStackExposure(false)

	rec := httptest.NewRecorder()
	WriteError(context.Background(), rec, NewError("internal", "internal server error", 500).WithStack("boom at line 3"))

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["stack"] != "boom at line 3" {
		t.Fatalf("expected stack detail, got %v", payload["stack"])
	}
}
