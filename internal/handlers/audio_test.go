package handlers

import (
	"net/http"
	"testing"
)

func TestAudioStatusStartsIdle(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/audio/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var status playerStatusView
	decodeData(t, rec, &status)
	if status.State != "idle" {
		t.Fatalf("expected idle player, got %q", status.State)
	}
	if status.Settings.Speed != 1 || status.Settings.Muted || status.Settings.Language != "english" {
		t.Fatalf("unexpected default settings %+v", status.Settings)
	}
}

func TestAudioPlayPauseResumeStop(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/audio/play/1?language=hindi", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("play: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var status playerStatusView
	decodeData(t, rec, &status)
	if status.State != "playing" || status.MonasteryID != 1 || status.Language != "hindi" {
		t.Fatalf("unexpected status after play %+v", status)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/audio/pause", nil)
	decodeData(t, rec, &status)
	if status.State != "paused" {
		t.Fatalf("expected paused, got %q", status.State)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/audio/resume", nil)
	decodeData(t, rec, &status)
	if status.State != "playing" {
		t.Fatalf("expected playing after resume, got %q", status.State)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/audio/stop", nil)
	decodeData(t, rec, &status)
	if status.State != "idle" {
		t.Fatalf("expected idle after stop, got %q", status.State)
	}
}

func TestAudioPlayUnknownMonastery(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/audio/play/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAudioResumeWithoutPauseConflicts(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/audio/resume", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}
	if decodeEnvelope(t, rec).Success {
		t.Fatalf("expected failure envelope")
	}
}

func TestAudioSpeedCycleAndMute(t *testing.T) {
	app := newTestApp(t)

	app.do(t, http.MethodPost, "/api/v1/audio/speed", nil)
	rec := app.do(t, http.MethodPost, "/api/v1/audio/speed", nil)
	var status playerStatusView
	decodeData(t, rec, &status)
	if status.Settings.Speed != 1.5 {
		t.Fatalf("expected speed 1.5 after two cycles, got %v", status.Settings.Speed)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/audio/mute", nil)
	decodeData(t, rec, &status)
	if !status.Settings.Muted {
		t.Fatal("expected muted settings")
	}

	rec = app.do(t, http.MethodGet, "/api/v1/audio/settings", nil)
	var settings playerSettingsView
	decodeData(t, rec, &settings)
	if settings.Speed != 1.5 || !settings.Muted {
		t.Fatalf("settings endpoint out of sync %+v", settings)
	}
}

func TestAudioSwitchLanguageRequiresLanguage(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/audio/language/1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/audio/language/1?language=nepali", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var status playerStatusView
	decodeData(t, rec, &status)
	if status.Language != "nepali" {
		t.Fatalf("expected nepali narration, got %q", status.Language)
	}
}

func TestAudioTourPlaysStopsInOrder(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/audio/tour", jsonBody(t, map[string]any{
		"monasteryIds": []int{1, 2},
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("tour: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var status playerStatusView
	decodeData(t, rec, &status)
	if status.QueueLength != 2 {
		t.Fatalf("expected 2 queued stops, got %d", status.QueueLength)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/audio/tour/next", nil)
	decodeData(t, rec, &status)
	if status.State != "playing" || status.MonasteryID != 1 {
		t.Fatalf("expected first stop playing, got %+v", status)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/audio/tour/next", nil)
	decodeData(t, rec, &status)
	if status.MonasteryID != 2 {
		t.Fatalf("expected second stop, got %+v", status)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/audio/tour/next", nil)
	decodeData(t, rec, &status)
	if status.State != "idle" || status.QueueLength != 0 {
		t.Fatalf("expected drained tour to stop, got %+v", status)
	}
}

func TestAudioTourRejectsEmptyBody(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/audio/tour", jsonBody(t, map[string]any{
		"monasteryIds": []int{},
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
