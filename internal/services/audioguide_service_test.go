package services

import (
	"context"
	"errors"
	"testing"

	"github.com/monastery360/api/internal/dataset"
	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/kvstore"
)

// fakeEngine records requests and tracks how many utterances are in flight.
type fakeEngine struct {
	active     int
	spoken     []Utterance
	cancels    int
	pauses     int
	resumes    int
	speakError error
}

func (e *fakeEngine) Speak(_ context.Context, u Utterance) error {
	if e.speakError != nil {
		return e.speakError
	}
	e.active++
	e.spoken = append(e.spoken, u)
	return nil
}

func (e *fakeEngine) Pause(context.Context) error { e.pauses++; return nil }

func (e *fakeEngine) Resume(context.Context) error { e.resumes++; return nil }

func (e *fakeEngine) Cancel(context.Context) error {
	if e.active > 0 {
		e.active--
	}
	e.cancels++
	return nil
}

func guideMonastery() domain.Monastery {
	return dataset.Curated()[0]
}

func newPlayer(t *testing.T, engine TextToSpeechEngine, store kvstore.Store) *AudioGuidePlayer {
	t.Helper()
	player, err := NewAudioGuidePlayer(engine, store)
	if err != nil {
		t.Fatalf("NewAudioGuidePlayer: %v", err)
	}
	return player
}

func TestPlayTwiceKeepsOneUtterance(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)
	ctx := context.Background()

	if err := player.Play(ctx, guideMonastery(), "english"); err != nil {
		t.Fatalf("first Play: %v", err)
	}
	if err := player.Play(ctx, guideMonastery(), "english"); err != nil {
		t.Fatalf("second Play: %v", err)
	}

	if engine.active != 1 {
		t.Fatalf("expected exactly one active utterance, got %d", engine.active)
	}
	if engine.cancels != 1 {
		t.Fatalf("expected the second play to cancel the first, got %d cancels", engine.cancels)
	}
	if player.Status().State != StatePlaying {
		t.Fatalf("expected playing state, got %q", player.Status().State)
	}
}

func TestPauseFromIdleIsNoop(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)

	if err := player.Pause(context.Background()); err != nil {
		t.Fatalf("Pause from idle must be a no-op, got %v", err)
	}
	if engine.pauses != 0 {
		t.Fatalf("engine must not be touched, got %d pauses", engine.pauses)
	}
	if player.Status().State != StateIdle {
		t.Fatalf("state changed to %q", player.Status().State)
	}
}

func TestPauseResumeStopLifecycle(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)
	ctx := context.Background()

	if err := player.Resume(ctx); !errors.Is(err, ErrNotPaused) {
		t.Fatalf("expected ErrNotPaused, got %v", err)
	}

	if err := player.Play(ctx, guideMonastery(), "english"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := player.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if player.Status().State != StatePaused {
		t.Fatalf("expected paused, got %q", player.Status().State)
	}
	if err := player.Resume(ctx); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if player.Status().State != StatePlaying {
		t.Fatalf("expected playing, got %q", player.Status().State)
	}
	if err := player.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if player.Status().State != StateIdle || engine.active != 0 {
		t.Fatalf("expected idle with no utterance, got %q (%d active)", player.Status().State, engine.active)
	}
}

func TestPlayFallsBackToEnglish(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)

	m := guideMonastery()
	delete(m.AudioGuide, "nepali")
	if err := player.Play(context.Background(), m, "nepali"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if last := engine.spoken[len(engine.spoken)-1]; last.Language != "english" {
		t.Fatalf("expected english fallback, got %q", last.Language)
	}
}

func TestPlayAcceptsBCP47Tags(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)

	if err := player.Play(context.Background(), guideMonastery(), "hi-IN"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if last := engine.spoken[len(engine.spoken)-1]; last.Language != "hindi" {
		t.Fatalf("expected hindi guide, got %q", last.Language)
	}
}

func TestPlayWithoutGuideFails(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)

	m := guideMonastery()
	m.AudioGuide = nil
	if err := player.Play(context.Background(), m, "english"); !errors.Is(err, ErrNoAudioGuide) {
		t.Fatalf("expected ErrNoAudioGuide, got %v", err)
	}
}

func TestSwitchLanguageRestartsFromTop(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)
	ctx := context.Background()

	m := guideMonastery()
	if err := player.Play(ctx, m, "english"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := player.SwitchLanguage(ctx, m, "hindi"); err != nil {
		t.Fatalf("SwitchLanguage: %v", err)
	}

	if engine.active != 1 {
		t.Fatalf("expected one active utterance, got %d", engine.active)
	}
	if last := engine.spoken[len(engine.spoken)-1]; last.Language != "hindi" {
		t.Fatalf("expected hindi narration, got %q", last.Language)
	}
}

func TestSpeedCyclePersistsAcrossSessions(t *testing.T) {
	store := kvstore.NewMemory()
	player := newPlayer(t, &fakeEngine{}, store)

	if speed, err := player.CycleSpeed(); err != nil || speed != 1.25 {
		t.Fatalf("expected 1.25 after first cycle, got %v (%v)", speed, err)
	}
	if speed, err := player.CycleSpeed(); err != nil || speed != 1.5 {
		t.Fatalf("expected 1.5, got %v (%v)", speed, err)
	}

	// A fresh player restores the persisted speed.
	restored := newPlayer(t, &fakeEngine{}, store)
	if got := restored.Status().Settings.Speed; got != 1.5 {
		t.Fatalf("expected restored speed 1.5, got %v", got)
	}
}

func TestSpeedCycleWrapsAround(t *testing.T) {
	player := newPlayer(t, &fakeEngine{}, nil)

	var last float64
	for i := 0; i < len(playbackSpeeds); i++ {
		speed, err := player.CycleSpeed()
		if err != nil {
			t.Fatalf("CycleSpeed: %v", err)
		}
		last = speed
	}
	if last != 1 {
		t.Fatalf("expected full cycle back to 1, got %v", last)
	}
}

func TestToggleMuteAppliesToNextPlay(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)

	muted, err := player.ToggleMute()
	if err != nil || !muted {
		t.Fatalf("expected muted, got %v (%v)", muted, err)
	}
	if err := player.Play(context.Background(), guideMonastery(), "english"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if last := engine.spoken[len(engine.spoken)-1]; !last.Muted {
		t.Fatal("expected muted utterance")
	}
}

func TestTourQueuePlaysInOrder(t *testing.T) {
	engine := &fakeEngine{}
	player := newPlayer(t, engine, nil)
	ctx := context.Background()

	stops := dataset.Curated()[:3]
	player.EnqueueTour(stops...)

	for i, stop := range stops {
		ok, err := player.PlayNext(ctx)
		if err != nil || !ok {
			t.Fatalf("PlayNext %d: ok=%v err=%v", i, ok, err)
		}
		if player.Status().MonasteryID != stop.ID {
			t.Fatalf("expected stop %d, got %d", stop.ID, player.Status().MonasteryID)
		}
	}

	ok, err := player.PlayNext(ctx)
	if err != nil || ok {
		t.Fatalf("expected drained queue, ok=%v err=%v", ok, err)
	}
	if player.Status().State != StateIdle {
		t.Fatalf("expected idle after tour, got %q", player.Status().State)
	}
}

func TestUtteranceEndCallbackReturnsToIdle(t *testing.T) {
	player := newPlayer(t, &fakeEngine{}, nil)

	if err := player.Play(context.Background(), guideMonastery(), "english"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	player.OnUtteranceEnd()
	if player.Status().State != StateIdle {
		t.Fatalf("expected idle after utterance end, got %q", player.Status().State)
	}
}
