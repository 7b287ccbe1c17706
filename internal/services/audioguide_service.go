package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/kvstore"
)

// PlayerState is the audio guide lifecycle state.
type PlayerState string

const (
	// StateIdle means nothing is queued or speaking.
	StateIdle PlayerState = "idle"
	// StatePlaying means an utterance is in flight.
	StatePlaying PlayerState = "playing"
	// StatePaused means the current utterance is suspended.
	StatePaused PlayerState = "paused"
)

// playbackSpeeds is the cycle order for the speed toggle.
var playbackSpeeds = []float64{0.5, 0.75, 1, 1.25, 1.5, 2}

// guideLanguages maps audio guide keys to BCP 47 tags for engine matching.
var guideLanguages = []struct {
	key string
	tag language.Tag
}{
	{key: "english", tag: language.MustParse("en-US")},
	{key: "hindi", tag: language.MustParse("hi-IN")},
	{key: "nepali", tag: language.MustParse("ne-NP")},
}

var guideMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(guideLanguages))
	for _, g := range guideLanguages {
		tags = append(tags, g.tag)
	}
	return language.NewMatcher(tags)
}()

var (
	// ErrNoAudioGuide indicates the monastery has no audio guide text at all.
	ErrNoAudioGuide = errors.New("audioguide: monastery has no audio guide")
	// ErrNotPlaying indicates pause was requested while nothing plays.
	ErrNotPlaying = errors.New("audioguide: not playing")
	// ErrNotPaused indicates resume was requested while nothing is paused.
	ErrNotPaused = errors.New("audioguide: not paused")
)

// Utterance is one speech request handed to the engine.
type Utterance struct {
	Text     string
	Language string
	Speed    float64
	Muted    bool
}

// TextToSpeechEngine abstracts the speech backend. Speak replaces any
// in-flight utterance; Cancel silences the engine.
type TextToSpeechEngine interface {
	Speak(ctx context.Context, u Utterance) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Cancel(ctx context.Context) error
}

// PlayerSettings persist across sessions.
type PlayerSettings struct {
	Speed    float64 `json:"speed"`
	Muted    bool    `json:"muted"`
	Language string  `json:"language"`
}

const settingsKey = "audioguide.settings"

// PlayerStatus is a snapshot of the player for API responses.
type PlayerStatus struct {
	State       PlayerState
	MonasteryID int
	Language    string
	Settings    PlayerSettings
	QueueLength int
}

// AudioGuidePlayer drives narration for one monastery at a time and keeps a
// tour queue of upcoming stops. All transitions are serialised by a mutex;
// engine callbacks arrive on their own goroutines.
type AudioGuidePlayer struct {
	engine   TextToSpeechEngine
	settings kvstore.Store

	mu          sync.Mutex
	state       PlayerState
	current     PlayerSettings
	monasteryID int
	language    string
	queue       []domain.Monastery
}

// NewAudioGuidePlayer restores persisted settings and starts idle.
func NewAudioGuidePlayer(engine TextToSpeechEngine, settings kvstore.Store) (*AudioGuidePlayer, error) {
	if engine == nil {
		return nil, errors.New("audioguide: speech engine is required")
	}
	if settings == nil {
		settings = kvstore.NewMemory()
	}

	player := &AudioGuidePlayer{
		engine:   engine,
		settings: settings,
		state:    StateIdle,
		current:  PlayerSettings{Speed: 1, Muted: false, Language: "english"},
	}
	var stored PlayerSettings
	if found, err := settings.Get(settingsKey, &stored); err == nil && found {
		if validSpeed(stored.Speed) {
			player.current.Speed = stored.Speed
		}
		player.current.Muted = stored.Muted
		if stored.Language != "" {
			player.current.Language = stored.Language
		}
	}
	return player, nil
}

// Play starts narration for the monastery, cancelling any in-flight
// utterance first so two never overlap. The requested language falls back
// to english when the guide lacks it.
func (p *AudioGuidePlayer) Play(ctx context.Context, m domain.Monastery, lang string) error {
	text, resolved, err := resolveGuideText(m, lang)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateIdle {
		if err := p.engine.Cancel(ctx); err != nil {
			return fmt.Errorf("audioguide: cancel previous utterance: %w", err)
		}
	}
	if err := p.engine.Speak(ctx, Utterance{
		Text:     text,
		Language: resolved,
		Speed:    p.current.Speed,
		Muted:    p.current.Muted,
	}); err != nil {
		p.state = StateIdle
		return fmt.Errorf("audioguide: speak: %w", err)
	}

	p.state = StatePlaying
	p.monasteryID = m.ID
	p.language = resolved
	return nil
}

// Pause suspends playback. From Idle it is a no-op; from Paused it errors.
func (p *AudioGuidePlayer) Pause(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case StateIdle:
		return nil
	case StatePaused:
		return ErrNotPlaying
	}
	if err := p.engine.Pause(ctx); err != nil {
		return fmt.Errorf("audioguide: pause: %w", err)
	}
	p.state = StatePaused
	return nil
}

// Resume continues a paused utterance.
func (p *AudioGuidePlayer) Resume(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StatePaused {
		return ErrNotPaused
	}
	if err := p.engine.Resume(ctx); err != nil {
		return fmt.Errorf("audioguide: resume: %w", err)
	}
	p.state = StatePlaying
	return nil
}

// Stop cancels playback from any state and clears the tour queue position.
func (p *AudioGuidePlayer) Stop(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateIdle {
		if err := p.engine.Cancel(ctx); err != nil {
			return fmt.Errorf("audioguide: cancel: %w", err)
		}
	}
	p.state = StateIdle
	p.monasteryID = 0
	return nil
}

// SwitchLanguage restarts the current monastery's narration from the top in
// the new language. Only meaningful while playing or paused.
func (p *AudioGuidePlayer) SwitchLanguage(ctx context.Context, m domain.Monastery, lang string) error {
	p.mu.Lock()
	playing := p.state != StateIdle && p.monasteryID == m.ID
	p.mu.Unlock()

	if !playing {
		return p.Play(ctx, m, lang)
	}
	if err := p.Stop(ctx); err != nil {
		return err
	}
	return p.Play(ctx, m, lang)
}

// CycleSpeed advances to the next playback speed and persists it.
func (p *AudioGuidePlayer) CycleSpeed() (float64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := playbackSpeeds[0]
	for i, speed := range playbackSpeeds {
		if speed == p.current.Speed {
			next = playbackSpeeds[(i+1)%len(playbackSpeeds)]
			break
		}
	}
	p.current.Speed = next
	return next, p.persistLocked()
}

// ToggleMute flips the binary volume and persists it.
func (p *AudioGuidePlayer) ToggleMute() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current.Muted = !p.current.Muted
	return p.current.Muted, p.persistLocked()
}

// EnqueueTour appends monasteries to the tour queue.
func (p *AudioGuidePlayer) EnqueueTour(monasteries ...domain.Monastery) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, monasteries...)
}

// PlayNext pops the next tour stop and plays it, or stops when the queue is
// drained.
func (p *AudioGuidePlayer) PlayNext(ctx context.Context) (bool, error) {
	p.mu.Lock()
	if len(p.queue) == 0 {
		p.mu.Unlock()
		return false, p.Stop(ctx)
	}
	next := p.queue[0]
	p.queue = p.queue[1:]
	lang := p.current.Language
	p.mu.Unlock()

	if err := p.Play(ctx, next, lang); err != nil {
		return false, err
	}
	return true, nil
}

// Status returns a snapshot of the player.
func (p *AudioGuidePlayer) Status() PlayerStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	return PlayerStatus{
		State:       p.state,
		MonasteryID: p.monasteryID,
		Language:    p.language,
		Settings:    p.current,
		QueueLength: len(p.queue),
	}
}

// OnUtteranceEnd is the engine completion callback; it returns the player to
// Idle unless playback has already moved on.
func (p *AudioGuidePlayer) OnUtteranceEnd() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StatePlaying {
		p.state = StateIdle
		p.monasteryID = 0
	}
}

func (p *AudioGuidePlayer) persistLocked() error {
	if err := p.settings.Put(settingsKey, p.current); err != nil {
		return fmt.Errorf("audioguide: persist settings: %w", err)
	}
	return nil
}

// resolveGuideText picks the guide text for a language key or BCP 47 tag,
// falling back to english.
func resolveGuideText(m domain.Monastery, lang string) (string, string, error) {
	if len(m.AudioGuide) == 0 {
		return "", "", ErrNoAudioGuide
	}

	key := normaliseLanguage(lang)
	if text, ok := m.AudioGuide[key]; ok && text != "" {
		return text, key, nil
	}
	if text, ok := m.AudioGuide["english"]; ok && text != "" {
		return text, "english", nil
	}
	return "", "", ErrNoAudioGuide
}

// normaliseLanguage maps guide keys and BCP 47 tags onto the guide keys.
func normaliseLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	for _, g := range guideLanguages {
		if lang == g.key {
			return g.key
		}
	}
	if lang == "" {
		return "english"
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return "english"
	}
	_, index, conf := guideMatcher.Match(tag)
	if conf == language.No {
		return "english"
	}
	return guideLanguages[index].key
}

func validSpeed(speed float64) bool {
	for _, s := range playbackSpeeds {
		if s == speed {
			return true
		}
	}
	return false
}
