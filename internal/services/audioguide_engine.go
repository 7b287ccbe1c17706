package services

import "context"

// NarrationLogger receives narration lifecycle messages.
type NarrationLogger interface {
	Printf(format string, args ...any)
}

// loggingSpeechEngine records narration transitions instead of producing
// audio. Clients render the actual speech locally; the server only tracks
// player state, so no audio backend runs in-process.
type loggingSpeechEngine struct {
	log NarrationLogger
}

// NewLoggingSpeechEngine returns an engine that writes narration
// transitions to the log. A nil logger keeps the engine silent.
func NewLoggingSpeechEngine(log NarrationLogger) TextToSpeechEngine {
	return &loggingSpeechEngine{log: log}
}

func (e *loggingSpeechEngine) Speak(_ context.Context, u Utterance) error {
	e.printf("speaking %d characters in %s at %.2gx (muted=%t)", len(u.Text), u.Language, u.Speed, u.Muted)
	return nil
}

func (e *loggingSpeechEngine) Pause(context.Context) error {
	e.printf("narration paused")
	return nil
}

func (e *loggingSpeechEngine) Resume(context.Context) error {
	e.printf("narration resumed")
	return nil
}

func (e *loggingSpeechEngine) Cancel(context.Context) error {
	e.printf("narration cancelled")
	return nil
}

func (e *loggingSpeechEngine) printf(format string, args ...any) {
	if e.log == nil {
		return
	}
	e.log.Printf(format, args...)
}
