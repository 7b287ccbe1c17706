package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/monastery360/api/internal/repositories/memory"
)

func newChatService(t *testing.T) ChatService {
	t.Helper()
	registry := memory.NewCuratedRegistry()
	svc, err := NewChatService(ChatServiceDeps{Monasteries: registry.Monasteries()})
	if err != nil {
		t.Fatalf("NewChatService: %v", err)
	}
	return svc
}

func TestReplyNameMatchWinsOverSect(t *testing.T) {
	svc := newChatService(t)

	reply, err := svc.Reply(context.Background(), "rumtek kagyu")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Type != ReplyMonastery {
		t.Fatalf("expected monastery reply, got %q", reply.Type)
	}
	if reply.Monastery == nil || reply.Monastery.Name != "Rumtek Monastery" {
		t.Fatalf("expected Rumtek Monastery, got %+v", reply.Monastery)
	}
}

func TestReplySectListTruncatesAtFive(t *testing.T) {
	svc := newChatService(t)

	reply, err := svc.Reply(context.Background(), "nyingma monasteries")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Type != ReplySectList {
		t.Fatalf("expected sect list, got %q (%s)", reply.Type, reply.Message)
	}
	if len(reply.Monasteries) != 7 {
		t.Fatalf("expected 7 Nyingma monasteries, got %d", len(reply.Monasteries))
	}
	if !strings.Contains(reply.Message, "I found 7 Nyingma monasteries in Sikkim") {
		t.Fatalf("unexpected header: %s", reply.Message)
	}
	if !strings.Contains(reply.Message, "...and 2 more.") {
		t.Fatalf("expected overflow suffix, got: %s", reply.Message)
	}
	if strings.Count(reply.Message, "\n1. ") != 1 || strings.Contains(reply.Message, "6. ") {
		t.Fatalf("expected exactly five numbered entries: %s", reply.Message)
	}
}

func TestReplyLocationList(t *testing.T) {
	svc := newChatService(t)

	reply, err := svc.Reply(context.Background(), "what can I see in pelling")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Type != ReplyLocationList {
		t.Fatalf("expected location list, got %q (%s)", reply.Type, reply.Message)
	}
	for _, m := range reply.Monasteries {
		if !strings.Contains(strings.ToLower(m.Location), "pelling") {
			t.Fatalf("location filter leaked %q", m.Location)
		}
	}
}

func TestReplyFestivalList(t *testing.T) {
	svc := newChatService(t)

	reply, err := svc.Reply(context.Background(), "tell me about bumchu")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Type != ReplyFestivalList {
		t.Fatalf("expected festival list, got %q (%s)", reply.Type, reply.Message)
	}
	if !strings.Contains(reply.Message, "Tashiding Monastery") {
		t.Fatalf("expected Tashiding Monastery in reply: %s", reply.Message)
	}
}

func TestReplyGeneralAnswer(t *testing.T) {
	svc := newChatService(t)

	reply, err := svc.Reply(context.Background(), "oldest")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Type != ReplyGeneral {
		t.Fatalf("expected general answer, got %q (%s)", reply.Type, reply.Message)
	}
	if !strings.Contains(reply.Message, "Dubdi Monastery") {
		t.Fatalf("unexpected answer: %s", reply.Message)
	}
}

func TestReplyFallback(t *testing.T) {
	svc := newChatService(t)

	reply, err := svc.Reply(context.Background(), "qwertyuiop")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Type != ReplyFallback {
		t.Fatalf("expected fallback, got %q", reply.Type)
	}
}

func TestReplyRejectsEmptyMessage(t *testing.T) {
	svc := newChatService(t)

	if _, err := svc.Reply(context.Background(), "   "); !errors.Is(err, ErrEmptyChatMessage) {
		t.Fatalf("expected ErrEmptyChatMessage, got %v", err)
	}
}

func TestGreetingFallsBackToEnglish(t *testing.T) {
	svc := newChatService(t)

	greeting := svc.Greeting("klingon")
	found := false
	for _, line := range chatGreetings["english"] {
		if greeting == line {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an english greeting, got %q", greeting)
	}

	hindi := svc.Greeting("hindi")
	found = false
	for _, line := range chatGreetings["hindi"] {
		if hindi == line {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a hindi greeting, got %q", hindi)
	}
}
