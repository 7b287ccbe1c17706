package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/services"
)

const (
	defaultChatRateLimit  = 30
	defaultChatRateWindow = time.Minute
)

// ChatHandlers exposes the visitor chatbot.
type ChatHandlers struct {
	service services.ChatService
	limiter rateLimiter
}

// ChatOption customises construction of ChatHandlers.
type ChatOption func(*ChatHandlers)

// WithChatRateLimiter overrides the default per-client message rate limiter.
// A nil limiter disables throttling.
func WithChatRateLimiter(limiter rateLimiter) ChatOption {
	return func(h *ChatHandlers) {
		h.limiter = limiter
	}
}

// NewChatHandlers constructs handlers for chatbot endpoints.
func NewChatHandlers(service services.ChatService, opts ...ChatOption) *ChatHandlers {
	handler := &ChatHandlers{
		service: service,
		limiter: newWindowLimiter(defaultChatRateLimit, defaultChatRateWindow, nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Routes registers chatbot endpoints against the provided router.
func (h *ChatHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/message", h.message)
	r.Get("/greeting", h.greeting)
}

type chatMessagePayload struct {
	Message string `json:"message"`
}

type chatReplyView struct {
	Type        string          `json:"type"`
	Message     string          `json:"message"`
	Monastery   *monasteryView  `json:"monastery,omitempty"`
	Monasteries []monasteryView `json:"monasteries,omitempty"`
}

func (h *ChatHandlers) message(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow(clientKey(r)) {
		httpx.WriteError(r.Context(), w, httpx.NewError("rate_limited", "too many messages, slow down", http.StatusTooManyRequests))
		return
	}

	var payload chatMessagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(r.Context(), w, "invalid JSON body")
		return
	}

	reply, err := h.service.Reply(r.Context(), payload.Message)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	view := chatReplyView{Type: string(reply.Type), Message: reply.Message}
	if reply.Monastery != nil {
		m := newMonasteryView(*reply.Monastery)
		view.Monastery = &m
	}
	if len(reply.Monasteries) > 0 {
		view.Monasteries = newMonasteryViews(reply.Monasteries)
	}
	httpx.WriteData(w, http.StatusOK, view)
}

func (h *ChatHandlers) greeting(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	httpx.WriteData(w, http.StatusOK, map[string]string{
		"greeting": h.service.Greeting(language),
	})
}

// clientKey prefers the authenticated user for rate limiting and falls back
// to the remote address.
func clientKey(r *http.Request) string {
	if identity, ok := auth.IdentityFromContext(r.Context()); ok && identity.UID != "" {
		return identity.UID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
