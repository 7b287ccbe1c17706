package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/services"
)

// AudioGuideHandlers exposes the shared narration player. The player holds
// one narration session per process; monastery lookups go through the
// monastery service so deleted records cannot be narrated.
type AudioGuideHandlers struct {
	player      *services.AudioGuidePlayer
	monasteries services.MonasteryService
}

// NewAudioGuideHandlers constructs handlers for audio guide endpoints.
func NewAudioGuideHandlers(player *services.AudioGuidePlayer, monasteries services.MonasteryService) *AudioGuideHandlers {
	return &AudioGuideHandlers{player: player, monasteries: monasteries}
}

// Routes registers audio guide endpoints against the provided router.
func (h *AudioGuideHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/status", h.status)
	r.Get("/settings", h.settings)
	r.Post("/play/{monasteryID}", h.play)
	r.Post("/pause", h.pause)
	r.Post("/resume", h.resume)
	r.Post("/stop", h.stop)
	r.Post("/language/{monasteryID}", h.switchLanguage)
	r.Post("/speed", h.cycleSpeed)
	r.Post("/mute", h.toggleMute)
	r.Post("/tour", h.enqueueTour)
	r.Post("/tour/next", h.playNext)
}

type playerSettingsView struct {
	Speed    float64 `json:"speed"`
	Muted    bool    `json:"muted"`
	Language string  `json:"language"`
}

type playerStatusView struct {
	State       string             `json:"state"`
	MonasteryID int                `json:"monasteryId,omitempty"`
	Language    string             `json:"language,omitempty"`
	Settings    playerSettingsView `json:"settings"`
	QueueLength int                `json:"queueLength"`
}

func newPlayerStatusView(s services.PlayerStatus) playerStatusView {
	return playerStatusView{
		State:       string(s.State),
		MonasteryID: s.MonasteryID,
		Language:    s.Language,
		Settings: playerSettingsView{
			Speed:    s.Settings.Speed,
			Muted:    s.Settings.Muted,
			Language: s.Settings.Language,
		},
		QueueLength: s.QueueLength,
	}
}

func (h *AudioGuideHandlers) status(w http.ResponseWriter, r *http.Request) {
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

func (h *AudioGuideHandlers) settings(w http.ResponseWriter, r *http.Request) {
	status := h.player.Status()
	httpx.WriteData(w, http.StatusOK, playerSettingsView{
		Speed:    status.Settings.Speed,
		Muted:    status.Settings.Muted,
		Language: status.Settings.Language,
	})
}

func (h *AudioGuideHandlers) play(w http.ResponseWriter, r *http.Request) {
	id, ok := monasteryID(w, r)
	if !ok {
		return
	}
	detail, err := h.monasteries.Get(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	lang := strings.TrimSpace(r.URL.Query().Get("language"))
	if err := h.player.Play(r.Context(), detail.Monastery, lang); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

func (h *AudioGuideHandlers) pause(w http.ResponseWriter, r *http.Request) {
	if err := h.player.Pause(r.Context()); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

func (h *AudioGuideHandlers) resume(w http.ResponseWriter, r *http.Request) {
	if err := h.player.Resume(r.Context()); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

func (h *AudioGuideHandlers) stop(w http.ResponseWriter, r *http.Request) {
	if err := h.player.Stop(r.Context()); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

func (h *AudioGuideHandlers) switchLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := monasteryID(w, r)
	if !ok {
		return
	}
	lang := strings.TrimSpace(r.URL.Query().Get("language"))
	if lang == "" {
		writeBadRequest(r.Context(), w, "language query parameter is required")
		return
	}
	detail, err := h.monasteries.Get(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	if err := h.player.SwitchLanguage(r.Context(), detail.Monastery, lang); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

func (h *AudioGuideHandlers) cycleSpeed(w http.ResponseWriter, r *http.Request) {
	if _, err := h.player.CycleSpeed(); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

func (h *AudioGuideHandlers) toggleMute(w http.ResponseWriter, r *http.Request) {
	if _, err := h.player.ToggleMute(); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

type tourPayload struct {
	MonasteryIDs []int `json:"monasteryIds"`
}

func (h *AudioGuideHandlers) enqueueTour(w http.ResponseWriter, r *http.Request) {
	var payload tourPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(r.Context(), w, "invalid JSON body")
		return
	}
	if len(payload.MonasteryIDs) == 0 {
		writeBadRequest(r.Context(), w, "at least one monastery id is required")
		return
	}

	stops := make([]domain.Monastery, 0, len(payload.MonasteryIDs))
	for _, id := range payload.MonasteryIDs {
		detail, err := h.monasteries.Get(r.Context(), id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		stops = append(stops, detail.Monastery)
	}

	h.player.EnqueueTour(stops...)
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}

func (h *AudioGuideHandlers) playNext(w http.ResponseWriter, r *http.Request) {
	if _, err := h.player.PlayNext(r.Context()); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newPlayerStatusView(h.player.Status()))
}
