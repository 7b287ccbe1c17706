package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/services"
)

const (
	defaultClusterZoom = 10
	minClusterZoom     = 0
	maxClusterZoom     = 20
)

// MapHandlers exposes the interactive map projections.
type MapHandlers struct {
	service services.MapService
}

// NewMapHandlers constructs handlers for map endpoints.
func NewMapHandlers(service services.MapService) *MapHandlers {
	return &MapHandlers{service: service}
}

// Routes registers map endpoints against the provided router.
func (h *MapHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/markers", h.markers)
	r.Get("/clusters", h.clusters)
	r.Get("/focus/{monasteryID}", h.focus)
}

type markerView struct {
	MonasteryID int             `json:"monasteryId"`
	Name        string          `json:"name"`
	Coordinates coordinatesView `json:"coordinates"`
	Color       string          `json:"color"`
	Label       string          `json:"label"`
	Sect        string          `json:"sect"`
}

type clusterView struct {
	Coordinates coordinatesView `json:"coordinates"`
	Count       int             `json:"count"`
	Tier        string          `json:"tier"`
	MarkerIDs   []int           `json:"markerIds"`
}

type popupView struct {
	Name        string `json:"name"`
	Sect        string `json:"sect"`
	Description string `json:"description"`
	District    string `json:"district"`
	Established string `json:"established"`
}

type focusView struct {
	Center coordinatesView `json:"center"`
	Zoom   int             `json:"zoom"`
	Popup  popupView       `json:"popup"`
}

func (h *MapHandlers) markers(w http.ResponseWriter, r *http.Request) {
	markers, err := h.service.Markers(r.Context(), parseMonasteryFilter(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	views := make([]markerView, 0, len(markers))
	for _, m := range markers {
		views = append(views, markerView{
			MonasteryID: m.MonasteryID,
			Name:        m.Name,
			Coordinates: coordinatesView{Lat: m.Coordinates.Lat, Lng: m.Coordinates.Lng},
			Color:       m.Color,
			Label:       m.Label,
			Sect:        string(m.Sect),
		})
	}
	httpx.WriteData(w, http.StatusOK, views)
}

func (h *MapHandlers) clusters(w http.ResponseWriter, r *http.Request) {
	zoom := defaultClusterZoom
	if raw := r.URL.Query().Get("zoom"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minClusterZoom || parsed > maxClusterZoom {
			writeBadRequest(r.Context(), w, "zoom must be an integer between 0 and 20")
			return
		}
		zoom = parsed
	}

	clusters, err := h.service.Clusters(r.Context(), zoom, parseMonasteryFilter(r))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}

	views := make([]clusterView, 0, len(clusters))
	for _, c := range clusters {
		views = append(views, clusterView{
			Coordinates: coordinatesView{Lat: c.Coordinates.Lat, Lng: c.Coordinates.Lng},
			Count:       c.Count,
			Tier:        string(c.Tier),
			MarkerIDs:   c.MarkerIDs,
		})
	}
	httpx.WriteData(w, http.StatusOK, views)
}

func (h *MapHandlers) focus(w http.ResponseWriter, r *http.Request) {
	id, ok := monasteryID(w, r)
	if !ok {
		return
	}
	focus, err := h.service.Focus(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, focusView{
		Center: coordinatesView{Lat: focus.Center.Lat, Lng: focus.Center.Lng},
		Zoom:   focus.Zoom,
		Popup: popupView{
			Name:        focus.Popup.Name,
			Sect:        string(focus.Popup.Sect),
			Description: focus.Popup.Description,
			District:    focus.Popup.District,
			Established: focus.Popup.Established,
		},
	})
}
