package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/platform/pagination"
	"github.com/monastery360/api/internal/services"
)

const defaultSearchLimit = 10

// MonasteryHandlers exposes the monastery catalog and its admin CRUD surface.
type MonasteryHandlers struct {
	service       services.MonasteryService
	documentation http.HandlerFunc
	adminMW       []func(http.Handler) http.Handler
}

// MonasteryOption customises construction of MonasteryHandlers.
type MonasteryOption func(*MonasteryHandlers)

// WithMonasteryAdminMiddlewares sets the middleware chain guarding the
// mutating endpoints, typically authentication plus an admin role check.
func WithMonasteryAdminMiddlewares(mw ...func(http.Handler) http.Handler) MonasteryOption {
	return func(h *MonasteryHandlers) {
		h.adminMW = append(h.adminMW, mw...)
	}
}

// WithMonasteryDocumentationRoute mounts the documentation bundle handler at
// GET /{monasteryID}/documentation.
func WithMonasteryDocumentationRoute(handler http.HandlerFunc) MonasteryOption {
	return func(h *MonasteryHandlers) {
		h.documentation = handler
	}
}

// NewMonasteryHandlers constructs handlers for monastery endpoints.
func NewMonasteryHandlers(service services.MonasteryService, opts ...MonasteryOption) *MonasteryHandlers {
	handler := &MonasteryHandlers{service: service}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Routes registers monastery endpoints against the provided router.
func (h *MonasteryHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.list)
	r.Get("/featured/list", h.featured)
	r.Get("/search/query", h.search)
	r.Get("/slug/{slug}", h.getBySlug)
	r.Get("/{monasteryID}", h.get)
	if h.documentation != nil {
		r.Get("/{monasteryID}/documentation", h.documentation)
	}

	r.Group(func(admin chi.Router) {
		for _, mw := range h.adminMW {
			if mw != nil {
				admin.Use(mw)
			}
		}
		admin.Post("/", h.create)
		admin.Put("/{monasteryID}", h.update)
		admin.Delete("/{monasteryID}", h.remove)
	})
}

func (h *MonasteryHandlers) list(w http.ResponseWriter, r *http.Request) {
	filter := parseMonasteryFilter(r)
	page := pagination.FromRequest(r)

	result, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteList(w, newMonasteryViews(result.Items), page.Meta(result.Total))
}

func (h *MonasteryHandlers) featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Featured(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newMonasteryViews(items))
}

func (h *MonasteryHandlers) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newMonasteryViews(items))
}

func (h *MonasteryHandlers) get(w http.ResponseWriter, r *http.Request) {
	id, ok := monasteryID(w, r)
	if !ok {
		return
	}
	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newMonasteryDetailView(detail))
}

func (h *MonasteryHandlers) getBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		writeBadRequest(r.Context(), w, "slug is required")
		return
	}
	detail, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newMonasteryDetailView(detail))
}

func (h *MonasteryHandlers) create(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeMonasteryInput(w, r)
	if !ok {
		return
	}
	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, newMonasteryView(created))
}

func (h *MonasteryHandlers) update(w http.ResponseWriter, r *http.Request) {
	id, ok := monasteryID(w, r)
	if !ok {
		return
	}
	input, ok := decodeMonasteryInput(w, r)
	if !ok {
		return
	}
	updated, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newMonasteryView(updated))
}

func (h *MonasteryHandlers) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := monasteryID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, map[string]any{"deleted": id})
}

func monasteryID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "monasteryID")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeBadRequest(r.Context(), w, "monastery id must be a positive integer")
		return 0, false
	}
	return id, true
}

func parseMonasteryFilter(r *http.Request) domain.MonasteryFilter {
	query := r.URL.Query()
	filter := domain.MonasteryFilter{
		Search:   strings.TrimSpace(query.Get("search")),
		Sect:     strings.TrimSpace(query.Get("sect")),
		District: strings.TrimSpace(query.Get("district")),
	}
	if raw := strings.TrimSpace(query.Get("featured")); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}
	return filter
}

type prayerHallPayload struct {
	Capacity   int      `json:"capacity"`
	Features   []string `json:"features"`
	Dimensions string   `json:"dimensions"`
}

type festivalPayload struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type monasteryInputPayload struct {
	Name            string             `json:"name"`
	Sect            string             `json:"sect"`
	Location        string             `json:"location"`
	District        string             `json:"district"`
	Established     string             `json:"established"`
	Description     string             `json:"description"`
	History         string             `json:"history"`
	VisitingHours   string             `json:"visitingHours"`
	EntryFee        string             `json:"entryFee"`
	Latitude        *float64           `json:"latitude"`
	Longitude       *float64           `json:"longitude"`
	PrayerHall      *prayerHallPayload `json:"prayerHall"`
	Images          []string           `json:"images"`
	SpecialFeatures []string           `json:"specialFeatures"`
	Featured        *bool              `json:"featured"`
	Festivals       []festivalPayload  `json:"festivals"`
	AudioGuide      map[string]string  `json:"audioGuide"`
}

func decodeMonasteryInput(w http.ResponseWriter, r *http.Request) (services.MonasteryInput, bool) {
	var payload monasteryInputPayload
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		writeBadRequest(r.Context(), w, "invalid JSON body")
		return services.MonasteryInput{}, false
	}
	input := services.MonasteryInput{
		Name:            payload.Name,
		Sect:            payload.Sect,
		Location:        payload.Location,
		District:        payload.District,
		Established:     payload.Established,
		Description:     payload.Description,
		History:         payload.History,
		VisitingHours:   payload.VisitingHours,
		EntryFee:        payload.EntryFee,
		Latitude:        payload.Latitude,
		Longitude:       payload.Longitude,
		Images:          payload.Images,
		SpecialFeatures: payload.SpecialFeatures,
		Featured:        payload.Featured,
		AudioGuide:      payload.AudioGuide,
	}
	if payload.PrayerHall != nil {
		input.PrayerHall = &services.PrayerHallInput{
			Capacity:   payload.PrayerHall.Capacity,
			Features:   payload.PrayerHall.Features,
			Dimensions: payload.PrayerHall.Dimensions,
		}
	}
	if payload.Festivals != nil {
		festivals := make([]services.FestivalInput, 0, len(payload.Festivals))
		for _, f := range payload.Festivals {
			festivals = append(festivals, services.FestivalInput{
				Name:        f.Name,
				Date:        f.Date,
				Description: f.Description,
			})
		}
		input.Festivals = festivals
	}
	return input, true
}
