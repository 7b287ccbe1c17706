package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/platform/pagination"
	"github.com/monastery360/api/internal/services"
)

// DocumentationHandlers exposes the artifact, ritual, and historical record
// archives, plus the per-monastery documentation bundle.
type DocumentationHandlers struct {
	service services.DocumentationService
}

// NewDocumentationHandlers constructs handlers for documentation endpoints.
func NewDocumentationHandlers(service services.DocumentationService) *DocumentationHandlers {
	return &DocumentationHandlers{service: service}
}

// Routes registers documentation endpoints against the provided router.
func (h *DocumentationHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/categories", h.categories)
	r.Route("/artifacts", func(g chi.Router) {
		g.Get("/", h.listArtifacts)
		g.Get("/{artifactID}", h.getArtifact)
	})
	r.Route("/rituals", func(g chi.Router) {
		g.Get("/", h.listRituals)
		g.Get("/{ritualID}", h.getRitual)
	})
	r.Route("/historical-records", func(g chi.Router) {
		g.Get("/", h.listHistoricalRecords)
		g.Get("/{recordID}", h.getHistoricalRecord)
	})
}

// MonasteryBundle serves the combined documentation for one monastery. It is
// mounted inside the monastery route group rather than here because chi does
// not allow a second registration under /monasteries.
func (h *DocumentationHandlers) MonasteryBundle(w http.ResponseWriter, r *http.Request) {
	h.forMonastery(w, r)
}

func (h *DocumentationHandlers) listArtifacts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.ArtifactFilter{
		MonasteryID: parseOptionalID(query.Get("monasteryId")),
		Category:    strings.TrimSpace(query.Get("category")),
		Search:      strings.TrimSpace(query.Get("search")),
	}
	page := pagination.FromRequest(r)

	items, total, err := h.service.ListArtifacts(r.Context(), filter, page)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteList(w, newArtifactViews(items), page.Meta(total))
}

func (h *DocumentationHandlers) getArtifact(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "artifactID"))
	artifact, err := h.service.GetArtifact(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newArtifactView(artifact))
}

// categories lists the distinct artifact categories, ritual types, and
// historical record types in one payload.
func (h *DocumentationHandlers) categories(w http.ResponseWriter, r *http.Request) {
	artifactCategories, err := h.service.ArtifactCategories(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	ritualTypes, err := h.service.RitualTypes(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	recordTypes, err := h.service.HistoricalRecordTypes(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, map[string][]string{
		"artifactCategories": artifactCategories,
		"ritualTypes":        ritualTypes,
		"recordTypes":        recordTypes,
	})
}

func (h *DocumentationHandlers) listRituals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.RitualFilter{
		MonasteryID: parseOptionalID(query.Get("monasteryId")),
		Type:        strings.TrimSpace(query.Get("type")),
		Search:      strings.TrimSpace(query.Get("search")),
	}
	page := pagination.FromRequest(r)

	items, total, err := h.service.ListRituals(r.Context(), filter, page)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteList(w, newRitualViews(items), page.Meta(total))
}

func (h *DocumentationHandlers) getRitual(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "ritualID"))
	ritual, err := h.service.GetRitual(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newRitualView(ritual))
}

func (h *DocumentationHandlers) listHistoricalRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.HistoricalRecordFilter{
		MonasteryID: parseOptionalID(query.Get("monasteryId")),
		Type:        strings.TrimSpace(query.Get("type")),
		Language:    strings.TrimSpace(query.Get("language")),
		Search:      strings.TrimSpace(query.Get("search")),
	}
	page := pagination.FromRequest(r)

	items, total, err := h.service.ListHistoricalRecords(r.Context(), filter, page)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteList(w, newHistoricalRecordViews(items), page.Meta(total))
}

func (h *DocumentationHandlers) getHistoricalRecord(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "recordID"))
	record, err := h.service.GetHistoricalRecord(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newHistoricalRecordView(record))
}

func (h *DocumentationHandlers) forMonastery(w http.ResponseWriter, r *http.Request) {
	id, ok := monasteryID(w, r)
	if !ok {
		return
	}
	bundle, err := h.service.ForMonastery(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, map[string]any{
		"artifacts":         newArtifactViews(bundle.Artifacts),
		"rituals":           newRitualViews(bundle.Rituals),
		"historicalRecords": newHistoricalRecordViews(bundle.HistoricalRecords),
	})
}

func parseOptionalID(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
