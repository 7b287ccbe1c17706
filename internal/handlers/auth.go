package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/services"
)

// AuthHandlers exposes registration, login, token refresh, and the current
// user endpoint.
type AuthHandlers struct {
	service services.UserService
	meMW    []func(http.Handler) http.Handler
}

// AuthOption customises construction of AuthHandlers.
type AuthOption func(*AuthHandlers)

// WithMeMiddlewares sets the middleware chain guarding GET /me.
func WithMeMiddlewares(mw ...func(http.Handler) http.Handler) AuthOption {
	return func(h *AuthHandlers) {
		h.meMW = append(h.meMW, mw...)
	}
}

// NewAuthHandlers constructs handlers for auth endpoints.
func NewAuthHandlers(service services.UserService, opts ...AuthOption) *AuthHandlers {
	handler := &AuthHandlers{service: service}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Routes registers auth endpoints against the provided router.
func (h *AuthHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/refresh", h.refresh)

	r.Group(func(me chi.Router) {
		for _, mw := range h.meMW {
			if mw != nil {
				me.Use(mw)
			}
		}
		me.Get("/me", h.me)
	})
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandlers) register(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(r.Context(), w, "invalid JSON body")
		return
	}
	session, err := h.service.Register(r.Context(), services.RegisterInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, newSessionView(session))
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandlers) login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(r.Context(), w, "invalid JSON body")
		return
	}
	session, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newSessionView(session))
}

type refreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandlers) refresh(w http.ResponseWriter, r *http.Request) {
	var payload refreshPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(r.Context(), w, "invalid JSON body")
		return
	}
	if payload.RefreshToken == "" {
		writeBadRequest(r.Context(), w, "refreshToken is required")
		return
	}
	session, err := h.service.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newSessionView(session))
}

func (h *AuthHandlers) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httpx.WriteError(r.Context(), w, httpx.NewError("unauthorized", "authentication required", http.StatusUnauthorized))
		return
	}
	user, err := h.service.Me(r.Context(), identity.UID)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, newUserView(user))
}
