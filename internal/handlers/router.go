package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/monastery360/api/internal/platform/httpx"
)

const (
	apiPrefix      = "/api/v1"
	requestTimeout = 60 * time.Second
)

// RouteRegistrar attaches one resource group's routes to a router.
type RouteRegistrar func(r chi.Router)

type routerConfig struct {
	basePath    string
	middlewares []func(http.Handler) http.Handler
	health      *HealthHandlers

	monasteries   RouteRegistrar
	documentation RouteRegistrar
	auth          RouteRegistrar
	media         RouteRegistrar
	chat          RouteRegistrar
	mapView       RouteRegistrar
	audioGuide    RouteRegistrar

	mediaMiddlewares []func(http.Handler) http.Handler
}

// Option customises the router configuration before construction.
type Option func(*routerConfig)

// NewRouter wires the shared middleware chain, health probes, and every
// resource group under /api/v1. Groups without a registrar answer 501 so
// a partially wired server still speaks the JSON envelope.
func NewRouter(opts ...Option) chi.Router {
	cfg := routerConfig{
		basePath: apiPrefix,
		middlewares: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Timeout(requestTimeout),
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.health == nil {
		cfg.health = NewHealthHandlers()
	}

	r := chi.NewRouter()
	for _, mw := range cfg.middlewares {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeRouterError(w, req, "route_not_found", http.StatusNotFound,
			fmt.Sprintf("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeRouterError(w, req, "method_not_allowed", http.StatusMethodNotAllowed,
			fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/healthz", cfg.health.Healthz)
	r.Get("/readyz", cfg.health.Readyz)

	groups := []struct {
		path        string
		name        string
		register    RouteRegistrar
		middlewares []func(http.Handler) http.Handler
	}{
		{path: "/monasteries", name: "monasteries", register: cfg.monasteries},
		{path: "/documentation", name: "documentation", register: cfg.documentation},
		{path: "/auth", name: "auth", register: cfg.auth},
		{path: "/media", name: "media", register: cfg.media, middlewares: cfg.mediaMiddlewares},
		{path: "/chat", name: "chat", register: cfg.chat},
		{path: "/map", name: "map", register: cfg.mapView},
		{path: "/audio", name: "audio guide", register: cfg.audioGuide},
	}

	r.Route(cfg.basePath, func(api chi.Router) {
		for _, g := range groups {
			g := g
			api.Route(g.path, func(group chi.Router) {
				for _, mw := range g.middlewares {
					if mw != nil {
						group.Use(mw)
					}
				}
				if g.register != nil {
					g.register(group)
					return
				}
				stub := notImplemented(g.name)
				group.HandleFunc("/", stub)
				group.HandleFunc("/*", stub)
				group.NotFound(stub)
				group.MethodNotAllowed(stub)
			})
		}
	})

	return r
}

func writeRouterError(w http.ResponseWriter, req *http.Request, code string, status int, msg string) {
	httpx.WriteError(req.Context(), w, httpx.NewError(code, msg, status))
}

func notImplemented(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		writeRouterError(w, req, "not_implemented", http.StatusNotImplemented,
			fmt.Sprintf("%s routes not implemented", name))
	}
}

// WithMiddlewares appends global middleware.
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(cfg *routerConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithHealthHandlers overrides the /healthz and /readyz handlers.
func WithHealthHandlers(h *HealthHandlers) Option {
	return func(cfg *routerConfig) { cfg.health = h }
}

// WithMonasteryRoutes sets the registrar for monastery endpoints.
func WithMonasteryRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.monasteries = reg }
}

// WithDocumentationRoutes sets the registrar for the artifact, ritual,
// and historical record endpoints under /documentation.
func WithDocumentationRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.documentation = reg }
}

// WithAuthRoutes sets the registrar for auth endpoints.
func WithAuthRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.auth = reg }
}

// WithMediaRoutes sets the registrar for media endpoints.
func WithMediaRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.media = reg }
}

// WithMediaMiddlewares adds middleware scoped to the /media group.
func WithMediaMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(cfg *routerConfig) {
		cfg.mediaMiddlewares = append(cfg.mediaMiddlewares, mw...)
	}
}

// WithChatRoutes sets the registrar for chatbot endpoints.
func WithChatRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.chat = reg }
}

// WithMapRoutes sets the registrar for map endpoints.
func WithMapRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.mapView = reg }
}

// WithAudioGuideRoutes sets the registrar for audio guide endpoints.
func WithAudioGuideRoutes(reg RouteRegistrar) Option {
	return func(cfg *routerConfig) { cfg.audioGuide = reg }
}
