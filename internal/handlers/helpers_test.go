package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/platform/kvstore"
	"github.com/monastery360/api/internal/platform/storage"
	"github.com/monastery360/api/internal/repositories/memory"
	"github.com/monastery360/api/internal/services"
)

// testApp wires the full handler stack over the curated in-memory registry.
type testApp struct {
	registry *memory.Registry
	issuer   *auth.Issuer
	router   http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	registry := memory.NewCuratedRegistry()

	issuer, err := auth.NewIssuer("test-secret-test-secret-test-secret", time.Hour, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	monasterySvc, err := services.NewMonasteryService(services.MonasteryServiceDeps{
		Monasteries: registry.Monasteries(),
		Artifacts:   registry.Artifacts(),
		Rituals:     registry.Rituals(),
		Records:     registry.HistoricalRecords(),
	})
	if err != nil {
		t.Fatalf("NewMonasteryService: %v", err)
	}
	documentationSvc, err := services.NewDocumentationService(services.DocumentationServiceDeps{
		Monasteries: registry.Monasteries(),
		Artifacts:   registry.Artifacts(),
		Rituals:     registry.Rituals(),
		Records:     registry.HistoricalRecords(),
	})
	if err != nil {
		t.Fatalf("NewDocumentationService: %v", err)
	}
	userSvc, err := services.NewUserService(services.UserServiceDeps{
		Users:  registry.Users(),
		Issuer: issuer,
		Hasher: auth.NewPasswordHasher(auth.DefaultBcryptCost),
	})
	if err != nil {
		t.Fatalf("NewUserService: %v", err)
	}
	store, err := storage.NewLocalStore(t.TempDir(), "http://localhost/api/v1/media/files")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	mediaSvc, err := services.NewMediaService(services.MediaServiceDeps{Store: store})
	if err != nil {
		t.Fatalf("NewMediaService: %v", err)
	}
	chatSvc, err := services.NewChatService(services.ChatServiceDeps{Monasteries: registry.Monasteries()})
	if err != nil {
		t.Fatalf("NewChatService: %v", err)
	}
	mapSvc, err := services.NewMapService(services.MapServiceDeps{Monasteries: registry.Monasteries()})
	if err != nil {
		t.Fatalf("NewMapService: %v", err)
	}
	player, err := services.NewAudioGuidePlayer(services.NewLoggingSpeechEngine(nil), kvstore.NewMemory())
	if err != nil {
		t.Fatalf("NewAudioGuidePlayer: %v", err)
	}

	adminChain := []func(http.Handler) http.Handler{
		auth.Authenticate(issuer),
		auth.RequireRole(auth.RoleAdmin),
	}
	documentation := NewDocumentationHandlers(documentationSvc)

	router := NewRouter(
		WithHealthHandlers(NewHealthHandlers(registry.Ping)),
		WithMonasteryRoutes(NewMonasteryHandlers(monasterySvc,
			WithMonasteryDocumentationRoute(documentation.MonasteryBundle),
			WithMonasteryAdminMiddlewares(adminChain...),
		).Routes),
		WithDocumentationRoutes(documentation.Routes),
		WithAuthRoutes(NewAuthHandlers(userSvc,
			WithMeMiddlewares(auth.Authenticate(issuer), auth.RequireAuth),
		).Routes),
		WithMediaRoutes(NewMediaHandlers(mediaSvc,
			WithMediaUploadMiddlewares(adminChain...),
		).Routes),
		WithChatRoutes(NewChatHandlers(chatSvc).Routes),
		WithMapRoutes(NewMapHandlers(mapSvc).Routes),
		WithAudioGuideRoutes(NewAudioGuideHandlers(player, monasterySvc).Routes),
	)

	return &testApp{registry: registry, issuer: issuer, router: router}
}

func (a *testApp) do(t *testing.T, method, path string, body io.Reader, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func withToken(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func (a *testApp) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := a.issuer.IssueAccess("admin-1", "curator@monastery360.example", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	return token
}

func (a *testApp) userToken(t *testing.T) string {
	t.Helper()
	token, _, err := a.issuer.IssueAccess("user-1", "visitor@monastery360.example", auth.RoleUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	return token
}

type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination *httpx.Pagination `json:"pagination"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) envelope {
	t.Helper()
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope, got %s", rec.Body.String())
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, string(env.Data))
	}
	return env
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(raw)
}

// multipartBody builds a multipart payload with one part per filename under
// the given field name.
func multipartBody(t *testing.T, field string, files map[string][]byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}
