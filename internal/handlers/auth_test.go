package handlers

import (
	"net/http"
	"testing"
)

func registerVisitor(t *testing.T, app *testApp) sessionView {
	t.Helper()
	rec := app.do(t, http.MethodPost, "/api/v1/auth/register", jsonBody(t, map[string]string{
		"name":     "Tenzin Visitor",
		"email":    "Tenzin@Example.com",
		"password": "secret123",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var session sessionView
	decodeData(t, rec, &session)
	return session
}

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t)
	session := registerVisitor(t, app)

	if session.User.Email != "tenzin@example.com" {
		t.Fatalf("expected lowercased email, got %q", session.User.Email)
	}
	if session.User.Role != "user" {
		t.Fatalf("expected user role, got %q", session.User.Role)
	}
	if session.AccessToken == "" || session.RefreshToken == "" {
		t.Fatal("expected a token pair")
	}

	rec := app.do(t, http.MethodPost, "/api/v1/auth/login", jsonBody(t, map[string]string{
		"email":    "tenzin@example.com",
		"password": "secret123",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t)
	registerVisitor(t, app)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/login", jsonBody(t, map[string]string{
		"email":    "tenzin@example.com",
		"password": "wrong-password",
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/register", jsonBody(t, map[string]string{
		"name":     "",
		"email":    "not-an-email",
		"password": "123",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	registerVisitor(t, app)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/register", jsonBody(t, map[string]string{
		"name":     "Second Account",
		"email":    "tenzin@example.com",
		"password": "secret123",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", rec.Code)
	}
}

func TestRefreshIssuesNewSession(t *testing.T) {
	app := newTestApp(t)
	session := registerVisitor(t, app)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/refresh", jsonBody(t, map[string]string{
		"refreshToken": session.RefreshToken,
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var refreshed sessionView
	decodeData(t, rec, &refreshed)
	if refreshed.AccessToken == "" || refreshed.User.ID != session.User.ID {
		t.Fatalf("unexpected refreshed session %+v", refreshed)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	app := newTestApp(t)
	session := registerVisitor(t, app)

	rec := app.do(t, http.MethodPost, "/api/v1/auth/refresh", jsonBody(t, map[string]string{
		"refreshToken": session.AccessToken,
	}))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMeRequiresAuthentication(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	app := newTestApp(t)
	session := registerVisitor(t, app)

	rec := app.do(t, http.MethodGet, "/api/v1/auth/me", nil, withToken(session.AccessToken))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var me userView
	decodeData(t, rec, &me)
	if me.ID != session.User.ID || me.Email != "tenzin@example.com" {
		t.Fatalf("unexpected identity %+v", me)
	}
}
