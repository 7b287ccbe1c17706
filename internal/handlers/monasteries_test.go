package handlers

import (
	"net/http"
	"testing"
)

func TestListMonasteriesEnvelope(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries?limit=5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var items []monasteryView
	env := decodeData(t, rec, &items)
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	if env.Pagination == nil || env.Pagination.Total != 15 || env.Pagination.Pages != 3 {
		t.Fatalf("unexpected pagination %+v", env.Pagination)
	}
}

func TestListMonasteriesDistrictAndSearch(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries?district=West+Sikkim&search=pelling", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []monasteryView
	decodeData(t, rec, &items)
	if len(items) == 0 || items[0].Name != "Pemayangtse Monastery" {
		t.Fatalf("expected Pemayangtse Monastery first, got %+v", items)
	}
}

func TestFeaturedMonasteries(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries/featured/list", nil)
	var items []monasteryView
	decodeData(t, rec, &items)
	if len(items) != 6 {
		t.Fatalf("expected 6 featured monasteries, got %d", len(items))
	}
	for _, m := range items {
		if !m.Featured {
			t.Fatalf("non-featured monastery leaked: %+v", m)
		}
	}
}

func TestSearchMonasteriesRejectsShortQuery(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries/search/query?q=r", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if decodeEnvelope(t, rec).Success {
		t.Fatalf("expected failure envelope")
	}
}

func TestGetMonasteryWithDocumentationCounts(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var detail monasteryDetailView
	decodeData(t, rec, &detail)
	if detail.Name != "Rumtek Monastery" {
		t.Fatalf("expected Rumtek Monastery, got %q", detail.Name)
	}
	if detail.Documentation.Artifacts == 0 {
		t.Fatalf("expected artifact count, got %+v", detail.Documentation)
	}
}

func TestGetMonasteryReturnsFullProfile(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var detail monasteryDetailView
	decodeData(t, rec, &detail)

	if detail.Established != "1966" {
		t.Fatalf("expected established %q, got %q", "1966", detail.Established)
	}
	if detail.PrayerHall.Capacity != 200 || detail.PrayerHall.Dimensions != "40m x 30m" {
		t.Fatalf("unexpected prayer hall %+v", detail.PrayerHall)
	}
	if len(detail.PrayerHall.Features) == 0 {
		t.Fatal("expected prayer hall features")
	}
	if len(detail.Images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(detail.Images))
	}
	if len(detail.SpecialFeatures) == 0 {
		t.Fatal("expected special features")
	}
	if len(detail.Festivals) != 3 {
		t.Fatalf("expected 3 festivals, got %d", len(detail.Festivals))
	}
	for _, f := range detail.Festivals {
		if f.Name == "" || f.Date == "" || f.Description == "" {
			t.Fatalf("incomplete festival entry %+v", f)
		}
	}
}

func TestGetMonasteryNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetMonasteryRejectsBadID(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries/rumtek", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetMonasteryBySlug(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/v1/monasteries/slug/pemayangtse-monastery", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var detail monasteryDetailView
	decodeData(t, rec, &detail)
	if detail.ID != 2 {
		t.Fatalf("expected monastery 2, got %d", detail.ID)
	}
}

func TestCreateMonasteryRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{"name": "New Hermitage", "sect": "Nyingma", "location": "Gangtok", "district": "East Sikkim", "established": "1900"}

	rec := app.do(t, http.MethodPost, "/api/v1/monasteries", jsonBody(t, body))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", rec.Code)
	}

	rec = app.do(t, http.MethodPost, "/api/v1/monasteries", jsonBody(t, body), withToken(app.userToken(t)))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("user role: expected 403, got %d", rec.Code)
	}
}

func TestCreateMonasteryAsAdmin(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{
		"name":        "New Hermitage",
		"sect":        "nyingma",
		"location":    "Gangtok",
		"district":    "East Sikkim",
		"established": "1900",
	}

	rec := app.do(t, http.MethodPost, "/api/v1/monasteries", jsonBody(t, body), withToken(app.adminToken(t)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created monasteryView
	decodeData(t, rec, &created)
	if created.ID != 16 || created.Slug != "new-hermitage" {
		t.Fatalf("unexpected created monastery %+v", created)
	}
	if created.Sect != "Nyingma" {
		t.Fatalf("expected canonical sect, got %q", created.Sect)
	}
}

func TestCreateMonasteryValidation(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{"name": "", "sect": "Jedi", "location": "", "district": "", "established": "10"}

	rec := app.do(t, http.MethodPost, "/api/v1/monasteries", jsonBody(t, body), withToken(app.adminToken(t)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestUpdateAndDeleteMonastery(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)
	body := map[string]any{
		"name":        "Phodong Monastery",
		"sect":        "Kagyu",
		"location":    "Phodong",
		"district":    "North Sikkim",
		"established": "1740",
	}

	rec := app.do(t, http.MethodPut, "/api/v1/monasteries/5", jsonBody(t, body), withToken(token))
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = app.do(t, http.MethodDelete, "/api/v1/monasteries/5", nil, withToken(token))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}

	rec = app.do(t, http.MethodGet, "/api/v1/monasteries/5", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
