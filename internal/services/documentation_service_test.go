package services

import (
	"context"
	"errors"
	"testing"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/pagination"
	"github.com/monastery360/api/internal/repositories/memory"
)

func newDocumentationService(t *testing.T) DocumentationService {
	t.Helper()
	registry := memory.NewCuratedRegistry()
	svc, err := NewDocumentationService(DocumentationServiceDeps{
		Monasteries: registry.Monasteries(),
		Artifacts:   registry.Artifacts(),
		Rituals:     registry.Rituals(),
		Records:     registry.HistoricalRecords(),
	})
	if err != nil {
		t.Fatalf("NewDocumentationService: %v", err)
	}
	return svc
}

func TestListArtifactsByMonastery(t *testing.T) {
	svc := newDocumentationService(t)

	artifacts, total, err := svc.ListArtifacts(context.Background(), domain.ArtifactFilter{MonasteryID: 1}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListArtifacts: %v", err)
	}
	if total == 0 || len(artifacts) != total {
		t.Fatalf("expected artifacts for monastery 1, got %d of %d", len(artifacts), total)
	}
	for _, a := range artifacts {
		if a.MonasteryID != 1 {
			t.Fatalf("filter leaked artifact for monastery %d", a.MonasteryID)
		}
	}
}

func TestGetArtifactRoundTrip(t *testing.T) {
	svc := newDocumentationService(t)
	ctx := context.Background()

	artifacts, _, err := svc.ListArtifacts(ctx, domain.ArtifactFilter{}, pagination.Params{Page: 1, Limit: 1})
	if err != nil || len(artifacts) != 1 {
		t.Fatalf("ListArtifacts: %v (%d items)", err, len(artifacts))
	}

	got, err := svc.GetArtifact(ctx, artifacts[0].ID)
	if err != nil {
		t.Fatalf("GetArtifact: %v", err)
	}
	if got.ID != artifacts[0].ID {
		t.Fatalf("unexpected artifact %+v", got)
	}

	if _, err := svc.GetArtifact(ctx, "nope"); !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
}

func TestArtifactCategoriesAreDistinctSorted(t *testing.T) {
	svc := newDocumentationService(t)

	categories, err := svc.ArtifactCategories(context.Background())
	if err != nil {
		t.Fatalf("ArtifactCategories: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("expected categories")
	}
	seen := map[string]bool{}
	for i, c := range categories {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
		if i > 0 && categories[i-1] > c {
			t.Fatalf("categories not sorted: %v", categories)
		}
	}
}

func TestListRitualsByType(t *testing.T) {
	svc := newDocumentationService(t)

	rituals, total, err := svc.ListRituals(context.Background(), domain.RitualFilter{Type: "Festival"}, pagination.Params{Page: 1, Limit: 100})
	if err != nil {
		t.Fatalf("ListRituals: %v", err)
	}
	if total == 0 {
		t.Fatal("expected festival rituals")
	}
	for _, r := range rituals {
		if r.Type != "Festival" {
			t.Fatalf("type filter leaked %q", r.Type)
		}
	}
}

func TestForMonasteryBundlesEverything(t *testing.T) {
	svc := newDocumentationService(t)

	doc, err := svc.ForMonastery(context.Background(), 1)
	if err != nil {
		t.Fatalf("ForMonastery: %v", err)
	}
	if len(doc.Artifacts) == 0 || len(doc.Rituals) == 0 || len(doc.HistoricalRecords) == 0 {
		t.Fatalf("expected full documentation bundle, got %d/%d/%d",
			len(doc.Artifacts), len(doc.Rituals), len(doc.HistoricalRecords))
	}

	if _, err := svc.ForMonastery(context.Background(), 999); !errors.Is(err, ErrMonasteryNotFound) {
		t.Fatalf("expected ErrMonasteryNotFound, got %v", err)
	}
}
