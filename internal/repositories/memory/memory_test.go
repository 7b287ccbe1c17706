package memory

import (
	"context"
	"testing"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/repositories"
)

func TestMonasteryRepositoryListOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewCuratedRegistry().monasteries

	all, err := repo.List(ctx, domain.MonasteryFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("expected 15 records, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Fatalf("records not in ID order at index %d", i)
		}
	}

	west, err := repo.List(ctx, domain.MonasteryFilter{District: "West Sikkim", Search: "pelling"})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(west) != 2 {
		t.Fatalf("expected Pemayangtse and Sanga Choeling, got %d records", len(west))
	}
	if west[0].Name != "Pemayangtse Monastery" {
		t.Fatalf("expected Pemayangtse first, got %s", west[0].Name)
	}
}

func TestMonasteryRepositoryFindBySlug(t *testing.T) {
	ctx := context.Background()
	repo := NewCuratedRegistry().monasteries

	m, err := repo.FindBySlug(ctx, "pemayangtse-monastery")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if m.ID != 2 {
		t.Fatalf("expected monastery 2, got %d", m.ID)
	}

	if _, err := repo.FindBySlug(ctx, "no-such-monastery"); !repositories.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestMonasteryRepositoryInsertAssignsIDAndRejectsDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewCuratedRegistry().monasteries

	created, err := repo.Insert(ctx, domain.Monastery{Name: "Test Gompa", Sect: domain.SectSakya, District: "East Sikkim"})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if created.ID != 16 {
		t.Fatalf("expected next ID 16, got %d", created.ID)
	}
	if created.Slug != "test-gompa" {
		t.Fatalf("expected derived slug, got %q", created.Slug)
	}

	if _, err := repo.Insert(ctx, domain.Monastery{Name: "Rumtek Monastery"}); !repositories.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate slug, got %v", err)
	}
}

func TestMonasteryRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewCuratedRegistry().monasteries

	m, err := repo.FindByID(ctx, 4)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	m.Description = "Updated description."
	updated, err := repo.Update(ctx, m)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "Updated description." {
		t.Fatalf("update not applied")
	}
	if updated.CreatedAt != m.CreatedAt {
		t.Fatalf("update must preserve CreatedAt")
	}

	if err := repo.Delete(ctx, 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, 4); !repositories.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
	if err := repo.Delete(ctx, 4); !repositories.IsNotFound(err) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}

func TestArtifactRepositoryFiltersAndCategories(t *testing.T) {
	ctx := context.Background()
	reg := NewCuratedRegistry()

	forRumtek, err := reg.artifacts.List(ctx, domain.ArtifactFilter{MonasteryID: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(forRumtek) == 0 {
		t.Fatalf("expected artifacts for monastery 1")
	}
	for _, a := range forRumtek {
		if a.MonasteryID != 1 {
			t.Fatalf("filter leak: artifact for monastery %d", a.MonasteryID)
		}
	}

	count, err := reg.artifacts.CountByMonastery(ctx, 1)
	if err != nil {
		t.Fatalf("CountByMonastery: %v", err)
	}
	if count != len(forRumtek) {
		t.Fatalf("count %d does not match list %d", count, len(forRumtek))
	}

	categories, err := reg.artifacts.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) == 0 {
		t.Fatalf("expected distinct categories")
	}
	for i := 1; i < len(categories); i++ {
		if categories[i] <= categories[i-1] {
			t.Fatalf("categories not sorted or not distinct: %v", categories)
		}
	}
}

func TestUserRepositoryEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := domain.User{ID: "u1", Name: "Tenzin", Email: "tenzin@example.com", Role: domain.RoleUser, Active: true}
	if _, err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	dup := domain.User{ID: "u2", Email: "TENZIN@example.com"}
	if _, err := repo.Insert(ctx, dup); !repositories.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}

	found, err := repo.FindByEmail(ctx, "Tenzin@Example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found.ID != "u1" {
		t.Fatalf("expected u1, got %s", found.ID)
	}
}
