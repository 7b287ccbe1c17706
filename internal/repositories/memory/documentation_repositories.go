package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/repositories"
)

// ArtifactRepository keeps artifact documentation in process memory.
type ArtifactRepository struct {
	mu    sync.RWMutex
	items []domain.Artifact
}

// NewArtifactRepository builds the store with optional seed data.
func NewArtifactRepository(seed []domain.Artifact) *ArtifactRepository {
	return &ArtifactRepository{items: append([]domain.Artifact(nil), seed...)}
}

// List returns artifacts matching the filter in seed order.
func (r *ArtifactRepository) List(_ context.Context, filter domain.ArtifactFilter) ([]domain.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.Artifact, 0, len(r.items))
	for _, a := range r.items {
		if filter.Matches(a) {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

// FindByID returns an artifact or a not-found error.
func (r *ArtifactRepository) FindByID(_ context.Context, id string) (domain.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Artifact{}, repositories.NewNotFound("artifacts.find", fmt.Sprintf("artifact %q not found", id))
}

// CountByMonastery counts artifacts attached to a monastery.
func (r *ArtifactRepository) CountByMonastery(_ context.Context, monasteryID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, a := range r.items {
		if a.MonasteryID == monasteryID {
			count++
		}
	}
	return count, nil
}

// Categories lists the distinct artifact categories in sorted order.
func (r *ArtifactRepository) Categories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]string, 0, len(r.items))
	for _, a := range r.items {
		values = append(values, a.Category)
	}
	return distinctSorted(values), nil
}

// RitualRepository keeps ritual documentation in process memory.
type RitualRepository struct {
	mu    sync.RWMutex
	items []domain.Ritual
}

// NewRitualRepository builds the store with optional seed data.
func NewRitualRepository(seed []domain.Ritual) *RitualRepository {
	return &RitualRepository{items: append([]domain.Ritual(nil), seed...)}
}

// List returns rituals matching the filter in seed order.
func (r *RitualRepository) List(_ context.Context, filter domain.RitualFilter) ([]domain.Ritual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.Ritual, 0, len(r.items))
	for _, rt := range r.items {
		if filter.Matches(rt) {
			matches = append(matches, rt)
		}
	}
	return matches, nil
}

// FindByID returns a ritual or a not-found error.
func (r *RitualRepository) FindByID(_ context.Context, id string) (domain.Ritual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range r.items {
		if rt.ID == id {
			return rt, nil
		}
	}
	return domain.Ritual{}, repositories.NewNotFound("rituals.find", fmt.Sprintf("ritual %q not found", id))
}

// CountByMonastery counts rituals attached to a monastery.
func (r *RitualRepository) CountByMonastery(_ context.Context, monasteryID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rt := range r.items {
		if rt.MonasteryID == monasteryID {
			count++
		}
	}
	return count, nil
}

// Types lists the distinct ritual types in sorted order.
func (r *RitualRepository) Types(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]string, 0, len(r.items))
	for _, rt := range r.items {
		values = append(values, rt.Type)
	}
	return distinctSorted(values), nil
}

// HistoricalRecordRepository keeps archival records in process memory.
type HistoricalRecordRepository struct {
	mu    sync.RWMutex
	items []domain.HistoricalRecord
}

// NewHistoricalRecordRepository builds the store with optional seed data.
func NewHistoricalRecordRepository(seed []domain.HistoricalRecord) *HistoricalRecordRepository {
	return &HistoricalRecordRepository{items: append([]domain.HistoricalRecord(nil), seed...)}
}

// List returns records matching the filter in seed order.
func (r *HistoricalRecordRepository) List(_ context.Context, filter domain.HistoricalRecordFilter) ([]domain.HistoricalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.HistoricalRecord, 0, len(r.items))
	for _, rec := range r.items {
		if filter.Matches(rec) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// FindByID returns a record or a not-found error.
func (r *HistoricalRecordRepository) FindByID(_ context.Context, id string) (domain.HistoricalRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.items {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.HistoricalRecord{}, repositories.NewNotFound("historical_records.find", fmt.Sprintf("record %q not found", id))
}

// CountByMonastery counts records attached to a monastery.
func (r *HistoricalRecordRepository) CountByMonastery(_ context.Context, monasteryID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rec := range r.items {
		if rec.MonasteryID == monasteryID {
			count++
		}
	}
	return count, nil
}

// Types lists the distinct record types in sorted order.
func (r *HistoricalRecordRepository) Types(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]string, 0, len(r.items))
	for _, rec := range r.items {
		values = append(values, rec.Type)
	}
	return distinctSorted(values), nil
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
