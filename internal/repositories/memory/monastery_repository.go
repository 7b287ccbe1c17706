package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/textutil"
	"github.com/monastery360/api/internal/repositories"
)

// MonasteryRepository keeps monastery records in process memory, ordered by ID.
type MonasteryRepository struct {
	mu      sync.RWMutex
	records map[int]domain.Monastery
	nextID  int
}

// NewMonasteryRepository builds the store, optionally preloaded with seed records.
func NewMonasteryRepository(seed []domain.Monastery) *MonasteryRepository {
	repo := &MonasteryRepository{records: make(map[int]domain.Monastery, len(seed)), nextID: 1}
	for _, m := range seed {
		repo.records[m.ID] = m
		if m.ID >= repo.nextID {
			repo.nextID = m.ID + 1
		}
	}
	return repo
}

// List returns every record matching the filter in ascending ID order.
func (r *MonasteryRepository) List(_ context.Context, filter domain.MonasteryFilter) ([]domain.Monastery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	matches := make([]domain.Monastery, 0, len(ids))
	for _, id := range ids {
		if m := r.records[id]; filter.Matches(m) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// FindByID returns the record or a not-found error.
func (r *MonasteryRepository) FindByID(_ context.Context, id int) (domain.Monastery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.records[id]
	if !ok {
		return domain.Monastery{}, repositories.NewNotFound("monasteries.find", fmt.Sprintf("monastery %d not found", id))
	}
	return m, nil
}

// FindBySlug resolves a record by its URL slug.
func (r *MonasteryRepository) FindBySlug(_ context.Context, slug string) (domain.Monastery, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.records {
		if m.Slug == slug {
			return m, nil
		}
	}
	return domain.Monastery{}, repositories.NewNotFound("monasteries.find_slug", fmt.Sprintf("monastery %q not found", slug))
}

// Insert stores a new record, assigning the next ID and deriving the slug
// when absent. Duplicate slugs are rejected as conflicts.
func (r *MonasteryRepository) Insert(_ context.Context, m domain.Monastery) (domain.Monastery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.Slug == "" {
		m.Slug = textutil.Slugify(m.Name)
	}
	for _, existing := range r.records {
		if existing.Slug == m.Slug {
			return domain.Monastery{}, repositories.NewConflict("monasteries.insert", fmt.Sprintf("slug %q already exists", m.Slug))
		}
	}

	if m.ID == 0 {
		m.ID = r.nextID
	}
	if m.ID >= r.nextID {
		r.nextID = m.ID + 1
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	r.records[m.ID] = m
	return m, nil
}

// Update replaces an existing record.
func (r *MonasteryRepository) Update(_ context.Context, m domain.Monastery) (domain.Monastery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[m.ID]
	if !ok {
		return domain.Monastery{}, repositories.NewNotFound("monasteries.update", fmt.Sprintf("monastery %d not found", m.ID))
	}
	if m.Slug == "" {
		m.Slug = textutil.Slugify(m.Name)
	}
	for id, other := range r.records {
		if id != m.ID && other.Slug == m.Slug {
			return domain.Monastery{}, repositories.NewConflict("monasteries.update", fmt.Sprintf("slug %q already exists", m.Slug))
		}
	}
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	r.records[m.ID] = m
	return m, nil
}

// Delete removes a record by ID.
func (r *MonasteryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return repositories.NewNotFound("monasteries.delete", fmt.Sprintf("monastery %d not found", id))
	}
	delete(r.records, id)
	return nil
}
