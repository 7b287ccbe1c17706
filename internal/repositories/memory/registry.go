// Package memory provides a mutex-guarded in-process implementation of the
// repository registry. It backs local development runs seeded from the
// embedded dataset and doubles as the fixture store in tests.
package memory

import (
	"context"

	"github.com/monastery360/api/internal/dataset"
	"github.com/monastery360/api/internal/repositories"
)

// Registry satisfies repositories.Registry with in-process stores.
type Registry struct {
	monasteries *MonasteryRepository
	artifacts   *ArtifactRepository
	rituals     *RitualRepository
	records     *HistoricalRecordRepository
	users       *UserRepository
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		monasteries: NewMonasteryRepository(nil),
		artifacts:   NewArtifactRepository(nil),
		rituals:     NewRitualRepository(nil),
		records:     NewHistoricalRecordRepository(nil),
		users:       NewUserRepository(),
	}
}

// NewSeededRegistry returns a registry preloaded with the full embedded
// corpus and its documentation records.
func NewSeededRegistry() *Registry {
	doc := dataset.SeedDocumentation()
	return &Registry{
		monasteries: NewMonasteryRepository(dataset.All()),
		artifacts:   NewArtifactRepository(doc.Artifacts),
		rituals:     NewRitualRepository(doc.Rituals),
		records:     NewHistoricalRecordRepository(doc.Records),
		users:       NewUserRepository(),
	}
}

// NewCuratedRegistry seeds only the fifteen curated monasteries. Tests use
// this to keep expectations tractable.
func NewCuratedRegistry() *Registry {
	doc := dataset.SeedDocumentation()
	return &Registry{
		monasteries: NewMonasteryRepository(dataset.Curated()),
		artifacts:   NewArtifactRepository(doc.Artifacts),
		rituals:     NewRitualRepository(doc.Rituals),
		records:     NewHistoricalRecordRepository(doc.Records),
		users:       NewUserRepository(),
	}
}

// Close implements repositories.Registry; nothing to release.
func (r *Registry) Close(context.Context) error { return nil }

// Ping implements repositories.Registry; the in-process store is always up.
func (r *Registry) Ping(context.Context) error { return nil }

// Monasteries returns the monastery store.
func (r *Registry) Monasteries() repositories.MonasteryRepository { return r.monasteries }

// Artifacts returns the artifact store.
func (r *Registry) Artifacts() repositories.ArtifactRepository { return r.artifacts }

// Rituals returns the ritual store.
func (r *Registry) Rituals() repositories.RitualRepository { return r.rituals }

// HistoricalRecords returns the archival record store.
func (r *Registry) HistoricalRecords() repositories.HistoricalRecordRepository { return r.records }

// Users returns the account store.
func (r *Registry) Users() repositories.UserRepository { return r.users }

var _ repositories.Registry = (*Registry)(nil)
