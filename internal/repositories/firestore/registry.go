// Package firestore implements the repository registry on Cloud Firestore.
package firestore

import (
	"context"
	"errors"

	pfirestore "github.com/monastery360/api/internal/platform/firestore"
	"github.com/monastery360/api/internal/repositories"
)

// Registry wires the Firestore-backed repositories around a shared provider.
type Registry struct {
	provider    *pfirestore.Provider
	monasteries *MonasteryRepository
	artifacts   *ArtifactRepository
	rituals     *RitualRepository
	records     *HistoricalRecordRepository
	users       *UserRepository
}

// NewRegistry constructs every repository against the given provider.
func NewRegistry(provider *pfirestore.Provider) (*Registry, error) {
	if provider == nil {
		return nil, errors.New("firestore registry: provider is required")
	}

	monasteries, err := NewMonasteryRepository(provider)
	if err != nil {
		return nil, err
	}
	artifacts, err := NewArtifactRepository(provider)
	if err != nil {
		return nil, err
	}
	rituals, err := NewRitualRepository(provider)
	if err != nil {
		return nil, err
	}
	records, err := NewHistoricalRecordRepository(provider)
	if err != nil {
		return nil, err
	}
	users, err := NewUserRepository(provider)
	if err != nil {
		return nil, err
	}

	return &Registry{
		provider:    provider,
		monasteries: monasteries,
		artifacts:   artifacts,
		rituals:     rituals,
		records:     records,
		users:       users,
	}, nil
}

// Close releases the shared Firestore client.
func (r *Registry) Close(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Close(ctx)
}

// Ping verifies the client can be constructed and the backend reached.
func (r *Registry) Ping(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return errors.New("firestore registry: provider is required")
	}
	_, err := r.provider.Client(ctx)
	return err
}

// Monasteries returns the monastery repository.
func (r *Registry) Monasteries() repositories.MonasteryRepository { return r.monasteries }

// Artifacts returns the artifact repository.
func (r *Registry) Artifacts() repositories.ArtifactRepository { return r.artifacts }

// Rituals returns the ritual repository.
func (r *Registry) Rituals() repositories.RitualRepository { return r.rituals }

// HistoricalRecords returns the archival record repository.
func (r *Registry) HistoricalRecords() repositories.HistoricalRecordRepository { return r.records }

// Users returns the account repository.
func (r *Registry) Users() repositories.UserRepository { return r.users }

var _ repositories.Registry = (*Registry)(nil)
