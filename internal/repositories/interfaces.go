package repositories

import (
	"context"
	"errors"

	"github.com/monastery360/api/internal/domain"
)

// Registry exposes typed repository accessors and lifecycle hooks for dependency injection.
type Registry interface {
	Close(ctx context.Context) error

	// Ping verifies the backing store is reachable; used by readiness checks.
	Ping(ctx context.Context) error

	Monasteries() MonasteryRepository
	Artifacts() ArtifactRepository
	Rituals() RitualRepository
	HistoricalRecords() HistoricalRecordRepository
	Users() UserRepository
}

// RepositoryError wraps low-level persistence failures with categorisation used by services.
type RepositoryError interface {
	error
	IsNotFound() bool
	IsConflict() bool
	IsUnavailable() bool
}

// IsNotFound reports whether err (or anything it wraps) is a missing-record failure.
func IsNotFound(err error) bool {
	var repoErr RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsNotFound()
}

// IsConflict reports whether err represents a uniqueness or precondition violation.
func IsConflict(err error) bool {
	var repoErr RepositoryError
	return errors.As(err, &repoErr) && repoErr.IsConflict()
}

// MonasteryRepository persists the heritage records. List returns every
// record matching the filter in stable ID order; pagination is applied by
// the service layer.
type MonasteryRepository interface {
	List(ctx context.Context, filter domain.MonasteryFilter) ([]domain.Monastery, error)
	FindByID(ctx context.Context, id int) (domain.Monastery, error)
	FindBySlug(ctx context.Context, slug string) (domain.Monastery, error)
	Insert(ctx context.Context, monastery domain.Monastery) (domain.Monastery, error)
	Update(ctx context.Context, monastery domain.Monastery) (domain.Monastery, error)
	Delete(ctx context.Context, id int) error
}

// ArtifactRepository persists documented artifacts.
type ArtifactRepository interface {
	List(ctx context.Context, filter domain.ArtifactFilter) ([]domain.Artifact, error)
	FindByID(ctx context.Context, id string) (domain.Artifact, error)
	CountByMonastery(ctx context.Context, monasteryID int) (int, error)
	Categories(ctx context.Context) ([]string, error)
}

// RitualRepository persists ritual documentation.
type RitualRepository interface {
	List(ctx context.Context, filter domain.RitualFilter) ([]domain.Ritual, error)
	FindByID(ctx context.Context, id string) (domain.Ritual, error)
	CountByMonastery(ctx context.Context, monasteryID int) (int, error)
	Types(ctx context.Context) ([]string, error)
}

// HistoricalRecordRepository persists archival records.
type HistoricalRecordRepository interface {
	List(ctx context.Context, filter domain.HistoricalRecordFilter) ([]domain.HistoricalRecord, error)
	FindByID(ctx context.Context, id string) (domain.HistoricalRecord, error)
	CountByMonastery(ctx context.Context, monasteryID int) (int, error)
	Types(ctx context.Context) ([]string, error)
}

// UserRepository persists registered accounts. Email lookups are
// case-insensitive; Insert fails with a conflict when the email is taken.
type UserRepository interface {
	Insert(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}
