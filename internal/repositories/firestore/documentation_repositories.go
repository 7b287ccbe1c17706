package firestore

import (
	"context"
	"errors"
	"sort"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/monastery360/api/internal/domain"
	pfirestore "github.com/monastery360/api/internal/platform/firestore"
)

const (
	artifactsCollection         = "artifacts"
	ritualsCollection           = "rituals"
	historicalRecordsCollection = "historicalRecords"
)

type artifactDocument struct {
	MonasteryID int       `firestore:"monasteryId"`
	Name        string    `firestore:"name"`
	Category    string    `firestore:"category"`
	Description string    `firestore:"description,omitempty"`
	Age         string    `firestore:"age,omitempty"`
	ImageURL    string    `firestore:"imageUrl,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

type ritualDocument struct {
	MonasteryID int       `firestore:"monasteryId"`
	Name        string    `firestore:"name"`
	Type        string    `firestore:"type"`
	Description string    `firestore:"description,omitempty"`
	Timing      string    `firestore:"timing,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

type historicalRecordDocument struct {
	MonasteryID int       `firestore:"monasteryId"`
	Title       string    `firestore:"title"`
	Type        string    `firestore:"type"`
	Language    string    `firestore:"language,omitempty"`
	Year        int       `firestore:"year,omitempty"`
	Summary     string    `firestore:"summary,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// ArtifactRepository persists artifact documentation.
type ArtifactRepository struct {
	base *pfirestore.BaseRepository[domain.Artifact]
}

// NewArtifactRepository constructs a Firestore-backed artifact repository.
func NewArtifactRepository(provider *pfirestore.Provider) (*ArtifactRepository, error) {
	if provider == nil {
		return nil, errors.New("artifact repository: firestore provider is required")
	}
	encoder := func(ctx context.Context, a domain.Artifact) (any, error) {
		return artifactDocument{
			MonasteryID: a.MonasteryID,
			Name:        a.Name,
			Category:    a.Category,
			Description: a.Description,
			Age:         a.Age,
			ImageURL:    a.ImageURL,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		}, nil
	}
	decoder := func(ctx context.Context, snap *firestore.DocumentSnapshot) (domain.Artifact, error) {
		var doc artifactDocument
		if err := snap.DataTo(&doc); err != nil {
			return domain.Artifact{}, err
		}
		return domain.Artifact{
			ID:          snap.Ref.ID,
			MonasteryID: doc.MonasteryID,
			Name:        doc.Name,
			Category:    doc.Category,
			Description: doc.Description,
			Age:         doc.Age,
			ImageURL:    doc.ImageURL,
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		}, nil
	}
	return &ArtifactRepository{base: pfirestore.NewBaseRepository[domain.Artifact](provider, artifactsCollection, encoder, decoder)}, nil
}

// List fetches matching artifacts; free-text search is applied after decoding.
func (r *ArtifactRepository) List(ctx context.Context, filter domain.ArtifactFilter) ([]domain.Artifact, error) {
	if r == nil || r.base == nil {
		return nil, errors.New("artifact repository not initialised")
	}
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		if filter.MonasteryID != 0 {
			q = q.Where("monasteryId", "==", filter.MonasteryID)
		}
		if filter.Category != "" {
			q = q.Where("category", "==", filter.Category)
		}
		return q
	})
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Artifact, 0, len(docs))
	for _, doc := range docs {
		if filter.Matches(doc.Data) {
			matches = append(matches, doc.Data)
		}
	}
	return matches, nil
}

// FindByID loads an artifact by its document ID.
func (r *ArtifactRepository) FindByID(ctx context.Context, id string) (domain.Artifact, error) {
	if r == nil || r.base == nil {
		return domain.Artifact{}, errors.New("artifact repository not initialised")
	}
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.Artifact{}, err
	}
	return doc.Data, nil
}

// CountByMonastery counts artifacts attached to a monastery.
func (r *ArtifactRepository) CountByMonastery(ctx context.Context, monasteryID int) (int, error) {
	items, err := r.List(ctx, domain.ArtifactFilter{MonasteryID: monasteryID})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Categories lists distinct artifact categories.
func (r *ArtifactRepository) Categories(ctx context.Context) ([]string, error) {
	items, err := r.List(ctx, domain.ArtifactFilter{})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(items))
	for _, a := range items {
		values = append(values, a.Category)
	}
	return distinctSorted(values), nil
}

// RitualRepository persists ritual documentation.
type RitualRepository struct {
	base *pfirestore.BaseRepository[domain.Ritual]
}

// NewRitualRepository constructs a Firestore-backed ritual repository.
func NewRitualRepository(provider *pfirestore.Provider) (*RitualRepository, error) {
	if provider == nil {
		return nil, errors.New("ritual repository: firestore provider is required")
	}
	encoder := func(ctx context.Context, rt domain.Ritual) (any, error) {
		return ritualDocument{
			MonasteryID: rt.MonasteryID,
			Name:        rt.Name,
			Type:        rt.Type,
			Description: rt.Description,
			Timing:      rt.Timing,
			CreatedAt:   rt.CreatedAt,
			UpdatedAt:   rt.UpdatedAt,
		}, nil
	}
	decoder := func(ctx context.Context, snap *firestore.DocumentSnapshot) (domain.Ritual, error) {
		var doc ritualDocument
		if err := snap.DataTo(&doc); err != nil {
			return domain.Ritual{}, err
		}
		return domain.Ritual{
			ID:          snap.Ref.ID,
			MonasteryID: doc.MonasteryID,
			Name:        doc.Name,
			Type:        doc.Type,
			Description: doc.Description,
			Timing:      doc.Timing,
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		}, nil
	}
	return &RitualRepository{base: pfirestore.NewBaseRepository[domain.Ritual](provider, ritualsCollection, encoder, decoder)}, nil
}

// List fetches matching rituals; free-text search is applied after decoding.
func (r *RitualRepository) List(ctx context.Context, filter domain.RitualFilter) ([]domain.Ritual, error) {
	if r == nil || r.base == nil {
		return nil, errors.New("ritual repository not initialised")
	}
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		if filter.MonasteryID != 0 {
			q = q.Where("monasteryId", "==", filter.MonasteryID)
		}
		if filter.Type != "" {
			q = q.Where("type", "==", filter.Type)
		}
		return q
	})
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Ritual, 0, len(docs))
	for _, doc := range docs {
		if filter.Matches(doc.Data) {
			matches = append(matches, doc.Data)
		}
	}
	return matches, nil
}

// FindByID loads a ritual by its document ID.
func (r *RitualRepository) FindByID(ctx context.Context, id string) (domain.Ritual, error) {
	if r == nil || r.base == nil {
		return domain.Ritual{}, errors.New("ritual repository not initialised")
	}
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.Ritual{}, err
	}
	return doc.Data, nil
}

// CountByMonastery counts rituals attached to a monastery.
func (r *RitualRepository) CountByMonastery(ctx context.Context, monasteryID int) (int, error) {
	items, err := r.List(ctx, domain.RitualFilter{MonasteryID: monasteryID})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Types lists distinct ritual types.
func (r *RitualRepository) Types(ctx context.Context) ([]string, error) {
	items, err := r.List(ctx, domain.RitualFilter{})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(items))
	for _, rt := range items {
		values = append(values, rt.Type)
	}
	return distinctSorted(values), nil
}

// HistoricalRecordRepository persists archival records.
type HistoricalRecordRepository struct {
	base *pfirestore.BaseRepository[domain.HistoricalRecord]
}

// NewHistoricalRecordRepository constructs a Firestore-backed record repository.
func NewHistoricalRecordRepository(provider *pfirestore.Provider) (*HistoricalRecordRepository, error) {
	if provider == nil {
		return nil, errors.New("historical record repository: firestore provider is required")
	}
	encoder := func(ctx context.Context, rec domain.HistoricalRecord) (any, error) {
		return historicalRecordDocument{
			MonasteryID: rec.MonasteryID,
			Title:       rec.Title,
			Type:        rec.Type,
			Language:    rec.Language,
			Year:        rec.Year,
			Summary:     rec.Summary,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		}, nil
	}
	decoder := func(ctx context.Context, snap *firestore.DocumentSnapshot) (domain.HistoricalRecord, error) {
		var doc historicalRecordDocument
		if err := snap.DataTo(&doc); err != nil {
			return domain.HistoricalRecord{}, err
		}
		return domain.HistoricalRecord{
			ID:          snap.Ref.ID,
			MonasteryID: doc.MonasteryID,
			Title:       doc.Title,
			Type:        doc.Type,
			Language:    doc.Language,
			Year:        doc.Year,
			Summary:     doc.Summary,
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		}, nil
	}
	return &HistoricalRecordRepository{base: pfirestore.NewBaseRepository[domain.HistoricalRecord](provider, historicalRecordsCollection, encoder, decoder)}, nil
}

// List fetches matching records; free-text search is applied after decoding.
func (r *HistoricalRecordRepository) List(ctx context.Context, filter domain.HistoricalRecordFilter) ([]domain.HistoricalRecord, error) {
	if r == nil || r.base == nil {
		return nil, errors.New("historical record repository not initialised")
	}
	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		if filter.MonasteryID != 0 {
			q = q.Where("monasteryId", "==", filter.MonasteryID)
		}
		if filter.Type != "" {
			q = q.Where("type", "==", filter.Type)
		}
		if filter.Language != "" {
			q = q.Where("language", "==", filter.Language)
		}
		return q
	})
	if err != nil {
		return nil, err
	}
	matches := make([]domain.HistoricalRecord, 0, len(docs))
	for _, doc := range docs {
		if filter.Matches(doc.Data) {
			matches = append(matches, doc.Data)
		}
	}
	return matches, nil
}

// FindByID loads a record by its document ID.
func (r *HistoricalRecordRepository) FindByID(ctx context.Context, id string) (domain.HistoricalRecord, error) {
	if r == nil || r.base == nil {
		return domain.HistoricalRecord{}, errors.New("historical record repository not initialised")
	}
	doc, err := r.base.Get(ctx, id)
	if err != nil {
		return domain.HistoricalRecord{}, err
	}
	return doc.Data, nil
}

// CountByMonastery counts records attached to a monastery.
func (r *HistoricalRecordRepository) CountByMonastery(ctx context.Context, monasteryID int) (int, error) {
	items, err := r.List(ctx, domain.HistoricalRecordFilter{MonasteryID: monasteryID})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Types lists distinct record types.
func (r *HistoricalRecordRepository) Types(ctx context.Context) ([]string, error) {
	items, err := r.List(ctx, domain.HistoricalRecordFilter{})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(items))
	for _, rec := range items {
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
