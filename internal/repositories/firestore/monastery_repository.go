package firestore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/monastery360/api/internal/domain"
	pfirestore "github.com/monastery360/api/internal/platform/firestore"
	"github.com/monastery360/api/internal/platform/textutil"
)

const (
	monasteriesCollection = "monasteries"
	countersCollection    = "counters"
	monasteryCounterDoc   = "monasteries"
)

type prayerHallDocument struct {
	Capacity   int      `firestore:"capacity"`
	Features   []string `firestore:"features,omitempty"`
	Dimensions string   `firestore:"dimensions,omitempty"`
}

type festivalDocument struct {
	Name        string `firestore:"name"`
	Date        string `firestore:"date"`
	Description string `firestore:"description"`
}

type monasteryDocument struct {
	ID              int                `firestore:"id"`
	Slug            string             `firestore:"slug"`
	Name            string             `firestore:"name"`
	Sect            string             `firestore:"sect"`
	Location        string             `firestore:"location"`
	District        string             `firestore:"district"`
	Established     string             `firestore:"established"`
	Description     string             `firestore:"description"`
	History         string             `firestore:"history,omitempty"`
	VisitingHours   string             `firestore:"visitingHours,omitempty"`
	EntryFee        string             `firestore:"entryFee,omitempty"`
	Latitude        float64            `firestore:"latitude"`
	Longitude       float64            `firestore:"longitude"`
	PrayerHall      prayerHallDocument `firestore:"prayerHall"`
	Images          []string           `firestore:"images,omitempty"`
	SpecialFeatures []string           `firestore:"specialFeatures,omitempty"`
	Featured        bool               `firestore:"featured"`
	Festivals       []festivalDocument `firestore:"festivals,omitempty"`
	AudioGuide      map[string]string  `firestore:"audioGuide,omitempty"`
	CreatedAt       time.Time          `firestore:"createdAt"`
	UpdatedAt       time.Time          `firestore:"updatedAt"`
}

func encodeMonasteryDocument(m domain.Monastery) monasteryDocument {
	festivals := make([]festivalDocument, 0, len(m.Festivals))
	for _, f := range m.Festivals {
		festivals = append(festivals, festivalDocument{Name: f.Name, Date: f.Date, Description: f.Description})
	}
	return monasteryDocument{
		ID:            m.ID,
		Slug:          m.Slug,
		Name:          m.Name,
		Sect:          string(m.Sect),
		Location:      m.Location,
		District:      m.District,
		Established:   m.Established,
		Description:   m.Description,
		History:       m.History,
		VisitingHours: m.VisitingHours,
		EntryFee:      m.EntryFee,
		Latitude:      m.Coordinates.Lat,
		Longitude:     m.Coordinates.Lng,
		PrayerHall: prayerHallDocument{
			Capacity:   m.PrayerHall.Capacity,
			Features:   m.PrayerHall.Features,
			Dimensions: m.PrayerHall.Dimensions,
		},
		Images:          m.Images,
		SpecialFeatures: m.SpecialFeatures,
		Featured:        m.Featured,
		Festivals:       festivals,
		AudioGuide:      m.AudioGuide,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func decodeMonasteryDocument(doc monasteryDocument) domain.Monastery {
	festivals := make([]domain.Festival, 0, len(doc.Festivals))
	for _, f := range doc.Festivals {
		festivals = append(festivals, domain.Festival{Name: f.Name, Date: f.Date, Description: f.Description})
	}
	return domain.Monastery{
		ID:            doc.ID,
		Slug:          doc.Slug,
		Name:          doc.Name,
		Sect:          domain.Sect(doc.Sect),
		Location:      doc.Location,
		District:      doc.District,
		Established:   doc.Established,
		Description:   doc.Description,
		History:       doc.History,
		VisitingHours: doc.VisitingHours,
		EntryFee:      doc.EntryFee,
		Coordinates:   domain.Coordinates{Lat: doc.Latitude, Lng: doc.Longitude},
		PrayerHall: domain.PrayerHall{
			Capacity:   doc.PrayerHall.Capacity,
			Features:   doc.PrayerHall.Features,
			Dimensions: doc.PrayerHall.Dimensions,
		},
		Images:          doc.Images,
		SpecialFeatures: doc.SpecialFeatures,
		Featured:        doc.Featured,
		Festivals:       festivals,
		AudioGuide:      doc.AudioGuide,
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
}

// MonasteryRepository persists heritage records in the monasteries collection.
// Document IDs mirror the numeric monastery ID; new IDs come from a counter
// document advanced inside a transaction.
type MonasteryRepository struct {
	provider *pfirestore.Provider
	base     *pfirestore.BaseRepository[domain.Monastery]
}

// NewMonasteryRepository constructs a Firestore-backed monastery repository.
func NewMonasteryRepository(provider *pfirestore.Provider) (*MonasteryRepository, error) {
	if provider == nil {
		return nil, errors.New("monastery repository: firestore provider is required")
	}

	encoder := func(ctx context.Context, value domain.Monastery) (any, error) {
		return encodeMonasteryDocument(value), nil
	}
	decoder := func(ctx context.Context, snap *firestore.DocumentSnapshot) (domain.Monastery, error) {
		var doc monasteryDocument
		if err := snap.DataTo(&doc); err != nil {
			return domain.Monastery{}, err
		}
		if doc.CreatedAt.IsZero() {
			doc.CreatedAt = snap.CreateTime
		}
		if doc.UpdatedAt.IsZero() {
			doc.UpdatedAt = snap.UpdateTime
		}
		return decodeMonasteryDocument(doc), nil
	}

	base := pfirestore.NewBaseRepository[domain.Monastery](provider, monasteriesCollection, encoder, decoder)
	return &MonasteryRepository{provider: provider, base: base}, nil
}

// List fetches matching records ordered by ID. Equality filters run
// server-side; the free-text search is applied after decoding because
// Firestore has no substring operator.
func (r *MonasteryRepository) List(ctx context.Context, filter domain.MonasteryFilter) ([]domain.Monastery, error) {
	if r == nil || r.base == nil {
		return nil, errors.New("monastery repository not initialised")
	}

	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		if sect := strings.TrimSpace(filter.Sect); sect != "" {
			q = q.Where("sect", "==", canonicalSect(sect))
		}
		if district := strings.TrimSpace(filter.District); district != "" {
			q = q.Where("district", "==", district)
		}
		if filter.Featured != nil {
			q = q.Where("featured", "==", *filter.Featured)
		}
		return q.OrderBy("id", firestore.Asc)
	})
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Monastery, 0, len(docs))
	for _, doc := range docs {
		if filter.Matches(doc.Data) {
			matches = append(matches, doc.Data)
		}
	}
	return matches, nil
}

// FindByID loads a record by its numeric ID.
func (r *MonasteryRepository) FindByID(ctx context.Context, id int) (domain.Monastery, error) {
	if r == nil || r.base == nil {
		return domain.Monastery{}, errors.New("monastery repository not initialised")
	}
	doc, err := r.base.Get(ctx, strconv.Itoa(id))
	if err != nil {
		return domain.Monastery{}, err
	}
	return doc.Data, nil
}

// FindBySlug resolves a record by its URL slug.
func (r *MonasteryRepository) FindBySlug(ctx context.Context, slug string) (domain.Monastery, error) {
	if r == nil || r.base == nil {
		return domain.Monastery{}, errors.New("monastery repository not initialised")
	}
	slug = strings.ToLower(strings.TrimSpace(slug))

	docs, err := r.base.Query(ctx, func(q firestore.Query) firestore.Query {
		return q.Where("slug", "==", slug).Limit(1)
	})
	if err != nil {
		return domain.Monastery{}, err
	}
	if len(docs) == 0 {
		return domain.Monastery{}, pfirestore.NotFound("monasteries.find_slug", fmt.Sprintf("monastery %q not found", slug))
	}
	return docs[0].Data, nil
}

// Insert assigns the next numeric ID from the counter document and creates
// the record in the same transaction.
func (r *MonasteryRepository) Insert(ctx context.Context, m domain.Monastery) (domain.Monastery, error) {
	if r == nil || r.provider == nil {
		return domain.Monastery{}, errors.New("monastery repository not initialised")
	}

	if m.Slug == "" {
		m.Slug = textutil.Slugify(m.Name)
	}
	if existing, err := r.FindBySlug(ctx, m.Slug); err == nil && existing.ID != 0 {
		return domain.Monastery{}, pfirestore.Conflict("monasteries.insert", fmt.Sprintf("slug %q already exists", m.Slug))
	}

	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	client, err := r.provider.Client(ctx)
	if err != nil {
		return domain.Monastery{}, err
	}

	counterRef := client.Collection(countersCollection).Doc(monasteryCounterDoc)
	err = r.provider.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		next := 1
		snap, err := tx.Get(counterRef)
		if err == nil {
			value, err := snap.DataAt("value")
			if err != nil {
				return err
			}
			if current, ok := value.(int64); ok {
				next = int(current) + 1
			}
		}

		m.ID = next
		docRef := client.Collection(monasteriesCollection).Doc(strconv.Itoa(next))
		if err := tx.Create(docRef, encodeMonasteryDocument(m)); err != nil {
			return err
		}
		return tx.Set(counterRef, map[string]any{"value": int64(next)})
	})
	if err != nil {
		return domain.Monastery{}, pfirestore.WrapError("monasteries.insert", err)
	}
	return m, nil
}

// Update replaces an existing record, preserving its creation time.
func (r *MonasteryRepository) Update(ctx context.Context, m domain.Monastery) (domain.Monastery, error) {
	if r == nil || r.base == nil {
		return domain.Monastery{}, errors.New("monastery repository not initialised")
	}

	existing, err := r.FindByID(ctx, m.ID)
	if err != nil {
		return domain.Monastery{}, err
	}
	if m.Slug == "" {
		m.Slug = textutil.Slugify(m.Name)
	}
	if m.Slug != existing.Slug {
		if other, err := r.FindBySlug(ctx, m.Slug); err == nil && other.ID != m.ID {
			return domain.Monastery{}, pfirestore.Conflict("monasteries.update", fmt.Sprintf("slug %q already exists", m.Slug))
		}
	}
	m.CreatedAt = existing.CreatedAt
	m.UpdatedAt = time.Now().UTC()

	if _, err := r.base.Set(ctx, strconv.Itoa(m.ID), m); err != nil {
		return domain.Monastery{}, err
	}
	return m, nil
}

// Delete removes a record by ID.
func (r *MonasteryRepository) Delete(ctx context.Context, id int) error {
	if r == nil || r.base == nil {
		return errors.New("monastery repository not initialised")
	}
	docRef, err := r.base.DocumentRef(ctx, strconv.Itoa(id))
	if err != nil {
		return err
	}
	// Existence check first so deletes of unknown IDs surface as not-found.
	if _, err := r.base.Get(ctx, strconv.Itoa(id)); err != nil {
		return err
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return pfirestore.WrapError("monasteries.delete", err)
	}
	return nil
}

func canonicalSect(value string) string {
	for _, sect := range domain.Sects() {
		if strings.EqualFold(value, string(sect)) {
			return string(sect)
		}
	}
	return value
}
