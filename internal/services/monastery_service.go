package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/pagination"
	"github.com/monastery360/api/internal/repositories"
)

const (
	searchQueryMinRunes = 2
	// featuredLimit caps the featured list regardless of how many records
	// carry the flag.
	featuredLimit = 6
)

var (
	// ErrMonasteryNotFound indicates the requested monastery does not exist.
	ErrMonasteryNotFound = errors.New("monastery: not found")
	// ErrMonasterySlugTaken indicates another monastery already owns the slug.
	ErrMonasterySlugTaken = errors.New("monastery: slug already exists")
	// ErrSearchQueryTooShort indicates the search query is under two characters.
	ErrSearchQueryTooShort = errors.New("monastery: search query must be at least 2 characters")
)

// ValidationError reports one or more rejected input fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is an input validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// MonasteryServiceDeps bundles the dependencies for the monastery service.
type MonasteryServiceDeps struct {
	Monasteries repositories.MonasteryRepository
	Artifacts   repositories.ArtifactRepository
	Rituals     repositories.RitualRepository
	Records     repositories.HistoricalRecordRepository
	Clock       func() time.Time
}

type monasteryService struct {
	monasteries repositories.MonasteryRepository
	artifacts   repositories.ArtifactRepository
	rituals     repositories.RitualRepository
	records     repositories.HistoricalRecordRepository
	sanitizer   *bluemonday.Policy
	clock       func() time.Time
}

// NewMonasteryService wires dependencies into a MonasteryService.
func NewMonasteryService(deps MonasteryServiceDeps) (MonasteryService, error) {
	if deps.Monasteries == nil {
		return nil, errors.New("monastery service: monastery repository is required")
	}
	if deps.Artifacts == nil || deps.Rituals == nil || deps.Records == nil {
		return nil, errors.New("monastery service: documentation repositories are required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &monasteryService{
		monasteries: deps.Monasteries,
		artifacts:   deps.Artifacts,
		rituals:     deps.Rituals,
		records:     deps.Records,
		sanitizer:   bluemonday.StrictPolicy(),
		clock:       clock,
	}, nil
}

func (s *monasteryService) List(ctx context.Context, filter domain.MonasteryFilter, page pagination.Params) (MonasteryList, error) {
	matches, err := s.monasteries.List(ctx, filter)
	if err != nil {
		return MonasteryList{}, fmt.Errorf("list monasteries: %w", err)
	}
	window, _ := pagination.Apply(matches, page)
	return MonasteryList{Items: window, Total: len(matches)}, nil
}

func (s *monasteryService) Get(ctx context.Context, id int) (MonasteryDetail, error) {
	m, err := s.monasteries.FindByID(ctx, id)
	if err != nil {
		return MonasteryDetail{}, translateMonasteryErr(err)
	}
	counts, err := s.countDocumentation(ctx, m.ID)
	if err != nil {
		return MonasteryDetail{}, err
	}
	return MonasteryDetail{Monastery: m, Counts: counts}, nil
}

func (s *monasteryService) GetBySlug(ctx context.Context, slug string) (MonasteryDetail, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return MonasteryDetail{}, ErrMonasteryNotFound
	}
	m, err := s.monasteries.FindBySlug(ctx, slug)
	if err != nil {
		return MonasteryDetail{}, translateMonasteryErr(err)
	}
	counts, err := s.countDocumentation(ctx, m.ID)
	if err != nil {
		return MonasteryDetail{}, err
	}
	return MonasteryDetail{Monastery: m, Counts: counts}, nil
}

func (s *monasteryService) Featured(ctx context.Context) ([]domain.Monastery, error) {
	featured := true
	matches, err := s.monasteries.List(ctx, domain.MonasteryFilter{Featured: &featured})
	if err != nil {
		return nil, fmt.Errorf("list featured monasteries: %w", err)
	}
	if len(matches) > featuredLimit {
		matches = matches[:featuredLimit]
	}
	return matches, nil
}

func (s *monasteryService) Search(ctx context.Context, query string, limit int) ([]domain.Monastery, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < searchQueryMinRunes {
		return nil, ErrSearchQueryTooShort
	}
	matches, err := s.monasteries.List(ctx, domain.MonasteryFilter{Search: query})
	if err != nil {
		return nil, fmt.Errorf("search monasteries: %w", err)
	}
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *monasteryService) Create(ctx context.Context, input MonasteryInput) (domain.Monastery, error) {
	m, err := s.monasteryFromInput(domain.Monastery{Featured: false}, input)
	if err != nil {
		return domain.Monastery{}, err
	}

	created, err := s.monasteries.Insert(ctx, m)
	if err != nil {
		return domain.Monastery{}, translateMonasteryErr(err)
	}
	return created, nil
}

func (s *monasteryService) Update(ctx context.Context, id int, input MonasteryInput) (domain.Monastery, error) {
	existing, err := s.monasteries.FindByID(ctx, id)
	if err != nil {
		return domain.Monastery{}, translateMonasteryErr(err)
	}

	m, err := s.monasteryFromInput(existing, input)
	if err != nil {
		return domain.Monastery{}, err
	}
	m.ID = existing.ID
	if !strings.EqualFold(m.Name, existing.Name) {
		// Renames re-derive the slug so URLs stay aligned with names.
		m.Slug = ""
	}

	updated, err := s.monasteries.Update(ctx, m)
	if err != nil {
		return domain.Monastery{}, translateMonasteryErr(err)
	}
	return updated, nil
}

func (s *monasteryService) Delete(ctx context.Context, id int) error {
	if err := s.monasteries.Delete(ctx, id); err != nil {
		return translateMonasteryErr(err)
	}
	return nil
}

func (s *monasteryService) countDocumentation(ctx context.Context, monasteryID int) (DocumentationCounts, error) {
	artifacts, err := s.artifacts.CountByMonastery(ctx, monasteryID)
	if err != nil {
		return DocumentationCounts{}, fmt.Errorf("count artifacts: %w", err)
	}
	rituals, err := s.rituals.CountByMonastery(ctx, monasteryID)
	if err != nil {
		return DocumentationCounts{}, fmt.Errorf("count rituals: %w", err)
	}
	records, err := s.records.CountByMonastery(ctx, monasteryID)
	if err != nil {
		return DocumentationCounts{}, fmt.Errorf("count historical records: %w", err)
	}
	return DocumentationCounts{Artifacts: artifacts, Rituals: rituals, HistoricalRecords: records}, nil
}

// monasteryFromInput validates and sanitises the input onto a base record.
func (s *monasteryService) monasteryFromInput(base domain.Monastery, input MonasteryInput) (domain.Monastery, error) {
	fields := map[string]string{}

	name := s.clean(input.Name)
	if name == "" {
		fields["name"] = "name is required"
	}

	sect, ok := canonicalSect(input.Sect)
	if !ok {
		fields["sect"] = "sect must be one of Nyingma, Kagyu, Sakya, Gelug, Bon"
	}

	location := s.clean(input.Location)
	if location == "" {
		fields["location"] = "location is required"
	}
	district := s.clean(input.District)
	if district == "" {
		fields["district"] = "district is required"
	}

	// Established stays a string so approximate values like "1700s" pass;
	// purely numeric years still get a sanity range check.
	established := s.clean(input.Established)
	if established != "" {
		if year, err := strconv.Atoi(established); err == nil {
			currentYear := s.clock().UTC().Year()
			if year < 1000 || year > currentYear {
				fields["established"] = fmt.Sprintf("established must be between 1000 and %d", currentYear)
			}
		}
	}

	coords := base.Coordinates
	if (input.Latitude == nil) != (input.Longitude == nil) {
		fields["coordinates"] = "latitude and longitude must be provided together"
	} else if input.Latitude != nil {
		lat, lng := *input.Latitude, *input.Longitude
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			fields["coordinates"] = "coordinates are out of range"
		} else {
			coords = domain.Coordinates{Lat: lat, Lng: lng}
		}
	}

	// The festivals list may be empty, but every entry supplied must carry
	// a name, date, and description.
	var festivals []domain.Festival
	if input.Festivals != nil {
		festivals = make([]domain.Festival, 0, len(input.Festivals))
		for i, f := range input.Festivals {
			entry := domain.Festival{
				Name:        s.clean(f.Name),
				Date:        s.clean(f.Date),
				Description: s.clean(f.Description),
			}
			if entry.Name == "" || entry.Date == "" || entry.Description == "" {
				fields["festivals"] = fmt.Sprintf("festival entry %d requires name, date, and description", i+1)
				break
			}
			festivals = append(festivals, entry)
		}
	}

	if len(fields) > 0 {
		return domain.Monastery{}, &ValidationError{Fields: fields}
	}

	m := base
	m.Name = name
	m.Sect = sect
	m.Location = location
	m.District = district
	if established != "" {
		m.Established = established
	}
	m.Description = s.clean(input.Description)
	m.History = s.clean(input.History)
	m.VisitingHours = s.clean(input.VisitingHours)
	m.EntryFee = s.clean(input.EntryFee)
	m.Coordinates = coords
	if input.PrayerHall != nil {
		hall := domain.PrayerHall{
			Capacity:   input.PrayerHall.Capacity,
			Dimensions: s.clean(input.PrayerHall.Dimensions),
		}
		for _, feature := range input.PrayerHall.Features {
			if cleaned := s.clean(feature); cleaned != "" {
				hall.Features = append(hall.Features, cleaned)
			}
		}
		m.PrayerHall = hall
	}
	if input.Images != nil {
		images := make([]string, 0, len(input.Images))
		for _, url := range input.Images {
			if url = strings.TrimSpace(url); url != "" {
				images = append(images, url)
			}
		}
		m.Images = images
	}
	if input.SpecialFeatures != nil {
		features := make([]string, 0, len(input.SpecialFeatures))
		for _, feature := range input.SpecialFeatures {
			if cleaned := s.clean(feature); cleaned != "" {
				features = append(features, cleaned)
			}
		}
		m.SpecialFeatures = features
	}
	if input.Featured != nil {
		m.Featured = *input.Featured
	}
	if festivals != nil {
		m.Festivals = festivals
	}
	if input.AudioGuide != nil {
		guide := make(map[string]string, len(input.AudioGuide))
		for lang, text := range input.AudioGuide {
			lang = strings.ToLower(strings.TrimSpace(lang))
			if lang == "" {
				continue
			}
			guide[lang] = s.clean(text)
		}
		m.AudioGuide = guide
	}
	return m, nil
}

// clean strips markup from free-text input before it is persisted.
func (s *monasteryService) clean(value string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(value))
}

func canonicalSect(raw string) (domain.Sect, bool) {
	raw = strings.TrimSpace(raw)
	for _, sect := range domain.Sects() {
		if strings.EqualFold(raw, string(sect)) {
			return sect, true
		}
	}
	return "", false
}

func translateMonasteryErr(err error) error {
	switch {
	case repositories.IsNotFound(err):
		return ErrMonasteryNotFound
	case repositories.IsConflict(err):
		return ErrMonasterySlugTaken
	default:
		return err
	}
}
