package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/pagination"
	"github.com/monastery360/api/internal/repositories"
)

var (
	// ErrArtifactNotFound indicates the requested artifact does not exist.
	ErrArtifactNotFound = errors.New("documentation: artifact not found")
	// ErrRitualNotFound indicates the requested ritual does not exist.
	ErrRitualNotFound = errors.New("documentation: ritual not found")
	// ErrHistoricalRecordNotFound indicates the requested record does not exist.
	ErrHistoricalRecordNotFound = errors.New("documentation: historical record not found")
)

// DocumentationServiceDeps bundles the dependencies for the documentation service.
type DocumentationServiceDeps struct {
	Monasteries repositories.MonasteryRepository
	Artifacts   repositories.ArtifactRepository
	Rituals     repositories.RitualRepository
	Records     repositories.HistoricalRecordRepository
}

type documentationService struct {
	monasteries repositories.MonasteryRepository
	artifacts   repositories.ArtifactRepository
	rituals     repositories.RitualRepository
	records     repositories.HistoricalRecordRepository
}

// NewDocumentationService wires dependencies into a DocumentationService.
func NewDocumentationService(deps DocumentationServiceDeps) (DocumentationService, error) {
	if deps.Monasteries == nil {
		return nil, errors.New("documentation service: monastery repository is required")
	}
	if deps.Artifacts == nil || deps.Rituals == nil || deps.Records == nil {
		return nil, errors.New("documentation service: documentation repositories are required")
	}
	return &documentationService{
		monasteries: deps.Monasteries,
		artifacts:   deps.Artifacts,
		rituals:     deps.Rituals,
		records:     deps.Records,
	}, nil
}

func (s *documentationService) ListArtifacts(ctx context.Context, filter domain.ArtifactFilter, page pagination.Params) ([]domain.Artifact, int, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)
	matches, err := s.artifacts.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list artifacts: %w", err)
	}
	window, _ := pagination.Apply(matches, page)
	return window, len(matches), nil
}

func (s *documentationService) GetArtifact(ctx context.Context, id string) (domain.Artifact, error) {
	a, err := s.artifacts.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			return domain.Artifact{}, ErrArtifactNotFound
		}
		return domain.Artifact{}, fmt.Errorf("find artifact: %w", err)
	}
	return a, nil
}

func (s *documentationService) ArtifactCategories(ctx context.Context) ([]string, error) {
	return s.artifacts.Categories(ctx)
}

func (s *documentationService) ListRituals(ctx context.Context, filter domain.RitualFilter, page pagination.Params) ([]domain.Ritual, int, error) {
	filter.Type = strings.TrimSpace(filter.Type)
	filter.Search = strings.TrimSpace(filter.Search)
	matches, err := s.rituals.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list rituals: %w", err)
	}
	window, _ := pagination.Apply(matches, page)
	return window, len(matches), nil
}

func (s *documentationService) GetRitual(ctx context.Context, id string) (domain.Ritual, error) {
	r, err := s.rituals.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			return domain.Ritual{}, ErrRitualNotFound
		}
		return domain.Ritual{}, fmt.Errorf("find ritual: %w", err)
	}
	return r, nil
}

func (s *documentationService) RitualTypes(ctx context.Context) ([]string, error) {
	return s.rituals.Types(ctx)
}

func (s *documentationService) ListHistoricalRecords(ctx context.Context, filter domain.HistoricalRecordFilter, page pagination.Params) ([]domain.HistoricalRecord, int, error) {
	filter.Type = strings.TrimSpace(filter.Type)
	filter.Language = strings.TrimSpace(filter.Language)
	filter.Search = strings.TrimSpace(filter.Search)
	matches, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list historical records: %w", err)
	}
	window, _ := pagination.Apply(matches, page)
	return window, len(matches), nil
}

func (s *documentationService) GetHistoricalRecord(ctx context.Context, id string) (domain.HistoricalRecord, error) {
	rec, err := s.records.FindByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			return domain.HistoricalRecord{}, ErrHistoricalRecordNotFound
		}
		return domain.HistoricalRecord{}, fmt.Errorf("find historical record: %w", err)
	}
	return rec, nil
}

func (s *documentationService) HistoricalRecordTypes(ctx context.Context) ([]string, error) {
	return s.records.Types(ctx)
}

// ForMonastery returns the complete documentation bundle for a monastery.
// The monastery must exist; documentation may legitimately be empty.
func (s *documentationService) ForMonastery(ctx context.Context, monasteryID int) (MonasteryDocumentation, error) {
	if _, err := s.monasteries.FindByID(ctx, monasteryID); err != nil {
		if repositories.IsNotFound(err) {
			return MonasteryDocumentation{}, ErrMonasteryNotFound
		}
		return MonasteryDocumentation{}, fmt.Errorf("find monastery: %w", err)
	}

	artifacts, err := s.artifacts.List(ctx, domain.ArtifactFilter{MonasteryID: monasteryID})
	if err != nil {
		return MonasteryDocumentation{}, fmt.Errorf("list artifacts: %w", err)
	}
	rituals, err := s.rituals.List(ctx, domain.RitualFilter{MonasteryID: monasteryID})
	if err != nil {
		return MonasteryDocumentation{}, fmt.Errorf("list rituals: %w", err)
	}
	records, err := s.records.List(ctx, domain.HistoricalRecordFilter{MonasteryID: monasteryID})
	if err != nil {
		return MonasteryDocumentation{}, fmt.Errorf("list historical records: %w", err)
	}
	return MonasteryDocumentation{Artifacts: artifacts, Rituals: rituals, HistoricalRecords: records}, nil
}
