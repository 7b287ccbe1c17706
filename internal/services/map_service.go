package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/textutil"
	"github.com/monastery360/api/internal/repositories"
)

const (
	// focusZoom is the zoom level used when centring on one monastery.
	focusZoom = 15
	// clusterRadiusPx groups markers within this pixel distance at a zoom level.
	clusterRadiusPx = 50.0
	// popupDescriptionRunes truncates popup descriptions.
	popupDescriptionRunes = 100
	// tileSize is the Web Mercator tile edge in pixels.
	tileSize = 256.0
)

// sectPalette keys marker colors by sect.
var sectPalette = map[domain.Sect]string{
	domain.SectNyingma: "#8B4513",
	domain.SectKagyu:   "#D2691E",
	domain.SectSakya:   "#CD853F",
	domain.SectGelug:   "#A0522D",
	domain.SectBon:     "#D2B48C",
}

// ClusterTier buckets clusters by how many markers they absorb.
type ClusterTier string

const (
	// ClusterSmall covers up to five markers.
	ClusterSmall ClusterTier = "small"
	// ClusterMedium covers six to ten markers.
	ClusterMedium ClusterTier = "medium"
	// ClusterLarge covers more than ten markers.
	ClusterLarge ClusterTier = "large"
)

// MapMarker is one monastery rendered on the map.
type MapMarker struct {
	MonasteryID int
	Name        string
	Coordinates domain.Coordinates
	Color       string
	Label       string
	Sect        domain.Sect
}

// MapCluster groups nearby markers at a zoom level.
type MapCluster struct {
	Coordinates domain.Coordinates
	Count       int
	Tier        ClusterTier
	MarkerIDs   []int
}

// MapPopup is the info card opened when a marker is selected.
type MapPopup struct {
	Name        string
	Sect        domain.Sect
	Description string
	District    string
	Established string
}

// MapFocus centres the map on one monastery.
type MapFocus struct {
	Center domain.Coordinates
	Zoom   int
	Popup  MapPopup
}

// MapServiceDeps bundles the dependencies for the map service.
type MapServiceDeps struct {
	Monasteries repositories.MonasteryRepository
}

type mapService struct {
	monasteries repositories.MonasteryRepository
}

// NewMapService wires dependencies into a MapService.
func NewMapService(deps MapServiceDeps) (MapService, error) {
	if deps.Monasteries == nil {
		return nil, errors.New("map service: monastery repository is required")
	}
	return &mapService{monasteries: deps.Monasteries}, nil
}

// Markers builds one marker per matching monastery. Every call rebuilds the
// full set from the current record list.
func (s *mapService) Markers(ctx context.Context, filter domain.MonasteryFilter) ([]MapMarker, error) {
	records, err := s.monasteries.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("map: list monasteries: %w", err)
	}

	markers := make([]MapMarker, 0, len(records))
	for _, m := range records {
		markers = append(markers, markerFor(m))
	}
	return markers, nil
}

// Clusters groups the current markers by pixel proximity at the given zoom.
// Greedy single-pass grouping in record order keeps output deterministic.
func (s *mapService) Clusters(ctx context.Context, zoom int, filter domain.MonasteryFilter) ([]MapCluster, error) {
	if zoom < 0 {
		zoom = 0
	}
	markers, err := s.Markers(ctx, filter)
	if err != nil {
		return nil, err
	}

	type seed struct {
		x, y    float64
		members []MapMarker
	}
	var seeds []*seed
	for _, marker := range markers {
		x, y := project(marker.Coordinates, zoom)
		placed := false
		for _, sd := range seeds {
			if math.Hypot(sd.x-x, sd.y-y) <= clusterRadiusPx {
				sd.members = append(sd.members, marker)
				placed = true
				break
			}
		}
		if !placed {
			seeds = append(seeds, &seed{x: x, y: y, members: []MapMarker{marker}})
		}
	}

	clusters := make([]MapCluster, 0, len(seeds))
	for _, sd := range seeds {
		cluster := MapCluster{
			Count:     len(sd.members),
			Tier:      tierFor(len(sd.members)),
			MarkerIDs: make([]int, 0, len(sd.members)),
		}
		var latSum, lngSum float64
		for _, member := range sd.members {
			cluster.MarkerIDs = append(cluster.MarkerIDs, member.MonasteryID)
			latSum += member.Coordinates.Lat
			lngSum += member.Coordinates.Lng
		}
		cluster.Coordinates = domain.Coordinates{
			Lat: latSum / float64(len(sd.members)),
			Lng: lngSum / float64(len(sd.members)),
		}
		clusters = append(clusters, cluster)
	}
	return clusters, nil
}

// Focus centres on one monastery at the detail zoom and builds its popup.
func (s *mapService) Focus(ctx context.Context, monasteryID int) (MapFocus, error) {
	m, err := s.monasteries.FindByID(ctx, monasteryID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return MapFocus{}, ErrMonasteryNotFound
		}
		return MapFocus{}, fmt.Errorf("map: find monastery: %w", err)
	}

	return MapFocus{
		Center: m.Coordinates,
		Zoom:   focusZoom,
		Popup: MapPopup{
			Name:        m.Name,
			Sect:        m.Sect,
			Description: textutil.Truncate(m.Description, popupDescriptionRunes),
			District:    m.District,
			Established: m.Established,
		},
	}, nil
}

func markerFor(m domain.Monastery) MapMarker {
	color, ok := sectPalette[m.Sect]
	if !ok {
		color = sectPalette[domain.SectNyingma]
	}
	label := ""
	if name := string(m.Sect); name != "" {
		label = strings.ToUpper(name[:1])
	}
	return MapMarker{
		MonasteryID: m.ID,
		Name:        m.Name,
		Coordinates: m.Coordinates,
		Color:       color,
		Label:       label,
		Sect:        m.Sect,
	}
}

func tierFor(count int) ClusterTier {
	switch {
	case count <= 5:
		return ClusterSmall
	case count <= 10:
		return ClusterMedium
	default:
		return ClusterLarge
	}
}

// project maps WGS84 coordinates to Web Mercator pixel space at a zoom level.
func project(c domain.Coordinates, zoom int) (float64, float64) {
	scale := tileSize * math.Exp2(float64(zoom))
	x := (c.Lng + 180) / 360 * scale

	latRad := c.Lat * math.Pi / 180
	y := (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * scale
	return x, y
}
