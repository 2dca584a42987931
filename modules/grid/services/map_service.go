package services

import (
	"context"

	"github.com/blumenos/gridadmin/modules/grid/domain/entities/mappoint"
)

// DefaultMarkerColor is used when a point carries a status the lookup does
// not know about.
const DefaultMarkerColor = "#6b7280"

// statusColors maps a point status to the marker color shown on the map.
var statusColors = map[string]string{
	"active":         "#22c55e",
	"inactive":       "#9ca3af",
	"decommissioned": "#ef4444",
	"disconnected":   "#f97316",
	"delinquent":     "#eab308",
}

// MarkerColor resolves the map color for a status with a fixed fallback.
func MarkerColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return DefaultMarkerColor
}

// Marker is a map point enriched with its display color.
type Marker struct {
	mappoint.Point
	Color string
}

type MapService struct {
	repo       mappoint.Repository
	maxMarkers int
}

func NewMapService(repo mappoint.Repository, maxMarkers int) *MapService {
	return &MapService{
		repo:       repo,
		maxMarkers: maxMarkers,
	}
}

// Markers returns at most the configured marker cap, colored by status.
func (s *MapService) Markers(ctx context.Context, params mappoint.FindParams) ([]Marker, error) {
	if params.Limit <= 0 || params.Limit > s.maxMarkers {
		params.Limit = s.maxMarkers
	}
	points, err := s.repo.Find(ctx, params)
	if err != nil {
		return nil, err
	}
	markers := make([]Marker, 0, len(points))
	for _, p := range points {
		markers = append(markers, Marker{Point: p, Color: MarkerColor(p.Status)})
	}
	return markers, nil
}
