package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/modules/grid/domain/entities/mappoint"
	"github.com/blumenos/gridadmin/modules/grid/services"
)

type staticPointRepo struct {
	points []mappoint.Point
}

func (r *staticPointRepo) Find(_ context.Context, params mappoint.FindParams) ([]mappoint.Point, error) {
	out := make([]mappoint.Point, 0, len(r.points))
	for _, p := range r.points {
		if params.Status != "" && p.Status != params.Status {
			continue
		}
		if !params.Bounds.Contains(p.Latitude, p.Longitude) {
			continue
		}
		out = append(out, p)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out, nil
}

func TestMarkerColor_KnownAndFallback(t *testing.T) {
	assert.Equal(t, "#22c55e", services.MarkerColor("active"))
	assert.Equal(t, "#ef4444", services.MarkerColor("decommissioned"))
	assert.Equal(t, services.DefaultMarkerColor, services.MarkerColor("something-new"))
}

func TestMapService_CapsMarkers(t *testing.T) {
	repo := &staticPointRepo{}
	for i := 0; i < 10; i++ {
		repo.points = append(repo.points, mappoint.Point{ID: uint(i + 1), Status: "active"})
	}
	svc := services.NewMapService(repo, 3)

	markers, err := svc.Markers(context.Background(), mappoint.FindParams{})
	require.NoError(t, err)
	assert.Len(t, markers, 3)
}

func TestMapService_ColorsByStatus(t *testing.T) {
	repo := &staticPointRepo{points: []mappoint.Point{
		{ID: 1, Status: "active"},
		{ID: 2, Status: "disconnected"},
	}}
	svc := services.NewMapService(repo, 100)

	markers, err := svc.Markers(context.Background(), mappoint.FindParams{})
	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, "#22c55e", markers[0].Color)
	assert.Equal(t, "#f97316", markers[1].Color)
}

func TestBounds_Contains(t *testing.T) {
	b := mappoint.Bounds{MinLat: 6, MaxLat: 7, MinLon: 3, MaxLon: 4}
	assert.True(t, b.Contains(6.5, 3.5))
	assert.False(t, b.Contains(8, 3.5))
	assert.True(t, mappoint.Bounds{}.Contains(89, 179))
}
