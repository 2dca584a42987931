package mappoint

import "context"

type Kind string

const (
	KindSubstation Kind = "substation"
	KindCustomer   Kind = "customer"
)

// Point is a single marker shown on the status map.
type Point struct {
	ID        uint
	Kind      Kind
	Label     string
	Status    string
	Latitude  float64
	Longitude float64
}

// Bounds is a lat/lon bounding box. A zero Bounds means no constraint.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (b Bounds) IsZero() bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLon == 0 && b.MaxLon == 0
}

func (b Bounds) Contains(lat, lon float64) bool {
	if b.IsZero() {
		return true
	}
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

type FindParams struct {
	Bounds Bounds
	Kind   Kind
	Status string
	Limit  int
}

type Repository interface {
	Find(ctx context.Context, params FindParams) ([]Point, error)
}
