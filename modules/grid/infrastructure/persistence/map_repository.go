package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/grid/domain/entities/mappoint"
	"github.com/blumenos/gridadmin/pkg/composables"
)

// MapRepository reads marker points for the status map. Substations come from
// this module's table, customer points from the billing customers table that
// carries geo coordinates.
type MapRepository struct{}

func NewMapRepository() *MapRepository {
	return &MapRepository{}
}

const (
	substationPointsQuery = `
		SELECT id, 'substation', new_code, status, latitude, longitude
		FROM substations`
	customerPointsQuery = `
		SELECT id, 'customer', account_number, status, latitude, longitude
		FROM customers
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL`
)

func (r *MapRepository) Find(ctx context.Context, params mappoint.FindParams) ([]mappoint.Point, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	queries := []string{}
	switch params.Kind {
	case mappoint.KindSubstation:
		queries = append(queries, substationPointsQuery+" WHERE 1 = 1")
	case mappoint.KindCustomer:
		queries = append(queries, customerPointsQuery)
	default:
		queries = append(queries, substationPointsQuery+" WHERE 1 = 1", customerPointsQuery)
	}
	points := make([]mappoint.Point, 0)
	for _, base := range queries {
		args := []interface{}{}
		query := base
		if params.Status != "" {
			args = append(args, params.Status)
			query += fmt.Sprintf(" AND status = $%d", len(args))
		}
		if !params.Bounds.IsZero() {
			args = append(args, params.Bounds.MinLat, params.Bounds.MaxLat, params.Bounds.MinLon, params.Bounds.MaxLon)
			n := len(args)
			query += fmt.Sprintf(
				" AND latitude BETWEEN $%d AND $%d AND longitude BETWEEN $%d AND $%d",
				n-3, n-2, n-1, n,
			)
		}
		if params.Limit > 0 {
			args = append(args, params.Limit)
			query += fmt.Sprintf(" LIMIT $%d", len(args))
		}
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to query map points")
		}
		for rows.Next() {
			var (
				p    mappoint.Point
				kind string
			)
			if err := rows.Scan(&p.ID, &kind, &p.Label, &p.Status, &p.Latitude, &p.Longitude); err != nil {
				rows.Close()
				return nil, errors.Wrap(err, "failed to scan map point")
			}
			p.Kind = mappoint.Kind(strings.TrimSpace(kind))
			points = append(points, p)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to iterate map points")
		}
	}
	if params.Limit > 0 && len(points) > params.Limit {
		points = points[:params.Limit]
	}
	return points, nil
}
