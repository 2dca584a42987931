package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/grid/domain/aggregates/substation"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var (
	ErrSubstationNotFound = serrors.NewError("SUBSTATION_NOT_FOUND", "Substation not found", "")
	ErrCodeTaken          = serrors.NewError("DSS_CODE_TAKEN", "A substation with this DSS code already exists", "")
)

const (
	selectSubstationQuery = `
		SELECT
			id,
			feeder_id,
			old_code,
			new_code,
			nerc_code,
			transformer_capacity,
			latitude,
			longitude,
			number_of_units,
			unit_one_code,
			unit_two_code,
			unit_three_code,
			unit_four_code,
			is_dedicated,
			status,
			remarks,
			created_at,
			updated_at
		FROM substations`
	countSubstationQuery  = `SELECT COUNT(*) FROM substations`
	insertSubstationQuery = `
		INSERT INTO substations (
			feeder_id, old_code, new_code, nerc_code, transformer_capacity,
			latitude, longitude, number_of_units,
			unit_one_code, unit_two_code, unit_three_code, unit_four_code,
			is_dedicated, status, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`
	updateSubstationQuery = `
		UPDATE substations SET
			feeder_id = $1, old_code = $2, new_code = $3, nerc_code = $4,
			transformer_capacity = $5, latitude = $6, longitude = $7,
			number_of_units = $8,
			unit_one_code = $9, unit_two_code = $10, unit_three_code = $11, unit_four_code = $12,
			is_dedicated = $13, status = $14, remarks = $15, updated_at = now()
		WHERE id = $16
		RETURNING updated_at`
	deleteSubstationQuery = `DELETE FROM substations WHERE id = $1`
)

type SubstationRepository struct{}

func NewSubstationRepository() *SubstationRepository {
	return &SubstationRepository{}
}

func (r *SubstationRepository) buildFilters(params substation.FindParams) (string, []interface{}) {
	where := []string{"1 = 1"}
	args := []interface{}{}
	if params.FeederID != 0 {
		args = append(args, params.FeederID)
		where = append(where, fmt.Sprintf("feeder_id = $%d", len(args)))
	}
	if params.Status != "" {
		args = append(args, string(params.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(new_code ILIKE $%d OR old_code ILIKE $%d OR nerc_code ILIKE $%d)", n, n, n))
	}
	return strings.Join(where, " AND "), args
}

func (r *SubstationRepository) Count(ctx context.Context, params substation.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := r.buildFilters(params)
	var count int64
	if err := tx.QueryRow(ctx, countSubstationQuery+" WHERE "+where, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count substations")
	}
	return count, nil
}

func (r *SubstationRepository) GetPaginated(ctx context.Context, params substation.FindParams) ([]substation.Substation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := r.buildFilters(params)
	sortable := map[string]string{
		"newDssCode":          "new_code",
		"nercCode":            "nerc_code",
		"transformerCapacity": "transformer_capacity",
		"status":              "status",
		"createdAt":           "created_at",
	}
	orderBy := "id DESC"
	if col, ok := sortable[params.Sort.Field]; ok {
		orderBy = col + " " + params.Sort.Direction()
	}
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectSubstationQuery, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query substations")
	}
	defer rows.Close()
	return scanSubstations(rows)
}

func (r *SubstationRepository) GetByID(ctx context.Context, id uint) (substation.Substation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return substation.Substation{}, err
	}
	rows, err := tx.Query(ctx, selectSubstationQuery+" WHERE id = $1", id)
	if err != nil {
		return substation.Substation{}, errors.Wrap(err, "failed to query substation")
	}
	defer rows.Close()
	entities, err := scanSubstations(rows)
	if err != nil {
		return substation.Substation{}, err
	}
	if len(entities) == 0 {
		return substation.Substation{}, ErrSubstationNotFound
	}
	return entities[0], nil
}

func (r *SubstationRepository) Create(ctx context.Context, entity substation.Substation) (substation.Substation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return substation.Substation{}, err
	}
	units := entity.UnitCodes()
	var (
		id                   uint
		createdAt, updatedAt time.Time
	)
	err = tx.QueryRow(
		ctx,
		insertSubstationQuery,
		entity.FeederID(),
		entity.OldCode(),
		entity.NewCode(),
		entity.NERCCode(),
		entity.TransformerCapacity(),
		entity.Latitude(),
		entity.Longitude(),
		entity.NumberOfUnits(),
		units[0], units[1], units[2], units[3],
		entity.IsDedicated(),
		string(entity.Status()),
		entity.Remarks(),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return substation.Substation{}, ErrCodeTaken
		}
		return substation.Substation{}, errors.Wrap(err, "failed to insert substation")
	}
	return substation.Hydrate(
		id, entity.FeederID(), entity.OldCode(), entity.NewCode(), entity.NERCCode(),
		entity.TransformerCapacity(), entity.Latitude(), entity.Longitude(),
		entity.NumberOfUnits(), units, entity.IsDedicated(), entity.Status(), entity.Remarks(),
		createdAt, updatedAt,
	), nil
}

func (r *SubstationRepository) CreateMany(ctx context.Context, entities []substation.Substation) ([]substation.Substation, error) {
	created := make([]substation.Substation, 0, len(entities))
	for _, entity := range entities {
		c, err := r.Create(ctx, entity)
		if err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	return created, nil
}

func (r *SubstationRepository) Update(ctx context.Context, entity substation.Substation) (substation.Substation, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return substation.Substation{}, err
	}
	units := entity.UnitCodes()
	var updatedAt time.Time
	err = tx.QueryRow(
		ctx,
		updateSubstationQuery,
		entity.FeederID(),
		entity.OldCode(),
		entity.NewCode(),
		entity.NERCCode(),
		entity.TransformerCapacity(),
		entity.Latitude(),
		entity.Longitude(),
		entity.NumberOfUnits(),
		units[0], units[1], units[2], units[3],
		entity.IsDedicated(),
		string(entity.Status()),
		entity.Remarks(),
		entity.ID(),
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return substation.Substation{}, ErrSubstationNotFound
		}
		if isUniqueViolation(err) {
			return substation.Substation{}, ErrCodeTaken
		}
		return substation.Substation{}, errors.Wrap(err, "failed to update substation")
	}
	return substation.Hydrate(
		entity.ID(), entity.FeederID(), entity.OldCode(), entity.NewCode(), entity.NERCCode(),
		entity.TransformerCapacity(), entity.Latitude(), entity.Longitude(),
		entity.NumberOfUnits(), units, entity.IsDedicated(), entity.Status(), entity.Remarks(),
		entity.CreatedAt(), updatedAt,
	), nil
}

func (r *SubstationRepository) Delete(ctx context.Context, id uint) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, deleteSubstationQuery, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete substation")
	}
	if tag.RowsAffected() == 0 {
		return ErrSubstationNotFound
	}
	return nil
}

func scanSubstations(rows pgx.Rows) ([]substation.Substation, error) {
	entities := make([]substation.Substation, 0)
	for rows.Next() {
		var (
			id                   uint
			feederID             uint
			oldCode, newCode     string
			nercCode             string
			capacity             float64
			lat, lon             float64
			units                int
			u1, u2, u3, u4       string
			isDedicated          bool
			status               string
			remarks              string
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&id, &feederID, &oldCode, &newCode, &nercCode, &capacity,
			&lat, &lon, &units, &u1, &u2, &u3, &u4, &isDedicated, &status, &remarks,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan substation row")
		}
		entities = append(entities, substation.Hydrate(
			id, feederID, oldCode, newCode, nercCode, capacity, lat, lon,
			units, [substation.MaxUnits]string{u1, u2, u3, u4}, isDedicated,
			substation.Status(status), remarks, createdAt, updatedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate substation rows")
	}
	return entities, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
