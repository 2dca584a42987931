package persistence

import (
	"context"

	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/grid/domain/entities/feeder"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var ErrFeederNotFound = serrors.NewError("FEEDER_NOT_FOUND", "Feeder not found", "")

const selectFeederQuery = `SELECT id, code, name, area_office, voltage_kv FROM feeders`

type FeederRepository struct{}

func NewFeederRepository() *FeederRepository {
	return &FeederRepository{}
}

func (r *FeederRepository) GetAll(ctx context.Context) ([]feeder.Feeder, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, selectFeederQuery+" ORDER BY code")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query feeders")
	}
	defer rows.Close()
	feeders := make([]feeder.Feeder, 0)
	for rows.Next() {
		var f feeder.Feeder
		if err := rows.Scan(&f.ID, &f.Code, &f.Name, &f.AreaOffice, &f.VoltageKV); err != nil {
			return nil, errors.Wrap(err, "failed to scan feeder row")
		}
		feeders = append(feeders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate feeder rows")
	}
	return feeders, nil
}

func (r *FeederRepository) GetByID(ctx context.Context, id uint) (feeder.Feeder, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return feeder.Feeder{}, err
	}
	var f feeder.Feeder
	err = tx.QueryRow(ctx, selectFeederQuery+" WHERE id = $1", id).
		Scan(&f.ID, &f.Code, &f.Name, &f.AreaOffice, &f.VoltageKV)
	if err != nil {
		return feeder.Feeder{}, ErrFeederNotFound
	}
	return f, nil
}
