package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/debt"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var ErrDebtItemNotFound = serrors.NewError("DEBT_ITEM_NOT_FOUND", "Debt recovery record not found", "")

const selectDebtQuery = `
	SELECT
		d.id, d.customer_id, c.account_number, c.name, d.stage,
		d.bucket_0_30, d.bucket_31_60, d.bucket_61_90, d.bucket_90_plus,
		COALESCE(d.last_payment_at, 'epoch'::timestamptz)
	FROM debt_items d
	JOIN customers c ON c.id = d.customer_id`

type DebtRepository struct{}

func NewDebtRepository() *DebtRepository {
	return &DebtRepository{}
}

func (r *DebtRepository) buildFilters(params debt.FindParams) (string, []interface{}) {
	where := []string{"1 = 1"}
	args := []interface{}{}
	if params.Stage != "" {
		args = append(args, string(params.Stage))
		where = append(where, fmt.Sprintf("d.stage = $%d", len(args)))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(c.account_number ILIKE $%d OR c.name ILIKE $%d)", n, n))
	}
	return strings.Join(where, " AND "), args
}

func (r *DebtRepository) Count(ctx context.Context, params debt.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := r.buildFilters(params)
	var count int64
	query := "SELECT COUNT(*) FROM debt_items d JOIN customers c ON c.id = d.customer_id WHERE " + where
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count debt items")
	}
	return count, nil
}

func (r *DebtRepository) GetPaginated(ctx context.Context, params debt.FindParams) ([]debt.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := r.buildFilters(params)
	sortable := map[string]string{
		"stage":         "d.stage",
		"lastPaymentAt": "d.last_payment_at",
	}
	orderBy := "d.bucket_90_plus DESC"
	if col, ok := sortable[params.Sort.Field]; ok {
		orderBy = col + " " + params.Sort.Direction()
	}
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectDebtQuery, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query debt items")
	}
	defer rows.Close()
	return scanDebtItems(rows)
}

func (r *DebtRepository) GetByID(ctx context.Context, id uint) (debt.Item, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return debt.Item{}, err
	}
	rows, err := tx.Query(ctx, selectDebtQuery+" WHERE d.id = $1", id)
	if err != nil {
		return debt.Item{}, errors.Wrap(err, "failed to query debt item")
	}
	defer rows.Close()
	items, err := scanDebtItems(rows)
	if err != nil {
		return debt.Item{}, err
	}
	if len(items) == 0 {
		return debt.Item{}, ErrDebtItemNotFound
	}
	return items[0], nil
}

func scanDebtItems(rows pgx.Rows) ([]debt.Item, error) {
	items := make([]debt.Item, 0)
	for rows.Next() {
		var (
			item                   debt.Item
			stage                  string
			b030, b3160            decimal.Decimal
			b6190, b90             decimal.Decimal
			lastPaymentAt          time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.CustomerID, &item.AccountNumber, &item.CustomerName,
			&stage, &b030, &b3160, &b6190, &b90, &lastPaymentAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan debt row")
		}
		item.Stage = debt.Stage(stage)
		item.LastPaymentAt = lastPaymentAt
		item.Buckets = []debt.Bucket{
			{Label: "0-30", AgeDays: 0, Amount: b030},
			{Label: "31-60", AgeDays: 31, Amount: b3160},
			{Label: "61-90", AgeDays: 61, Amount: b6190},
			{Label: "90+", AgeDays: 91, Amount: b90},
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate debt rows")
	}
	return items, nil
}
