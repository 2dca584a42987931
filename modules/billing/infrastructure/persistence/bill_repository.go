package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/modules/billing/domain/aggregates/bill"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var ErrBillNotFound = serrors.NewError("BILL_NOT_FOUND", "Bill not found", "")

const selectBillQuery = `
	SELECT
		b.id, b.customer_id, c.account_number, c.name, b.tariff_class,
		b.billing_period, b.meter_number, b.previous_read, b.current_read,
		b.consumption_kwh, b.amount_due, b.amount_paid, b.status,
		b.has_dispute, b.issued_at, b.due_at
	FROM bills b
	JOIN customers c ON c.id = b.customer_id`

type BillRepository struct{}

func NewBillRepository() *BillRepository {
	return &BillRepository{}
}

func (r *BillRepository) buildFilters(params bill.FindParams) (string, []interface{}) {
	where := []string{"1 = 1"}
	args := []interface{}{}
	if params.Status != "" {
		args = append(args, string(params.Status))
		where = append(where, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if params.CustomerID != 0 {
		args = append(args, params.CustomerID)
		where = append(where, fmt.Sprintf("b.customer_id = $%d", len(args)))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(c.account_number ILIKE $%d OR c.name ILIKE $%d)", n, n))
	}
	return strings.Join(where, " AND "), args
}

func (r *BillRepository) Count(ctx context.Context, params bill.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := r.buildFilters(params)
	var count int64
	query := "SELECT COUNT(*) FROM bills b JOIN customers c ON c.id = b.customer_id WHERE " + where
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count bills")
	}
	return count, nil
}

func (r *BillRepository) GetPaginated(ctx context.Context, params bill.FindParams) ([]bill.Bill, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := r.buildFilters(params)
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY b.issued_at DESC LIMIT $%d OFFSET $%d",
		selectBillQuery, where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query bills")
	}
	defer rows.Close()
	return scanBills(rows)
}

func (r *BillRepository) GetByID(ctx context.Context, id uint) (bill.Bill, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return bill.Bill{}, err
	}
	rows, err := tx.Query(ctx, selectBillQuery+" WHERE b.id = $1", id)
	if err != nil {
		return bill.Bill{}, errors.Wrap(err, "failed to query bill")
	}
	defer rows.Close()
	bills, err := scanBills(rows)
	if err != nil {
		return bill.Bill{}, err
	}
	if len(bills) == 0 {
		return bill.Bill{}, ErrBillNotFound
	}
	return bills[0], nil
}

func scanBills(rows pgx.Rows) ([]bill.Bill, error) {
	bills := make([]bill.Bill, 0)
	for rows.Next() {
		var (
			id, customerID              uint
			accountNumber, name         string
			tariffClass, billingPeriod  string
			meterNumber                 string
			prevRead, currRead          decimal.Decimal
			consumption, due, paid      decimal.Decimal
			status                      string
			hasDispute                  bool
			issuedAt, dueAt             time.Time
		)
		if err := rows.Scan(
			&id, &customerID, &accountNumber, &name, &tariffClass,
			&billingPeriod, &meterNumber, &prevRead, &currRead,
			&consumption, &due, &paid, &status, &hasDispute, &issuedAt, &dueAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan bill row")
		}
		bills = append(bills, bill.Hydrate(
			id, customerID, accountNumber, name, tariffClass, billingPeriod,
			meterNumber, prevRead, currRead, consumption, due, paid,
			bill.Status(status), hasDispute, issuedAt, dueAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate bill rows")
	}
	return bills, nil
}
