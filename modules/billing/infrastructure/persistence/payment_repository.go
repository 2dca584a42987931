package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/payment"
	"github.com/blumenos/gridadmin/pkg/composables"
)

const selectPaymentQuery = `
	SELECT
		p.id, p.customer_id, c.account_number, c.name,
		p.amount, p.channel, p.status, p.reference, p.paid_at
	FROM payments p
	JOIN customers c ON c.id = p.customer_id`

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) buildFilters(params payment.FindParams) (string, []interface{}) {
	where := []string{"1 = 1"}
	args := []interface{}{}
	if params.Status != "" {
		args = append(args, string(params.Status))
		where = append(where, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if params.Channel != "" {
		args = append(args, string(params.Channel))
		where = append(where, fmt.Sprintf("p.channel = $%d", len(args)))
	}
	if !params.From.IsZero() {
		args = append(args, params.From)
		where = append(where, fmt.Sprintf("p.paid_at >= $%d", len(args)))
	}
	if !params.To.IsZero() {
		args = append(args, params.To)
		where = append(where, fmt.Sprintf("p.paid_at <= $%d", len(args)))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(c.account_number ILIKE $%d OR c.name ILIKE $%d OR p.reference ILIKE $%d)", n, n, n))
	}
	return strings.Join(where, " AND "), args
}

func (r *PaymentRepository) Count(ctx context.Context, params payment.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := r.buildFilters(params)
	var count int64
	query := "SELECT COUNT(*) FROM payments p JOIN customers c ON c.id = p.customer_id WHERE " + where
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count payments")
	}
	return count, nil
}

func (r *PaymentRepository) GetPaginated(ctx context.Context, params payment.FindParams) ([]payment.Payment, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := r.buildFilters(params)
	sortable := map[string]string{
		"amount": "p.amount",
		"paidAt": "p.paid_at",
		"status": "p.status",
	}
	orderBy := "p.paid_at DESC"
	if col, ok := sortable[params.Sort.Field]; ok {
		orderBy = col + " " + params.Sort.Direction()
	}
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectPaymentQuery, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query payments")
	}
	defer rows.Close()

	payments := make([]payment.Payment, 0)
	for rows.Next() {
		var (
			p       payment.Payment
			amount  decimal.Decimal
			channel string
			status  string
			paidAt  time.Time
		)
		if err := rows.Scan(
			&p.ID, &p.CustomerID, &p.AccountNumber, &p.CustomerName,
			&amount, &channel, &status, &p.Reference, &paidAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan payment row")
		}
		p.Amount = amount
		p.Channel = payment.Channel(channel)
		p.Status = payment.Status(status)
		p.PaidAt = paidAt
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate payment rows")
	}
	return payments, nil
}
