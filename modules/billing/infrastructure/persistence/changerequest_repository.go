package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/changerequest"
	"github.com/blumenos/gridadmin/pkg/composables"
)

const selectChangeRequestQuery = `
	SELECT
		r.id, r.customer_id, c.account_number, r.type, r.status,
		r.summary, r.raised_by, r.created_at, COALESCE(r.resolved_at, 'epoch'::timestamptz)
	FROM change_requests r
	JOIN customers c ON c.id = r.customer_id`

type ChangeRequestRepository struct{}

func NewChangeRequestRepository() *ChangeRequestRepository {
	return &ChangeRequestRepository{}
}

func (r *ChangeRequestRepository) buildFilters(params changerequest.FindParams) (string, []interface{}) {
	where := []string{"1 = 1"}
	args := []interface{}{}
	if params.Type != "" {
		args = append(args, string(params.Type))
		where = append(where, fmt.Sprintf("r.type = $%d", len(args)))
	}
	if params.Status != "" {
		args = append(args, string(params.Status))
		where = append(where, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(c.account_number ILIKE $%d OR r.summary ILIKE $%d)", n, n))
	}
	return strings.Join(where, " AND "), args
}

func (r *ChangeRequestRepository) Count(ctx context.Context, params changerequest.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := r.buildFilters(params)
	var count int64
	query := "SELECT COUNT(*) FROM change_requests r JOIN customers c ON c.id = r.customer_id WHERE " + where
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count change requests")
	}
	return count, nil
}

func (r *ChangeRequestRepository) GetPaginated(ctx context.Context, params changerequest.FindParams) ([]changerequest.Request, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := r.buildFilters(params)
	sortable := map[string]string{
		"createdAt": "r.created_at",
		"status":    "r.status",
		"type":      "r.type",
	}
	orderBy := "r.created_at DESC"
	if col, ok := sortable[params.Sort.Field]; ok {
		orderBy = col + " " + params.Sort.Direction()
	}
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectChangeRequestQuery, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query change requests")
	}
	defer rows.Close()

	requests := make([]changerequest.Request, 0)
	for rows.Next() {
		var (
			req              changerequest.Request
			reqType, status  string
			createdAt        time.Time
			resolvedAt       time.Time
		)
		if err := rows.Scan(
			&req.ID, &req.CustomerID, &req.AccountNumber, &reqType, &status,
			&req.Summary, &req.RaisedBy, &createdAt, &resolvedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan change request row")
		}
		req.Type = changerequest.Type(reqType)
		req.Status = changerequest.Status(status)
		req.CreatedAt = createdAt
		req.ResolvedAt = resolvedAt
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate change request rows")
	}
	return requests, nil
}
