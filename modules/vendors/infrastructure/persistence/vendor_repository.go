package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/modules/vendors/domain/aggregates/vendor"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var (
	ErrVendorNotFound    = serrors.NewError("VENDOR_NOT_FOUND", "Vendor not found", "")
	ErrVendorEmailTaken  = serrors.NewError("VENDOR_EMAIL_TAKEN", "A vendor with this email already exists", "")
)

const (
	selectVendorQuery = `
		SELECT
			id, name, email, phone, status, suspension_reason,
			commission, allow_postpaid, allow_prepaid,
			COALESCE(api_key_hash, ''), COALESCE(api_key_issued_at, 'epoch'::timestamptz),
			created_at, updated_at
		FROM vendors`
	countVendorQuery  = `SELECT COUNT(*) FROM vendors`
	insertVendorQuery = `
		INSERT INTO vendors (name, email, phone, status, suspension_reason, commission, allow_postpaid, allow_prepaid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	updateVendorQuery = `
		UPDATE vendors SET
			name = $1, email = $2, phone = $3, status = $4, suspension_reason = $5,
			commission = $6, allow_postpaid = $7, allow_prepaid = $8,
			api_key_hash = NULLIF($9, ''), api_key_issued_at = $10, updated_at = now()
		WHERE id = $11
		RETURNING updated_at`
)

type VendorRepository struct{}

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{}
}

func (r *VendorRepository) buildFilters(params vendor.FindParams) (string, []interface{}) {
	where := []string{"1 = 1"}
	args := []interface{}{}
	if params.Status != "" {
		args = append(args, string(params.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", n, n))
	}
	return strings.Join(where, " AND "), args
}

func (r *VendorRepository) Count(ctx context.Context, params vendor.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := r.buildFilters(params)
	var count int64
	if err := tx.QueryRow(ctx, countVendorQuery+" WHERE "+where, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count vendors")
	}
	return count, nil
}

func (r *VendorRepository) GetPaginated(ctx context.Context, params vendor.FindParams) ([]vendor.Vendor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := r.buildFilters(params)
	sortable := map[string]string{
		"name":      "name",
		"status":    "status",
		"createdAt": "created_at",
	}
	orderBy := "id DESC"
	if col, ok := sortable[params.Sort.Field]; ok {
		orderBy = col + " " + params.Sort.Direction()
	}
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectVendorQuery, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query vendors")
	}
	defer rows.Close()
	return scanVendors(rows)
}

func (r *VendorRepository) GetByID(ctx context.Context, id uint) (vendor.Vendor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return vendor.Vendor{}, err
	}
	rows, err := tx.Query(ctx, selectVendorQuery+" WHERE id = $1", id)
	if err != nil {
		return vendor.Vendor{}, errors.Wrap(err, "failed to query vendor")
	}
	defer rows.Close()
	entities, err := scanVendors(rows)
	if err != nil {
		return vendor.Vendor{}, err
	}
	if len(entities) == 0 {
		return vendor.Vendor{}, ErrVendorNotFound
	}
	return entities[0], nil
}

func (r *VendorRepository) Create(ctx context.Context, entity vendor.Vendor) (vendor.Vendor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return vendor.Vendor{}, err
	}
	var (
		id                   uint
		createdAt, updatedAt time.Time
	)
	err = tx.QueryRow(
		ctx,
		insertVendorQuery,
		entity.Name(), entity.Email(), entity.Phone(),
		string(entity.Status()), entity.SuspensionReason(),
		entity.Commission(), entity.AllowPostpaid(), entity.AllowPrepaid(),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return vendor.Vendor{}, ErrVendorEmailTaken
		}
		return vendor.Vendor{}, errors.Wrap(err, "failed to insert vendor")
	}
	return vendor.Hydrate(
		id, entity.Name(), entity.Email(), entity.Phone(),
		entity.Status(), entity.SuspensionReason(), entity.Commission(),
		entity.AllowPostpaid(), entity.AllowPrepaid(),
		entity.APIKeyHash(), entity.APIKeyIssuedAt(), createdAt, updatedAt,
	), nil
}

func (r *VendorRepository) Update(ctx context.Context, entity vendor.Vendor) (vendor.Vendor, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return vendor.Vendor{}, err
	}
	var updatedAt time.Time
	err = tx.QueryRow(
		ctx,
		updateVendorQuery,
		entity.Name(), entity.Email(), entity.Phone(),
		string(entity.Status()), entity.SuspensionReason(),
		entity.Commission(), entity.AllowPostpaid(), entity.AllowPrepaid(),
		entity.APIKeyHash(), entity.APIKeyIssuedAt(), entity.ID(),
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vendor.Vendor{}, ErrVendorNotFound
		}
		return vendor.Vendor{}, errors.Wrap(err, "failed to update vendor")
	}
	return vendor.Hydrate(
		entity.ID(), entity.Name(), entity.Email(), entity.Phone(),
		entity.Status(), entity.SuspensionReason(), entity.Commission(),
		entity.AllowPostpaid(), entity.AllowPrepaid(),
		entity.APIKeyHash(), entity.APIKeyIssuedAt(), entity.CreatedAt(), updatedAt,
	), nil
}

func scanVendors(rows pgx.Rows) ([]vendor.Vendor, error) {
	entities := make([]vendor.Vendor, 0)
	for rows.Next() {
		var (
			id                   uint
			name, email, phone   string
			status               string
			suspensionReason     string
			commission           decimal.Decimal
			allowPostpaid        bool
			allowPrepaid         bool
			apiKeyHash           string
			apiKeyIssuedAt       time.Time
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&id, &name, &email, &phone, &status, &suspensionReason,
			&commission, &allowPostpaid, &allowPrepaid,
			&apiKeyHash, &apiKeyIssuedAt, &createdAt, &updatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan vendor row")
		}
		entities = append(entities, vendor.Hydrate(
			id, name, email, phone, vendor.Status(status), suspensionReason,
			commission, allowPostpaid, allowPrepaid,
			apiKeyHash, apiKeyIssuedAt, createdAt, updatedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate vendor rows")
	}
	return entities, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
