package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/hrm/domain/aggregates/employee"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var (
	ErrEmployeeNotFound = serrors.NewError("EMPLOYEE_NOT_FOUND", "Employee not found", "")
	ErrEmailTaken       = serrors.NewError("EMAIL_TAKEN", "An employee with this email already exists", "")
)

const (
	selectEmployeeQuery = `
		SELECT
			id, first_name, last_name, email, phone,
			role_id, area_office_id, department_id, COALESCE(supervisor_id, 0),
			employment_type, is_active, created_at, updated_at
		FROM employees`
	countEmployeeQuery  = `SELECT COUNT(*) FROM employees`
	insertEmployeeQuery = `
		INSERT INTO employees (
			first_name, last_name, email, phone,
			role_id, area_office_id, department_id, supervisor_id,
			employment_type, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, 0), $9, $10)
		RETURNING id, created_at, updated_at`
	updateEmployeeQuery = `
		UPDATE employees SET
			first_name = $1, last_name = $2, email = $3, phone = $4,
			role_id = $5, area_office_id = $6, department_id = $7,
			supervisor_id = NULLIF($8, 0), employment_type = $9, is_active = $10,
			updated_at = now()
		WHERE id = $11
		RETURNING updated_at`
)

type EmployeeRepository struct{}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) buildFilters(params employee.FindParams) (string, []interface{}) {
	where := []string{"1 = 1"}
	args := []interface{}{}
	if params.AreaOfficeID != 0 {
		args = append(args, params.AreaOfficeID)
		where = append(where, fmt.Sprintf("area_office_id = $%d", len(args)))
	}
	if params.DepartmentID != 0 {
		args = append(args, params.DepartmentID)
		where = append(where, fmt.Sprintf("department_id = $%d", len(args)))
	}
	if params.ActiveOnly {
		where = append(where, "is_active")
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}
	return strings.Join(where, " AND "), args
}

func (r *EmployeeRepository) Count(ctx context.Context, params employee.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := r.buildFilters(params)
	var count int64
	if err := tx.QueryRow(ctx, countEmployeeQuery+" WHERE "+where, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count employees")
	}
	return count, nil
}

func (r *EmployeeRepository) GetPaginated(ctx context.Context, params employee.FindParams) ([]employee.Employee, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := r.buildFilters(params)
	sortable := map[string]string{
		"firstName": "first_name",
		"lastName":  "last_name",
		"email":     "email",
		"createdAt": "created_at",
	}
	orderBy := "id DESC"
	if col, ok := sortable[params.Sort.Field]; ok {
		orderBy = col + " " + params.Sort.Direction()
	}
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectEmployeeQuery, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query employees")
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (employee.Employee, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	rows, err := tx.Query(ctx, selectEmployeeQuery+" WHERE id = $1", id)
	if err != nil {
		return employee.Employee{}, errors.Wrap(err, "failed to query employee")
	}
	defer rows.Close()
	entities, err := scanEmployees(rows)
	if err != nil {
		return employee.Employee{}, err
	}
	if len(entities) == 0 {
		return employee.Employee{}, ErrEmployeeNotFound
	}
	return entities[0], nil
}

func (r *EmployeeRepository) Create(ctx context.Context, entity employee.Employee) (employee.Employee, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	var (
		id                   uint
		createdAt, updatedAt time.Time
	)
	err = tx.QueryRow(
		ctx,
		insertEmployeeQuery,
		entity.FirstName(), entity.LastName(), entity.Email(), entity.Phone(),
		entity.RoleID(), entity.AreaOfficeID(), entity.DepartmentID(), entity.SupervisorID(),
		string(entity.EmploymentType()), entity.IsActive(),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, ErrEmailTaken
		}
		return employee.Employee{}, errors.Wrap(err, "failed to insert employee")
	}
	return employee.Hydrate(
		id, entity.FirstName(), entity.LastName(), entity.Email(), entity.Phone(),
		entity.RoleID(), entity.AreaOfficeID(), entity.DepartmentID(), entity.SupervisorID(),
		entity.EmploymentType(), entity.IsActive(), createdAt, updatedAt,
	), nil
}

func (r *EmployeeRepository) CreateMany(ctx context.Context, entities []employee.Employee) ([]employee.Employee, error) {
	created := make([]employee.Employee, 0, len(entities))
	for _, entity := range entities {
		c, err := r.Create(ctx, entity)
		if err != nil {
			return nil, err
		}
		created = append(created, c)
	}
	return created, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, entity employee.Employee) (employee.Employee, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	var updatedAt time.Time
	err = tx.QueryRow(
		ctx,
		updateEmployeeQuery,
		entity.FirstName(), entity.LastName(), entity.Email(), entity.Phone(),
		entity.RoleID(), entity.AreaOfficeID(), entity.DepartmentID(), entity.SupervisorID(),
		string(entity.EmploymentType()), entity.IsActive(), entity.ID(),
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.Employee{}, ErrEmailTaken
		}
		return employee.Employee{}, errors.Wrap(err, "failed to update employee")
	}
	return employee.Hydrate(
		entity.ID(), entity.FirstName(), entity.LastName(), entity.Email(), entity.Phone(),
		entity.RoleID(), entity.AreaOfficeID(), entity.DepartmentID(), entity.SupervisorID(),
		entity.EmploymentType(), entity.IsActive(), entity.CreatedAt(), updatedAt,
	), nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	entities := make([]employee.Employee, 0)
	for rows.Next() {
		var (
			id                   uint
			firstName, lastName  string
			email, phone         string
			roleID, areaOfficeID uint
			departmentID         uint
			supervisorID         uint
			employmentType       string
			isActive             bool
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&id, &firstName, &lastName, &email, &phone,
			&roleID, &areaOfficeID, &departmentID, &supervisorID,
			&employmentType, &isActive, &createdAt, &updatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan employee row")
		}
		entities = append(entities, employee.Hydrate(
			id, firstName, lastName, email, phone,
			roleID, areaOfficeID, departmentID, supervisorID,
			employee.EmploymentType(employmentType), isActive, createdAt, updatedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate employee rows")
	}
	return entities, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
