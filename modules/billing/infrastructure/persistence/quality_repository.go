package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/quality"
	"github.com/blumenos/gridadmin/pkg/composables"
)

const selectQualityQuery = `
	SELECT id, category, severity, status, entity_kind, entity_id, detail, detected_at
	FROM data_quality_issues`

type QualityRepository struct{}

func NewQualityRepository() *QualityRepository {
	return &QualityRepository{}
}

func (r *QualityRepository) buildFilters(params quality.FindParams) (string, []interface{}) {
	where := []string{"1 = 1"}
	args := []interface{}{}
	if params.Severity != "" {
		args = append(args, string(params.Severity))
		where = append(where, fmt.Sprintf("severity = $%d", len(args)))
	}
	if params.Status != "" {
		args = append(args, string(params.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(category ILIKE $%d OR detail ILIKE $%d)", n, n))
	}
	return strings.Join(where, " AND "), args
}

func (r *QualityRepository) Count(ctx context.Context, params quality.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	where, args := r.buildFilters(params)
	var count int64
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM data_quality_issues WHERE "+where, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count data quality issues")
	}
	return count, nil
}

func (r *QualityRepository) GetPaginated(ctx context.Context, params quality.FindParams) ([]quality.Issue, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	where, args := r.buildFilters(params)
	sortable := map[string]string{
		"severity":   "severity",
		"detectedAt": "detected_at",
		"category":   "category",
	}
	orderBy := "detected_at DESC"
	if col, ok := sortable[params.Sort.Field]; ok {
		orderBy = col + " " + params.Sort.Direction()
	}
	query := fmt.Sprintf(
		"%s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		selectQualityQuery, where, orderBy, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset)
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query data quality issues")
	}
	defer rows.Close()

	issues := make([]quality.Issue, 0)
	for rows.Next() {
		var (
			issue            quality.Issue
			severity, status string
			detectedAt       time.Time
		)
		if err := rows.Scan(
			&issue.ID, &issue.Category, &severity, &status,
			&issue.EntityKind, &issue.EntityID, &issue.Detail, &detectedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan data quality row")
		}
		issue.Severity = quality.Severity(severity)
		issue.Status = quality.Status(status)
		issue.DetectedAt = detectedAt
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate data quality rows")
	}
	return issues, nil
}
