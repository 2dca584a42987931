package quality

import (
	"context"
	"time"

	"github.com/blumenos/gridadmin/pkg/listview"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
	StatusIgnored  Status = "ignored"
)

// Issue is one data-quality finding over customer or grid records.
type Issue struct {
	ID         uint
	Category   string
	Severity   Severity
	Status     Status
	EntityKind string
	EntityID   uint
	Detail     string
	DetectedAt time.Time
}

type FindParams struct {
	Limit    int
	Offset   int
	Query    string
	Severity Severity
	Status   Status
	Sort     listview.Sort
}

type Repository interface {
	Count(ctx context.Context, params FindParams) (int64, error)
	GetPaginated(ctx context.Context, params FindParams) ([]Issue, error)
}
