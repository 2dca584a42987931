package changerequest

import (
	"context"
	"time"

	"github.com/blumenos/gridadmin/pkg/listview"
)

type Type string

const (
	TypeMeterChange    Type = "meter_change"
	TypeTariffChange   Type = "tariff_change"
	TypeNameCorrection Type = "name_correction"
	TypeAddressChange  Type = "address_change"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a customer-record change raised by field staff, reviewed in the
// dashboard.
type Request struct {
	ID            uint
	CustomerID    uint
	AccountNumber string
	Type          Type
	Status        Status
	Summary       string
	RaisedBy      string
	CreatedAt     time.Time
	ResolvedAt    time.Time
}

type FindParams struct {
	Limit  int
	Offset int
	Query  string
	Type   Type
	Status Status
	Sort   listview.Sort
}

type Repository interface {
	Count(ctx context.Context, params FindParams) (int64, error)
	GetPaginated(ctx context.Context, params FindParams) ([]Request, error)
}
