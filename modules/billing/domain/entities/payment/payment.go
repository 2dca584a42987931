package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/pkg/listview"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
	StatusReversed  Status = "reversed"
)

type Channel string

const (
	ChannelVendor   Channel = "vendor"
	ChannelBank     Channel = "bank"
	ChannelCash     Channel = "cash"
	ChannelTransfer Channel = "transfer"
)

// Payment is one customer payment as reported by the collection channels.
// Records are read-only in the dashboard.
type Payment struct {
	ID            uint
	CustomerID    uint
	AccountNumber string
	CustomerName  string
	Amount        decimal.Decimal
	Channel       Channel
	Status        Status
	Reference     string
	PaidAt        time.Time
}

type FindParams struct {
	Limit   int
	Offset  int
	Query   string
	Status  Status
	Channel Channel
	From    time.Time
	To      time.Time
	Sort    listview.Sort
}

type Repository interface {
	Count(ctx context.Context, params FindParams) (int64, error)
	GetPaginated(ctx context.Context, params FindParams) ([]Payment, error)
}
