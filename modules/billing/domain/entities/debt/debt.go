package debt

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/pkg/listview"
)

type Stage string

const (
	StageReminder     Stage = "reminder"
	StageDunning      Stage = "dunning"
	StageDisconnection Stage = "disconnection"
	StageWriteOff     Stage = "write_off"
)

// Bucket is one aged-debt slice of a customer's outstanding balance.
type Bucket struct {
	// Label names the ageing band, e.g. "0-30", "31-60", "90+".
	Label string
	// AgeDays is the lower bound of the band, used for oldest-first ordering.
	AgeDays int
	Amount  decimal.Decimal
}

// Item is one customer's debt-recovery position.
type Item struct {
	ID            uint
	CustomerID    uint
	AccountNumber string
	CustomerName  string
	Stage         Stage
	Buckets       []Bucket
	LastPaymentAt time.Time
}

// Outstanding is the sum over all buckets.
func (i Item) Outstanding() decimal.Decimal {
	total := decimal.Zero
	for _, b := range i.Buckets {
		total = total.Add(b.Amount)
	}
	return total
}

type FindParams struct {
	Limit  int
	Offset int
	Query  string
	Stage  Stage
	Sort   listview.Sort
}

type Repository interface {
	Count(ctx context.Context, params FindParams) (int64, error)
	GetPaginated(ctx context.Context, params FindParams) ([]Item, error)
	GetByID(ctx context.Context, id uint) (Item, error)
}
