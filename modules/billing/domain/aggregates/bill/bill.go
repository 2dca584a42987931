package bill

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusUnpaid   Status = "unpaid"
	StatusPartial  Status = "partial"
	StatusPaid     Status = "paid"
	StatusDisputed Status = "disputed"
)

// Bill is a read-only billing statement. Bills are produced by the upstream
// billing engine; the dashboard only reads and exports them.
type Bill struct {
	id             uint
	customerID     uint
	accountNumber  string
	customerName   string
	tariffClass    string
	billingPeriod  string
	meterNumber    string
	previousRead   decimal.Decimal
	currentRead    decimal.Decimal
	consumptionKWh decimal.Decimal
	amountDue      decimal.Decimal
	amountPaid     decimal.Decimal
	status         Status
	hasDispute     bool
	issuedAt       time.Time
	dueAt          time.Time
}

func Hydrate(
	id, customerID uint,
	accountNumber, customerName, tariffClass, billingPeriod, meterNumber string,
	previousRead, currentRead, consumptionKWh, amountDue, amountPaid decimal.Decimal,
	status Status,
	hasDispute bool,
	issuedAt, dueAt time.Time,
) Bill {
	return Bill{
		id:             id,
		customerID:     customerID,
		accountNumber:  accountNumber,
		customerName:   customerName,
		tariffClass:    tariffClass,
		billingPeriod:  billingPeriod,
		meterNumber:    meterNumber,
		previousRead:   previousRead,
		currentRead:    currentRead,
		consumptionKWh: consumptionKWh,
		amountDue:      amountDue,
		amountPaid:     amountPaid,
		status:         status,
		hasDispute:     hasDispute,
		issuedAt:       issuedAt,
		dueAt:          dueAt,
	}
}

func (b Bill) ID() uint                        { return b.id }
func (b Bill) CustomerID() uint                { return b.customerID }
func (b Bill) AccountNumber() string           { return b.accountNumber }
func (b Bill) CustomerName() string            { return b.customerName }
func (b Bill) TariffClass() string             { return b.tariffClass }
func (b Bill) BillingPeriod() string           { return b.billingPeriod }
func (b Bill) MeterNumber() string             { return b.meterNumber }
func (b Bill) PreviousRead() decimal.Decimal   { return b.previousRead }
func (b Bill) CurrentRead() decimal.Decimal    { return b.currentRead }
func (b Bill) ConsumptionKWh() decimal.Decimal { return b.consumptionKWh }
func (b Bill) AmountDue() decimal.Decimal      { return b.amountDue }
func (b Bill) AmountPaid() decimal.Decimal     { return b.amountPaid }
func (b Bill) Outstanding() decimal.Decimal    { return b.amountDue.Sub(b.amountPaid) }
func (b Bill) Status() Status                  { return b.status }
func (b Bill) HasDispute() bool                { return b.hasDispute }
func (b Bill) IssuedAt() time.Time             { return b.issuedAt }
func (b Bill) DueAt() time.Time                { return b.dueAt }

type FindParams struct {
	Limit      int
	Offset     int
	Query      string
	Status     Status
	CustomerID uint
}

type Repository interface {
	Count(ctx context.Context, params FindParams) (int64, error)
	GetPaginated(ctx context.Context, params FindParams) ([]Bill, error)
	GetByID(ctx context.Context, id uint) (Bill, error)
}
