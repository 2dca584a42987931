package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/blumenos/gridadmin/modules/billing/domain/aggregates/bill"
	"github.com/blumenos/gridadmin/modules/billing/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/billing/services"
)

type staticBillRepo struct {
	bills []bill.Bill
}

func (r *staticBillRepo) Count(_ context.Context, _ bill.FindParams) (int64, error) {
	return int64(len(r.bills)), nil
}

func (r *staticBillRepo) GetPaginated(_ context.Context, _ bill.FindParams) ([]bill.Bill, error) {
	return r.bills, nil
}

func (r *staticBillRepo) GetByID(_ context.Context, id uint) (bill.Bill, error) {
	for _, b := range r.bills {
		if b.ID() == id {
			return b, nil
		}
	}
	return bill.Bill{}, persistence.ErrBillNotFound
}

func sampleBill(id uint, account string) bill.Bill {
	return bill.Hydrate(
		id, 7,
		account, "Adaeze Obi", "R2", "2026-07", "MTR-0042",
		decimal.NewFromInt(1200), decimal.NewFromInt(1450), decimal.NewFromInt(250),
		decimal.RequireFromString("15250.00"), decimal.RequireFromString("5000.00"),
		bill.StatusPartial,
		false,
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	)
}

func TestBillService_ExportReport(t *testing.T) {
	svc := services.NewBillService(&staticBillRepo{bills: []bill.Bill{
		sampleBill(1, "04-22-33-1001"),
		sampleBill(2, "04-22-33-1002"),
	}})

	raw, err := svc.ExportReport(context.Background(), bill.FindParams{})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Bills")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Bill ID", rows[0][0])
	assert.Equal(t, "Status", rows[0][len(rows[0])-1])
	assert.Equal(t, "04-22-33-1001", rows[1][1])
	assert.Equal(t, "partial", rows[1][len(rows[1])-1])
}

func TestBillService_ExportOne_NotFound(t *testing.T) {
	svc := services.NewBillService(&staticBillRepo{})

	_, err := svc.ExportOne(context.Background(), 99)
	assert.ErrorIs(t, err, persistence.ErrBillNotFound)
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "bills.xlsx", services.ReportFilename(bill.FindParams{}))
	assert.Equal(t, "bills-customer-7.xlsx", services.ReportFilename(bill.FindParams{CustomerID: 7}))
}
