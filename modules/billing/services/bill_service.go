package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/blumenos/gridadmin/modules/billing/domain/aggregates/bill"
)

type BillService struct {
	repo bill.Repository
}

func NewBillService(repo bill.Repository) *BillService {
	return &BillService{repo: repo}
}

func (s *BillService) Count(ctx context.Context, params bill.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *BillService) GetPaginated(ctx context.Context, params bill.FindParams) ([]bill.Bill, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *BillService) GetByID(ctx context.Context, id uint) (bill.Bill, error) {
	return s.repo.GetByID(ctx, id)
}

var billReportHeader = []string{
	"Bill ID", "Account Number", "Customer", "Tariff", "Period", "Meter",
	"Previous Read", "Current Read", "Consumption (kWh)",
	"Amount Due", "Amount Paid", "Outstanding", "Status",
}

// ExportReport renders the current bill page as an xlsx workbook.
func (s *BillService) ExportReport(ctx context.Context, params bill.FindParams) ([]byte, error) {
	bills, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return renderBillReport(bills)
}

// ExportOne renders a single bill as an xlsx workbook.
func (s *BillService) ExportOne(ctx context.Context, id uint) ([]byte, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return renderBillReport([]bill.Bill{b})
}

func renderBillReport(bills []bill.Bill) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Bills"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create report sheet")
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, title := range billReportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, errors.Wrap(err, "failed to write report header")
		}
	}
	for row, b := range bills {
		values := []interface{}{
			b.ID(), b.AccountNumber(), b.CustomerName(), b.TariffClass(),
			b.BillingPeriod(), b.MeterNumber(),
			b.PreviousRead().InexactFloat64(), b.CurrentRead().InexactFloat64(),
			b.ConsumptionKWh().InexactFloat64(),
			b.AmountDue().InexactFloat64(), b.AmountPaid().InexactFloat64(),
			b.Outstanding().InexactFloat64(), string(b.Status()),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, errors.Wrapf(err, "failed to write report row %d", row+1)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to serialize report")
	}
	return buf.Bytes(), nil
}

// ReportFilename names an export download for a billing period filter.
func ReportFilename(params bill.FindParams) string {
	if params.CustomerID != 0 {
		return fmt.Sprintf("bills-customer-%d.xlsx", params.CustomerID)
	}
	return "bills.xlsx"
}
