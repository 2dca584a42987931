package mappers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/modules/billing/domain/aggregates/bill"
	"github.com/blumenos/gridadmin/modules/billing/domain/entities/changerequest"
	"github.com/blumenos/gridadmin/modules/billing/domain/entities/debt"
	"github.com/blumenos/gridadmin/modules/billing/domain/entities/payment"
	"github.com/blumenos/gridadmin/modules/billing/domain/entities/quality"
	"github.com/blumenos/gridadmin/modules/billing/presentation/viewmodels"
)

func BillToViewModel(b bill.Bill) viewmodels.Bill {
	return viewmodels.Bill{
		ID:             b.ID(),
		CustomerID:     b.CustomerID(),
		AccountNumber:  b.AccountNumber(),
		CustomerName:   b.CustomerName(),
		TariffClass:    b.TariffClass(),
		BillingPeriod:  b.BillingPeriod(),
		MeterNumber:    b.MeterNumber(),
		PreviousRead:   b.PreviousRead().StringFixed(2),
		CurrentRead:    b.CurrentRead().StringFixed(2),
		ConsumptionKWh: b.ConsumptionKWh().StringFixed(2),
		AmountDue:      b.AmountDue().StringFixed(2),
		AmountPaid:     b.AmountPaid().StringFixed(2),
		Outstanding:    b.Outstanding().StringFixed(2),
		Status:         string(b.Status()),
		StatusBadge:    viewmodels.BillStatusBadge(string(b.Status())),
		HasDispute:     b.HasDispute(),
		IssuedAt:       b.IssuedAt().Format(time.RFC3339),
		DueAt:          b.DueAt().Format(time.RFC3339),
	}
}

func PaymentToViewModel(p payment.Payment) viewmodels.Payment {
	return viewmodels.Payment{
		ID:            p.ID,
		CustomerID:    p.CustomerID,
		AccountNumber: p.AccountNumber,
		CustomerName:  p.CustomerName,
		Amount:        p.Amount.StringFixed(2),
		Channel:       string(p.Channel),
		Status:        string(p.Status),
		StatusBadge:   viewmodels.PaymentStatusBadge(string(p.Status)),
		Reference:     p.Reference,
		PaidAt:        p.PaidAt.Format(time.RFC3339),
	}
}

func DebtItemToViewModel(item debt.Item) viewmodels.DebtItem {
	buckets := make([]viewmodels.DebtBucket, 0, len(item.Buckets))
	for _, b := range item.Buckets {
		buckets = append(buckets, viewmodels.DebtBucket{
			Label:  b.Label,
			Amount: b.Amount.StringFixed(2),
		})
	}
	vm := viewmodels.DebtItem{
		ID:            item.ID,
		CustomerID:    item.CustomerID,
		AccountNumber: item.AccountNumber,
		CustomerName:  item.CustomerName,
		Stage:         string(item.Stage),
		StageBadge:    viewmodels.DebtStageBadge(string(item.Stage)),
		Buckets:       buckets,
		Outstanding:   item.Outstanding().StringFixed(2),
	}
	if item.LastPaymentAt.Unix() > 0 {
		vm.LastPaymentAt = item.LastPaymentAt.Format(time.RFC3339)
	}
	return vm
}

func AllocationPreviewToViewModel(item debt.Item, amount decimal.Decimal, allocations []debt.Allocation, remainder decimal.Decimal) viewmodels.AllocationPreview {
	rows := make([]viewmodels.DebtAllocation, 0, len(allocations))
	for _, a := range allocations {
		rows = append(rows, viewmodels.DebtAllocation{
			Bucket:    a.Bucket.Label,
			Due:       a.Bucket.Amount.StringFixed(2),
			Allocated: a.Allocated.StringFixed(2),
		})
	}
	return viewmodels.AllocationPreview{
		Item:        DebtItemToViewModel(item),
		Amount:      amount.StringFixed(2),
		Allocations: rows,
		Remainder:   remainder.StringFixed(2),
	}
}

func ChangeRequestToViewModel(r changerequest.Request) viewmodels.ChangeRequest {
	vm := viewmodels.ChangeRequest{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		AccountNumber: r.AccountNumber,
		Type:          string(r.Type),
		Status:        string(r.Status),
		StatusBadge:   viewmodels.ChangeRequestBadge(string(r.Status)),
		Summary:       r.Summary,
		RaisedBy:      r.RaisedBy,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.ResolvedAt.Unix() > 0 {
		vm.ResolvedAt = r.ResolvedAt.Format(time.RFC3339)
	}
	return vm
}

func QualityIssueToViewModel(i quality.Issue) viewmodels.QualityIssue {
	return viewmodels.QualityIssue{
		ID:            i.ID,
		Category:      i.Category,
		Severity:      string(i.Severity),
		SeverityBadge: viewmodels.SeverityBadge(string(i.Severity)),
		Status:        string(i.Status),
		EntityKind:    i.EntityKind,
		EntityID:      i.EntityID,
		Detail:        i.Detail,
		DetectedAt:    i.DetectedAt.Format(time.RFC3339),
	}
}
