package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/changerequest"
	"github.com/blumenos/gridadmin/modules/billing/domain/entities/debt"
	"github.com/blumenos/gridadmin/modules/billing/domain/entities/payment"
	"github.com/blumenos/gridadmin/modules/billing/domain/entities/quality"
)

type PaymentService struct {
	repo payment.Repository
}

func NewPaymentService(repo payment.Repository) *PaymentService {
	return &PaymentService{repo: repo}
}

func (s *PaymentService) Count(ctx context.Context, params payment.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *PaymentService) GetPaginated(ctx context.Context, params payment.FindParams) ([]payment.Payment, error) {
	return s.repo.GetPaginated(ctx, params)
}

type DebtService struct {
	repo debt.Repository
}

func NewDebtService(repo debt.Repository) *DebtService {
	return &DebtService{repo: repo}
}

func (s *DebtService) Count(ctx context.Context, params debt.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *DebtService) GetPaginated(ctx context.Context, params debt.FindParams) ([]debt.Item, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *DebtService) GetByID(ctx context.Context, id uint) (debt.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// PreviewAllocation shows how a hypothetical payment would settle the
// customer's aged debt, oldest buckets first.
func (s *DebtService) PreviewAllocation(ctx context.Context, id uint, amount decimal.Decimal) (debt.Item, []debt.Allocation, decimal.Decimal, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return debt.Item{}, nil, decimal.Zero, err
	}
	allocations, remainder := debt.AllocatePayment(amount, item.Buckets)
	return item, allocations, remainder, nil
}

type ChangeRequestService struct {
	repo changerequest.Repository
}

func NewChangeRequestService(repo changerequest.Repository) *ChangeRequestService {
	return &ChangeRequestService{repo: repo}
}

func (s *ChangeRequestService) Count(ctx context.Context, params changerequest.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *ChangeRequestService) GetPaginated(ctx context.Context, params changerequest.FindParams) ([]changerequest.Request, error) {
	return s.repo.GetPaginated(ctx, params)
}

type QualityService struct {
	repo quality.Repository
}

func NewQualityService(repo quality.Repository) *QualityService {
	return &QualityService{repo: repo}
}

func (s *QualityService) Count(ctx context.Context, params quality.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *QualityService) GetPaginated(ctx context.Context, params quality.FindParams) ([]quality.Issue, error) {
	return s.repo.GetPaginated(ctx, params)
}
