package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/modules/vendors/domain/aggregates/vendor"
	"github.com/blumenos/gridadmin/modules/vendors/domain/entities/wallet"
	"github.com/blumenos/gridadmin/pkg/eventbus"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var (
	ErrNotSuspended     = serrors.NewError("VENDOR_NOT_SUSPENDED", "Only suspended vendors can be reinstated", "")
	ErrAlreadySuspended = serrors.NewError("VENDOR_ALREADY_SUSPENDED", "Vendor is already suspended", "")
)

type VendorService struct {
	repo      vendor.Repository
	wallets   wallet.Repository
	publisher eventbus.EventBus
}

func NewVendorService(repo vendor.Repository, wallets wallet.Repository, publisher eventbus.EventBus) *VendorService {
	return &VendorService{
		repo:      repo,
		wallets:   wallets,
		publisher: publisher,
	}
}

func (s *VendorService) Count(ctx context.Context, params vendor.FindParams) (int64, error) {
	return s.repo.Count(ctx, params)
}

func (s *VendorService) GetPaginated(ctx context.Context, params vendor.FindParams) ([]vendor.Vendor, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *VendorService) GetByID(ctx context.Context, id uint) (vendor.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VendorService) Create(ctx context.Context, dto *vendor.CreateDTO) (vendor.Vendor, error) {
	created, err := s.repo.Create(ctx, dto.ToEntity())
	if err != nil {
		return vendor.Vendor{}, err
	}
	s.publisher.Publish(vendor.CreatedEvent{Result: created})
	return created, nil
}

func (s *VendorService) Activate(ctx context.Context, id uint) (vendor.Vendor, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vendor.Vendor{}, err
	}
	if existing.Status() == vendor.StatusSuspended {
		return vendor.Vendor{}, ErrNotSuspended
	}
	return s.repo.Update(ctx, existing.Activate())
}

func (s *VendorService) Suspend(ctx context.Context, id uint, dto *vendor.SuspendDTO) (vendor.Vendor, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vendor.Vendor{}, err
	}
	if existing.Status() == vendor.StatusSuspended {
		return vendor.Vendor{}, ErrAlreadySuspended
	}
	updated, err := s.repo.Update(ctx, existing.Suspend(dto.Reason))
	if err != nil {
		return vendor.Vendor{}, err
	}
	s.publisher.Publish(vendor.SuspendedEvent{Result: updated, Reason: dto.Reason})
	return updated, nil
}

func (s *VendorService) Reinstate(ctx context.Context, id uint) (vendor.Vendor, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vendor.Vendor{}, err
	}
	if existing.Status() != vendor.StatusSuspended {
		return vendor.Vendor{}, ErrNotSuspended
	}
	updated, err := s.repo.Update(ctx, existing.Reinstate())
	if err != nil {
		return vendor.Vendor{}, err
	}
	s.publisher.Publish(vendor.ReinstatedEvent{Result: updated})
	return updated, nil
}

func (s *VendorService) SetCommission(ctx context.Context, id uint, dto *vendor.CommissionDTO) (vendor.Vendor, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vendor.Vendor{}, err
	}
	return s.repo.Update(ctx, existing.WithCommission(decimal.NewFromFloat(dto.Commission)))
}

// RegenerateAPIKey issues a fresh key and stores only its hash. The plaintext
// key is returned exactly once and cannot be recovered afterwards.
func (s *VendorService) RegenerateAPIKey(ctx context.Context, id uint) (string, vendor.Vendor, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", vendor.Vendor{}, err
	}
	plaintext := uuid.New().String()
	sum := sha256.Sum256([]byte(plaintext))
	updated, err := s.repo.Update(ctx, existing.WithAPIKey(hex.EncodeToString(sum[:]), time.Now()))
	if err != nil {
		return "", vendor.Vendor{}, err
	}
	s.publisher.Publish(vendor.APIKeyRotatedEvent{VendorID: id})
	return plaintext, updated, nil
}

func (s *VendorService) Wallet(ctx context.Context, vendorID uint) (wallet.Wallet, error) {
	if _, err := s.repo.GetByID(ctx, vendorID); err != nil {
		return wallet.Wallet{}, err
	}
	return s.wallets.GetByVendorID(ctx, vendorID)
}

func (s *VendorService) WalletEntries(ctx context.Context, vendorID uint, limit, offset int) ([]wallet.Entry, int64, error) {
	if _, err := s.repo.GetByID(ctx, vendorID); err != nil {
		return nil, 0, err
	}
	return s.wallets.Entries(ctx, vendorID, limit, offset)
}

// TopUp credits the vendor wallet and writes the ledger entry. The naira
// amount is converted to kobo here, at the money boundary.
func (s *VendorService) TopUp(ctx context.Context, vendorID uint, dto *vendor.TopUpDTO) (wallet.Wallet, error) {
	if _, err := s.repo.GetByID(ctx, vendorID); err != nil {
		return wallet.Wallet{}, err
	}
	w, err := s.wallets.GetByVendorID(ctx, vendorID)
	if err != nil {
		return wallet.Wallet{}, err
	}
	amount := money.New(int64(math.Round(dto.Amount*100)), money.NGN)
	w, err = w.TopUp(amount)
	if err != nil {
		return wallet.Wallet{}, err
	}
	w, err = s.wallets.Save(ctx, w)
	if err != nil {
		return wallet.Wallet{}, err
	}
	if _, err := s.wallets.AddEntry(ctx, wallet.Entry{
		VendorID:  vendorID,
		Amount:    amount,
		Reference: dto.Reference,
	}); err != nil {
		return wallet.Wallet{}, err
	}
	return w, nil
}
