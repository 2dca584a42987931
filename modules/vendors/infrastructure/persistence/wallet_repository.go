package persistence

import (
	"context"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/vendors/domain/entities/wallet"
	"github.com/blumenos/gridadmin/pkg/composables"
)

const (
	selectWalletQuery = `SELECT vendor_id, balance_kobo, updated_at FROM vendor_wallets WHERE vendor_id = $1`
	upsertWalletQuery = `
		INSERT INTO vendor_wallets (vendor_id, balance_kobo, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (vendor_id) DO UPDATE SET balance_kobo = $2, updated_at = now()
		RETURNING updated_at`
	insertEntryQuery = `
		INSERT INTO vendor_wallet_entries (vendor_id, amount_kobo, reference)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	selectEntriesQuery = `
		SELECT id, vendor_id, amount_kobo, reference, created_at
		FROM vendor_wallet_entries
		WHERE vendor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	countEntriesQuery = `SELECT COUNT(*) FROM vendor_wallet_entries WHERE vendor_id = $1`
)

type WalletRepository struct{}

func NewWalletRepository() *WalletRepository {
	return &WalletRepository{}
}

// GetByVendorID returns the vendor wallet, or a zero-balance wallet when the
// vendor has never been funded.
func (r *WalletRepository) GetByVendorID(ctx context.Context, vendorID uint) (wallet.Wallet, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return wallet.Wallet{}, err
	}
	var (
		balance   int64
		updatedAt time.Time
	)
	err = tx.QueryRow(ctx, selectWalletQuery, vendorID).Scan(&vendorID, &balance, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wallet.New(vendorID), nil
		}
		return wallet.Wallet{}, errors.Wrap(err, "failed to query vendor wallet")
	}
	return wallet.Wallet{
		VendorID:  vendorID,
		Balance:   money.New(balance, money.NGN),
		UpdatedAt: updatedAt,
	}, nil
}

func (r *WalletRepository) Save(ctx context.Context, w wallet.Wallet) (wallet.Wallet, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return wallet.Wallet{}, err
	}
	var updatedAt time.Time
	if err := tx.QueryRow(ctx, upsertWalletQuery, w.VendorID, w.Balance.Amount()).Scan(&updatedAt); err != nil {
		return wallet.Wallet{}, errors.Wrap(err, "failed to save vendor wallet")
	}
	w.UpdatedAt = updatedAt
	return w, nil
}

func (r *WalletRepository) AddEntry(ctx context.Context, e wallet.Entry) (wallet.Entry, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return wallet.Entry{}, err
	}
	if err := tx.QueryRow(ctx, insertEntryQuery, e.VendorID, e.Amount.Amount(), e.Reference).Scan(&e.ID, &e.CreatedAt); err != nil {
		return wallet.Entry{}, errors.Wrap(err, "failed to insert wallet entry")
	}
	return e, nil
}

func (r *WalletRepository) Entries(ctx context.Context, vendorID uint, limit, offset int) ([]wallet.Entry, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := tx.QueryRow(ctx, countEntriesQuery, vendorID).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "failed to count wallet entries")
	}
	rows, err := tx.Query(ctx, selectEntriesQuery, vendorID, limit, offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to query wallet entries")
	}
	defer rows.Close()
	entries := make([]wallet.Entry, 0)
	for rows.Next() {
		var (
			e      wallet.Entry
			amount int64
		)
		if err := rows.Scan(&e.ID, &e.VendorID, &amount, &e.Reference, &e.CreatedAt); err != nil {
			return nil, 0, errors.Wrap(err, "failed to scan wallet entry")
		}
		e.Amount = money.New(amount, money.NGN)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "failed to iterate wallet entries")
	}
	return entries, total, nil
}
