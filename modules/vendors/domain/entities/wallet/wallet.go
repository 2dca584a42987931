package wallet

import (
	"context"
	"time"

	"github.com/Rhymond/go-money"
)

// Wallet holds a vendor's vending float in naira. Balances are stored as
// kobo so arithmetic never touches floats.
type Wallet struct {
	VendorID  uint
	Balance   *money.Money
	UpdatedAt time.Time
}

func New(vendorID uint) Wallet {
	return Wallet{
		VendorID: vendorID,
		Balance:  money.New(0, money.NGN),
	}
}

// TopUp adds a credit to the wallet. Amount must share the wallet currency.
func (w Wallet) TopUp(amount *money.Money) (Wallet, error) {
	sum, err := w.Balance.Add(amount)
	if err != nil {
		return w, err
	}
	w.Balance = sum
	return w, nil
}

// Entry is one wallet ledger line.
type Entry struct {
	ID        uint
	VendorID  uint
	Amount    *money.Money
	Reference string
	CreatedAt time.Time
}

type Repository interface {
	GetByVendorID(ctx context.Context, vendorID uint) (Wallet, error)
	Save(ctx context.Context, w Wallet) (Wallet, error)
	AddEntry(ctx context.Context, e Entry) (Entry, error)
	Entries(ctx context.Context, vendorID uint, limit, offset int) ([]Entry, int64, error)
}
