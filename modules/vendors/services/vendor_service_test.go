package services_test

import (
	"context"
	"testing"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/modules/vendors/domain/aggregates/vendor"
	"github.com/blumenos/gridadmin/modules/vendors/domain/entities/wallet"
	"github.com/blumenos/gridadmin/modules/vendors/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/vendors/services"
	"github.com/blumenos/gridadmin/pkg/eventbus"
	"github.com/blumenos/gridadmin/pkg/logging"
)

type memVendorRepo struct {
	nextID  uint
	vendors map[uint]vendor.Vendor
}

func newMemVendorRepo() *memVendorRepo {
	return &memVendorRepo{nextID: 1, vendors: map[uint]vendor.Vendor{}}
}

func (r *memVendorRepo) Count(context.Context, vendor.FindParams) (int64, error) {
	return int64(len(r.vendors)), nil
}

func (r *memVendorRepo) GetPaginated(context.Context, vendor.FindParams) ([]vendor.Vendor, error) {
	out := make([]vendor.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		out = append(out, v)
	}
	return out, nil
}

func (r *memVendorRepo) GetByID(_ context.Context, id uint) (vendor.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return vendor.Vendor{}, persistence.ErrVendorNotFound
	}
	return v, nil
}

func (r *memVendorRepo) Create(_ context.Context, entity vendor.Vendor) (vendor.Vendor, error) {
	id := r.nextID
	r.nextID++
	created := vendor.Hydrate(
		id, entity.Name(), entity.Email(), entity.Phone(),
		entity.Status(), entity.SuspensionReason(), entity.Commission(),
		entity.AllowPostpaid(), entity.AllowPrepaid(),
		entity.APIKeyHash(), entity.APIKeyIssuedAt(),
		entity.CreatedAt(), entity.UpdatedAt(),
	)
	r.vendors[id] = created
	return created, nil
}

func (r *memVendorRepo) Update(_ context.Context, entity vendor.Vendor) (vendor.Vendor, error) {
	if _, ok := r.vendors[entity.ID()]; !ok {
		return vendor.Vendor{}, persistence.ErrVendorNotFound
	}
	r.vendors[entity.ID()] = entity
	return entity, nil
}

type memWalletRepo struct {
	wallets map[uint]wallet.Wallet
	entries []wallet.Entry
}

func newMemWalletRepo() *memWalletRepo {
	return &memWalletRepo{wallets: map[uint]wallet.Wallet{}}
}

func (r *memWalletRepo) GetByVendorID(_ context.Context, vendorID uint) (wallet.Wallet, error) {
	w, ok := r.wallets[vendorID]
	if !ok {
		return wallet.New(vendorID), nil
	}
	return w, nil
}

func (r *memWalletRepo) Save(_ context.Context, w wallet.Wallet) (wallet.Wallet, error) {
	r.wallets[w.VendorID] = w
	return w, nil
}

func (r *memWalletRepo) AddEntry(_ context.Context, e wallet.Entry) (wallet.Entry, error) {
	e.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *memWalletRepo) Entries(_ context.Context, vendorID uint, _, _ int) ([]wallet.Entry, int64, error) {
	out := make([]wallet.Entry, 0)
	for _, e := range r.entries {
		if e.VendorID == vendorID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func newService(t *testing.T) (*services.VendorService, *memVendorRepo, *memWalletRepo) {
	t.Helper()
	vendors := newMemVendorRepo()
	wallets := newMemWalletRepo()
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.ErrorLevel))
	return services.NewVendorService(vendors, wallets, bus), vendors, wallets
}

func createVendor(t *testing.T, svc *services.VendorService) vendor.Vendor {
	t.Helper()
	created, err := svc.Create(context.Background(), &vendor.CreateDTO{
		Name:         "PayHub Ltd",
		Email:        "ops@payhub.example.com",
		Phone:        "+2348012345678",
		Commission:   2.5,
		AllowPrepaid: true,
	})
	require.NoError(t, err)
	return created
}

func TestVendorService_Create_StartsPending(t *testing.T) {
	svc, _, _ := newService(t)
	created := createVendor(t, svc)
	assert.Equal(t, vendor.StatusPending, created.Status())
	assert.True(t, created.Commission().Equal(decimal.NewFromFloat(2.5)))
}

func TestVendorService_SuspendAndReinstate(t *testing.T) {
	svc, _, _ := newService(t)
	created := createVendor(t, svc)
	ctx := context.Background()

	suspended, err := svc.Suspend(ctx, created.ID(), &vendor.SuspendDTO{Reason: "chargeback fraud investigation"})
	require.NoError(t, err)
	assert.Equal(t, vendor.StatusSuspended, suspended.Status())
	assert.Equal(t, "chargeback fraud investigation", suspended.SuspensionReason())

	_, err = svc.Suspend(ctx, created.ID(), &vendor.SuspendDTO{Reason: "already out"})
	assert.ErrorIs(t, err, services.ErrAlreadySuspended)

	reinstated, err := svc.Reinstate(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, vendor.StatusActive, reinstated.Status())
	assert.Empty(t, reinstated.SuspensionReason())

	_, err = svc.Reinstate(ctx, created.ID())
	assert.ErrorIs(t, err, services.ErrNotSuspended)
}

func TestVendorService_RegenerateAPIKey_StoresOnlyHash(t *testing.T) {
	svc, vendors, _ := newService(t)
	created := createVendor(t, svc)

	plaintext, updated, err := svc.RegenerateAPIKey(context.Background(), created.ID())
	require.NoError(t, err)
	assert.NotEmpty(t, plaintext)
	assert.Len(t, updated.APIKeyHash(), 64)
	assert.NotEqual(t, plaintext, updated.APIKeyHash())

	stored, _ := vendors.GetByID(context.Background(), created.ID())
	assert.Equal(t, updated.APIKeyHash(), stored.APIKeyHash())

	second, _, err := svc.RegenerateAPIKey(context.Background(), created.ID())
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, second)
}

func TestVendorService_TopUp_AccumulatesKobo(t *testing.T) {
	svc, _, _ := newService(t)
	created := createVendor(t, svc)
	ctx := context.Background()

	w, err := svc.TopUp(ctx, created.ID(), &vendor.TopUpDTO{Amount: 1500.50, Reference: "TRF-001"})
	require.NoError(t, err)
	assert.Equal(t, int64(150050), w.Balance.Amount())

	w, err = svc.TopUp(ctx, created.ID(), &vendor.TopUpDTO{Amount: 99.99, Reference: "TRF-002"})
	require.NoError(t, err)
	assert.Equal(t, int64(160049), w.Balance.Amount())
	assert.Equal(t, money.NGN, w.Balance.Currency().Code)

	entries, total, err := svc.WalletEntries(ctx, created.ID(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 2)
}

func TestVendorService_TopUp_UnknownVendor(t *testing.T) {
	svc, _, _ := newService(t)
	_, err := svc.TopUp(context.Background(), 999, &vendor.TopUpDTO{Amount: 10, Reference: "TRF"})
	assert.ErrorIs(t, err, persistence.ErrVendorNotFound)
}
