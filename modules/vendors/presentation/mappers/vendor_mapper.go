package mappers

import (
	"time"

	"github.com/blumenos/gridadmin/modules/vendors/domain/aggregates/vendor"
	"github.com/blumenos/gridadmin/modules/vendors/domain/entities/wallet"
	"github.com/blumenos/gridadmin/modules/vendors/presentation/viewmodels"
)

func VendorToViewModel(entity vendor.Vendor) viewmodels.Vendor {
	vm := viewmodels.Vendor{
		ID:               entity.ID(),
		Name:             entity.Name(),
		Email:            entity.Email(),
		Phone:            entity.Phone(),
		Status:           string(entity.Status()),
		SuspensionReason: entity.SuspensionReason(),
		Commission:       entity.Commission().StringFixed(2),
		AllowPostpaid:    entity.AllowPostpaid(),
		AllowPrepaid:     entity.AllowPrepaid(),
		HasAPIKey:        entity.APIKeyHash() != "",
		CreatedAt:        entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:        entity.UpdatedAt().Format(time.RFC3339),
	}
	if vm.HasAPIKey && entity.APIKeyIssuedAt().Unix() > 0 {
		vm.APIKeyIssuedAt = entity.APIKeyIssuedAt().Format(time.RFC3339)
	}
	return vm
}

func WalletToViewModel(w wallet.Wallet) viewmodels.Wallet {
	return viewmodels.Wallet{
		VendorID:  w.VendorID,
		Balance:   w.Balance.Display(),
		Currency:  w.Balance.Currency().Code,
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
}

func WalletEntryToViewModel(e wallet.Entry) viewmodels.WalletEntry {
	return viewmodels.WalletEntry{
		ID:        e.ID,
		VendorID:  e.VendorID,
		Amount:    e.Amount.Display(),
		Reference: e.Reference,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
