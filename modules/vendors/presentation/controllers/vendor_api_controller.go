package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/vendors/domain/aggregates/vendor"
	"github.com/blumenos/gridadmin/modules/vendors/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/vendors/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/vendors/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/vendors/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/configuration"
	"github.com/blumenos/gridadmin/pkg/httpapi"
	"github.com/blumenos/gridadmin/pkg/listview"
	"github.com/blumenos/gridadmin/pkg/middleware"
	"github.com/blumenos/gridadmin/pkg/serrors"
	"github.com/blumenos/gridadmin/pkg/shared"
)

var vendorSortKeys = map[string]string{
	"name":      "name",
	"status":    "status",
	"createdAt": "created_at",
}

type VendorAPIController struct {
	app           application.Application
	vendorService *services.VendorService
	basePath      string
}

func NewVendorAPIController(app application.Application) application.Controller {
	return &VendorAPIController{
		app:           app,
		vendorService: app.Service(services.VendorService{}).(*services.VendorService),
		basePath:      "/vendors/api/vendors",
	}
}

func (c *VendorAPIController) Key() string {
	return c.basePath
}

func (c *VendorAPIController) Register(r *mux.Router) {
	getRouter := r.PathPrefix(c.basePath).Subrouter()
	getRouter.HandleFunc("", c.List).Methods(http.MethodGet)
	getRouter.HandleFunc("/{id:[0-9]+}", c.GetByID).Methods(http.MethodGet)
	getRouter.HandleFunc("/{id:[0-9]+}/wallet", c.Wallet).Methods(http.MethodGet)
	getRouter.HandleFunc("/{id:[0-9]+}/wallet/entries", c.WalletEntries).Methods(http.MethodGet)

	setRouter := r.PathPrefix(c.basePath).Subrouter()
	setRouter.Use(middleware.WithTransaction())
	setRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}/activate", c.Activate).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}/suspend", c.Suspend).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}/reinstate", c.Reinstate).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}/commission", c.SetCommission).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}/api-key", c.RegenerateAPIKey).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}/wallet/topup", c.TopUp).Methods(http.MethodPost)
}

func (c *VendorAPIController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	params := vendor.FindParams{
		Limit:  pagination.Limit(),
		Offset: pagination.Offset(),
		Query:  composables.GetLastQueryParam(r, "Search"),
		Status: vendor.Status(strings.ToUpper(composables.GetLastQueryParam(r, "Status"))),
		Sort:   listview.ParseSort(r, vendorSortKeys, listview.Sort{Field: "createdAt", Desc: true}),
	}
	total, err := c.vendorService.Count(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	entities, err := c.vendorService.GetPaginated(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	items := make([]viewmodels.Vendor, 0, len(entities))
	for _, v := range entities {
		items = append(items, mappers.VendorToViewModel(v))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *VendorAPIController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Vendor ID must be numeric")
		return
	}
	entity, err := c.vendorService.GetByID(r.Context(), id)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.VendorToViewModel(entity))
}

func (c *VendorAPIController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &vendor.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if ve, ok := dto.Ok(); !ok {
		_ = httpapi.WriteValidationError(w, "VALIDATION_FAILED", ve.Summary(), ve)
		return
	}
	created, err := c.vendorService.Create(r.Context(), dto)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusCreated, mappers.VendorToViewModel(created))
}

func (c *VendorAPIController) Activate(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.vendorService.Activate)
}

func (c *VendorAPIController) Reinstate(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.vendorService.Reinstate)
}

func (c *VendorAPIController) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uint) (vendor.Vendor, error)) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Vendor ID must be numeric")
		return
	}
	updated, err := fn(r.Context(), id)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.VendorToViewModel(updated))
}

func (c *VendorAPIController) Suspend(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Vendor ID must be numeric")
		return
	}
	dto := &vendor.SuspendDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if ve, ok := dto.Ok(); !ok {
		_ = httpapi.WriteValidationError(w, "VALIDATION_FAILED", ve.Summary(), ve)
		return
	}
	updated, err := c.vendorService.Suspend(r.Context(), id, dto)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.VendorToViewModel(updated))
}

func (c *VendorAPIController) SetCommission(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Vendor ID must be numeric")
		return
	}
	dto := &vendor.CommissionDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if ve, ok := dto.Ok(); !ok {
		_ = httpapi.WriteValidationError(w, "VALIDATION_FAILED", ve.Summary(), ve)
		return
	}
	updated, err := c.vendorService.SetCommission(r.Context(), id, dto)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.VendorToViewModel(updated))
}

func (c *VendorAPIController) RegenerateAPIKey(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Vendor ID must be numeric")
		return
	}
	plaintext, updated, err := c.vendorService.RegenerateAPIKey(r.Context(), id)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, viewmodels.APIKeyReveal{
		APIKey: plaintext,
		Vendor: mappers.VendorToViewModel(updated),
	})
}

func (c *VendorAPIController) Wallet(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Vendor ID must be numeric")
		return
	}
	wlt, err := c.vendorService.Wallet(r.Context(), id)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.WalletToViewModel(wlt))
}

func (c *VendorAPIController) WalletEntries(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Vendor ID must be numeric")
		return
	}
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	entries, total, err := c.vendorService.WalletEntries(r.Context(), id, pagination.Limit(), pagination.Offset())
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	items := make([]viewmodels.WalletEntry, 0, len(entries))
	for _, e := range entries {
		items = append(items, mappers.WalletEntryToViewModel(e))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *VendorAPIController) TopUp(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Vendor ID must be numeric")
		return
	}
	dto := &vendor.TopUpDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if ve, ok := dto.Ok(); !ok {
		_ = httpapi.WriteValidationError(w, "VALIDATION_FAILED", ve.Summary(), ve)
		return
	}
	wlt, err := c.vendorService.TopUp(r.Context(), id, dto)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.WalletToViewModel(wlt))
}

func (c *VendorAPIController) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var base *serrors.Base
	if errors.As(err, &base) {
		status := http.StatusConflict
		if base == persistence.ErrVendorNotFound {
			status = http.StatusNotFound
		}
		_ = httpapi.WriteError(w, status, base.Code, base.Message)
		return
	}
	c.writeInternal(w, r, err)
}

func (c *VendorAPIController) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("vendor request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
