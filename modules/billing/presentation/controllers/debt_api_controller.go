package controllers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/debt"
	"github.com/blumenos/gridadmin/modules/billing/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/billing/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/billing/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/billing/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/configuration"
	"github.com/blumenos/gridadmin/pkg/httpapi"
	"github.com/blumenos/gridadmin/pkg/listview"
	"github.com/blumenos/gridadmin/pkg/shared"
)

var debtSortKeys = map[string]string{
	"stage":         "d.stage",
	"lastPaymentAt": "d.last_payment_at",
}

type DebtAPIController struct {
	app         application.Application
	debtService *services.DebtService
	basePath    string
}

func NewDebtAPIController(app application.Application) application.Controller {
	return &DebtAPIController{
		app:         app,
		debtService: app.Service(services.DebtService{}).(*services.DebtService),
		basePath:    "/billing/api/debt",
	}
}

func (c *DebtAPIController) Key() string {
	return c.basePath
}

func (c *DebtAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}/allocation", c.AllocationPreview).Methods(http.MethodGet)
}

func (c *DebtAPIController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	params := debt.FindParams{
		Limit:  pagination.Limit(),
		Offset: pagination.Offset(),
		Query:  composables.GetLastQueryParam(r, "Search"),
		Stage:  debt.Stage(strings.ToLower(composables.GetLastQueryParam(r, "Stage"))),
		Sort:   listview.ParseSort(r, debtSortKeys, listview.Sort{}),
	}
	total, err := c.debtService.Count(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	entities, err := c.debtService.GetPaginated(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	items := make([]viewmodels.DebtItem, 0, len(entities))
	for _, item := range entities {
		items = append(items, mappers.DebtItemToViewModel(item))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *DebtAPIController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Debt record ID must be numeric")
		return
	}
	item, err := c.debtService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrDebtItemNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "DEBT_ITEM_NOT_FOUND", "Debt recovery record not found")
			return
		}
		c.writeInternal(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.DebtItemToViewModel(item))
}

// AllocationPreview answers "if the customer pays N naira, what gets
// settled": oldest buckets first, remainder reported as credit.
func (c *DebtAPIController) AllocationPreview(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Debt record ID must be numeric")
		return
	}
	amount, err := decimal.NewFromString(composables.GetLastQueryParam(r, "Amount"))
	if err != nil || amount.Sign() <= 0 {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be a positive number")
		return
	}
	item, allocations, remainder, err := c.debtService.PreviewAllocation(r.Context(), id, amount)
	if err != nil {
		if errors.Is(err, persistence.ErrDebtItemNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "DEBT_ITEM_NOT_FOUND", "Debt recovery record not found")
			return
		}
		c.writeInternal(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.AllocationPreviewToViewModel(item, amount, allocations, remainder))
}

func (c *DebtAPIController) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("debt request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
