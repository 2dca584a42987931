package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/billing/domain/aggregates/bill"
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

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BillAPIController struct {
	app         application.Application
	billService *services.BillService
	basePath    string
}

func NewBillAPIController(app application.Application) application.Controller {
	return &BillAPIController{
		app:         app,
		billService: app.Service(services.BillService{}).(*services.BillService),
		basePath:    "/billing/api/bills",
	}
}

func (c *BillAPIController) Key() string {
	return c.basePath
}

func (c *BillAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9]+}/export", c.ExportOne).Methods(http.MethodGet)
}

func (c *BillAPIController) findParams(r *http.Request) (bill.FindParams, listview.Pagination) {
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	params := bill.FindParams{
		Limit:  pagination.Limit(),
		Offset: pagination.Offset(),
		Query:  composables.GetLastQueryParam(r, "Search"),
		Status: bill.Status(strings.ToLower(composables.GetLastQueryParam(r, "Status"))),
	}
	if raw := composables.GetLastQueryParam(r, "CustomerId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			params.CustomerID = uint(id)
		}
	}
	return params, pagination
}

func (c *BillAPIController) List(w http.ResponseWriter, r *http.Request) {
	params, pagination := c.findParams(r)
	total, err := c.billService.Count(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	bills, err := c.billService.GetPaginated(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	items := make([]viewmodels.Bill, 0, len(bills))
	for _, b := range bills {
		items = append(items, mappers.BillToViewModel(b))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *BillAPIController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Bill ID must be numeric")
		return
	}
	b, err := c.billService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrBillNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "BILL_NOT_FOUND", "Bill not found")
			return
		}
		c.writeInternal(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.BillToViewModel(b))
}

func (c *BillAPIController) Export(w http.ResponseWriter, r *http.Request) {
	params, _ := c.findParams(r)
	report, err := c.billService.ExportReport(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+services.ReportFilename(params)+`"`)
	_, _ = w.Write(report)
}

func (c *BillAPIController) ExportOne(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Bill ID must be numeric")
		return
	}
	report, err := c.billService.ExportOne(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrBillNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "BILL_NOT_FOUND", "Bill not found")
			return
		}
		c.writeInternal(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="bill-`+strconv.FormatUint(uint64(id), 10)+`.xlsx"`)
	_, _ = w.Write(report)
}

func (c *BillAPIController) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("bill request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
