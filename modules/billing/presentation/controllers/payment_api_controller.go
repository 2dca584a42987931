package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/payment"
	"github.com/blumenos/gridadmin/modules/billing/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/billing/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/billing/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/configuration"
	"github.com/blumenos/gridadmin/pkg/httpapi"
	"github.com/blumenos/gridadmin/pkg/listview"
)

var paymentSortKeys = map[string]string{
	"amount": "p.amount",
	"paidAt": "p.paid_at",
	"status": "p.status",
}

type PaymentAPIController struct {
	app            application.Application
	paymentService *services.PaymentService
	basePath       string
}

func NewPaymentAPIController(app application.Application) application.Controller {
	return &PaymentAPIController{
		app:            app,
		paymentService: app.Service(services.PaymentService{}).(*services.PaymentService),
		basePath:       "/billing/api/payments",
	}
}

func (c *PaymentAPIController) Key() string {
	return c.basePath
}

func (c *PaymentAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

func (c *PaymentAPIController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	params := payment.FindParams{
		Limit:   pagination.Limit(),
		Offset:  pagination.Offset(),
		Query:   composables.GetLastQueryParam(r, "Search"),
		Status:  payment.Status(strings.ToLower(composables.GetLastQueryParam(r, "Status"))),
		Channel: payment.Channel(strings.ToLower(composables.GetLastQueryParam(r, "Channel"))),
		Sort:    listview.ParseSort(r, paymentSortKeys, listview.Sort{Field: "paidAt", Desc: true}),
	}
	if raw := composables.GetLastQueryParam(r, "From"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			params.From = t
		}
	}
	if raw := composables.GetLastQueryParam(r, "To"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			// inclusive end of day
			params.To = t.Add(24*time.Hour - time.Nanosecond)
		}
	}
	total, err := c.paymentService.Count(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	payments, err := c.paymentService.GetPaginated(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	items := make([]viewmodels.Payment, 0, len(payments))
	for _, p := range payments {
		items = append(items, mappers.PaymentToViewModel(p))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *PaymentAPIController) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("payment request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
