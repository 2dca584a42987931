package controllers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/changerequest"
	"github.com/blumenos/gridadmin/modules/billing/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/billing/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/billing/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/configuration"
	"github.com/blumenos/gridadmin/pkg/httpapi"
	"github.com/blumenos/gridadmin/pkg/listview"
)

var changeRequestSortKeys = map[string]string{
	"createdAt": "r.created_at",
	"status":    "r.status",
	"type":      "r.type",
}

type ChangeRequestAPIController struct {
	app      application.Application
	service  *services.ChangeRequestService
	basePath string
}

func NewChangeRequestAPIController(app application.Application) application.Controller {
	return &ChangeRequestAPIController{
		app:      app,
		service:  app.Service(services.ChangeRequestService{}).(*services.ChangeRequestService),
		basePath: "/billing/api/change-requests",
	}
}

func (c *ChangeRequestAPIController) Key() string {
	return c.basePath
}

func (c *ChangeRequestAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

func (c *ChangeRequestAPIController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	params := changerequest.FindParams{
		Limit:  pagination.Limit(),
		Offset: pagination.Offset(),
		Query:  composables.GetLastQueryParam(r, "Search"),
		Type:   changerequest.Type(strings.ToLower(composables.GetLastQueryParam(r, "Type"))),
		Status: changerequest.Status(strings.ToLower(composables.GetLastQueryParam(r, "Status"))),
		Sort:   listview.ParseSort(r, changeRequestSortKeys, listview.Sort{Field: "createdAt", Desc: true}),
	}
	total, err := c.service.Count(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	requests, err := c.service.GetPaginated(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	items := make([]viewmodels.ChangeRequest, 0, len(requests))
	for _, req := range requests {
		items = append(items, mappers.ChangeRequestToViewModel(req))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *ChangeRequestAPIController) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("change request list failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
