package controllers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/quality"
	"github.com/blumenos/gridadmin/modules/billing/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/billing/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/billing/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/configuration"
	"github.com/blumenos/gridadmin/pkg/httpapi"
	"github.com/blumenos/gridadmin/pkg/listview"
)

var qualitySortKeys = map[string]string{
	"createdAt": "q.created_at",
	"severity":  "q.severity",
	"status":    "q.status",
}

type QualityAPIController struct {
	app      application.Application
	service  *services.QualityService
	basePath string
}

func NewQualityAPIController(app application.Application) application.Controller {
	return &QualityAPIController{
		app:      app,
		service:  app.Service(services.QualityService{}).(*services.QualityService),
		basePath: "/billing/api/quality-issues",
	}
}

func (c *QualityAPIController) Key() string {
	return c.basePath
}

func (c *QualityAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

func (c *QualityAPIController) List(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	params := quality.FindParams{
		Limit:    pagination.Limit(),
		Offset:   pagination.Offset(),
		Query:    composables.GetLastQueryParam(r, "Search"),
		Severity: quality.Severity(strings.ToLower(composables.GetLastQueryParam(r, "Severity"))),
		Status:   quality.Status(strings.ToLower(composables.GetLastQueryParam(r, "Status"))),
		Sort:     listview.ParseSort(r, qualitySortKeys, listview.Sort{Field: "createdAt", Desc: true}),
	}
	total, err := c.service.Count(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	issues, err := c.service.GetPaginated(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	items := make([]viewmodels.QualityIssue, 0, len(issues))
	for _, issue := range issues {
		items = append(items, mappers.QualityIssueToViewModel(issue))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *QualityAPIController) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("quality issue list failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
