package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/blumenos/gridadmin/modules/grid/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/grid/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/grid/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/httpapi"
)

type FeederAPIController struct {
	app           application.Application
	feederService *services.FeederService
	basePath      string
}

func NewFeederAPIController(app application.Application) application.Controller {
	return &FeederAPIController{
		app:           app,
		feederService: app.Service(services.FeederService{}).(*services.FeederService),
		basePath:      "/grid/api/feeders",
	}
}

func (c *FeederAPIController) Key() string {
	return c.basePath
}

func (c *FeederAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/options", c.Options).Methods(http.MethodGet)
}

func (c *FeederAPIController) List(w http.ResponseWriter, r *http.Request) {
	feeders, err := c.feederService.GetAll(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("feeder list failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
		return
	}
	items := make([]viewmodels.Feeder, 0, len(feeders))
	for _, f := range feeders {
		items = append(items, mappers.FeederToViewModel(f))
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, items)
}

// Options serves the type-ahead feeder picker: fuzzy-ranked {value, label}
// pairs for the Query parameter.
func (c *FeederAPIController) Options(w http.ResponseWriter, r *http.Request) {
	feeders, err := c.feederService.Search(r.Context(), composables.GetLastQueryParam(r, "Query"))
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("feeder search failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
		return
	}
	options := make([]viewmodels.FeederOption, 0, len(feeders))
	for _, f := range feeders {
		options = append(options, mappers.FeederToOption(f))
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, options)
}
