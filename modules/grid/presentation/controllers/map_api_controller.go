package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/blumenos/gridadmin/modules/grid/domain/entities/mappoint"
	"github.com/blumenos/gridadmin/modules/grid/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/grid/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/grid/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/httpapi"
)

type MapAPIController struct {
	app        application.Application
	mapService *services.MapService
	basePath   string
}

func NewMapAPIController(app application.Application) application.Controller {
	return &MapAPIController{
		app:        app,
		mapService: app.Service(services.MapService{}).(*services.MapService),
		basePath:   "/grid/api/map",
	}
}

func (c *MapAPIController) Key() string {
	return c.basePath
}

func (c *MapAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Markers).Methods(http.MethodGet)
}

// Markers serves the Leaflet overlay: points filtered by bounding box, kind
// and status, each carrying its status color.
func (c *MapAPIController) Markers(w http.ResponseWriter, r *http.Request) {
	params := mappoint.FindParams{
		Kind:   mappoint.Kind(strings.ToLower(composables.GetLastQueryParam(r, "Kind"))),
		Status: strings.ToLower(composables.GetLastQueryParam(r, "Status")),
		Bounds: parseBounds(r),
	}
	markers, err := c.mapService.Markers(r.Context(), params)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("map markers failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
		return
	}
	items := make([]viewmodels.MapMarker, 0, len(markers))
	for _, m := range markers {
		items = append(items, mappers.MarkerToViewModel(m))
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, items)
}

// parseBounds reads MinLat/MaxLat/MinLon/MaxLon. A partial box is ignored so
// the map falls back to the capped full set instead of a skewed slice.
func parseBounds(r *http.Request) mappoint.Bounds {
	read := func(key string) (float64, bool) {
		v, err := strconv.ParseFloat(composables.GetLastQueryParam(r, key), 64)
		return v, err == nil
	}
	minLat, ok1 := read("MinLat")
	maxLat, ok2 := read("MaxLat")
	minLon, ok3 := read("MinLon")
	maxLon, ok4 := read("MaxLon")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return mappoint.Bounds{}
	}
	return mappoint.Bounds{MinLat: minLat, MaxLat: maxLat, MinLon: minLon, MaxLon: maxLon}
}
