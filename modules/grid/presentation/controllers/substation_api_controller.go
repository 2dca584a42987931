package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/grid/domain/aggregates/substation"
	"github.com/blumenos/gridadmin/modules/grid/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/grid/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/grid/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/grid/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/composables"
	"github.com/blumenos/gridadmin/pkg/configuration"
	"github.com/blumenos/gridadmin/pkg/csvimport"
	"github.com/blumenos/gridadmin/pkg/httpapi"
	"github.com/blumenos/gridadmin/pkg/listview"
	"github.com/blumenos/gridadmin/pkg/middleware"
	"github.com/blumenos/gridadmin/pkg/serrors"
	"github.com/blumenos/gridadmin/pkg/shared"
)

var substationSortKeys = map[string]string{
	"newDssCode":          "new_code",
	"nercCode":            "nerc_code",
	"transformerCapacity": "transformer_capacity",
	"status":              "status",
	"createdAt":           "created_at",
}

type SubstationAPIController struct {
	app               application.Application
	substationService *services.SubstationService
	basePath          string
}

func NewSubstationAPIController(app application.Application) application.Controller {
	return &SubstationAPIController{
		app:               app,
		substationService: app.Service(services.SubstationService{}).(*services.SubstationService),
		basePath:          "/grid/api/substations",
	}
}

func (c *SubstationAPIController) Key() string {
	return c.basePath
}

func (c *SubstationAPIController) Register(r *mux.Router) {
	getRouter := r.PathPrefix(c.basePath).Subrouter()
	getRouter.HandleFunc("", c.List).Methods(http.MethodGet)
	getRouter.HandleFunc("/template", c.Template).Methods(http.MethodGet)
	getRouter.HandleFunc("/{id:[0-9]+}", c.GetByID).Methods(http.MethodGet)

	setRouter := r.PathPrefix(c.basePath).Subrouter()
	setRouter.Use(middleware.WithTransaction())
	setRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	setRouter.HandleFunc("/bulk", c.BulkImport).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}", c.Update).Methods(http.MethodPut)
	setRouter.HandleFunc("/{id:[0-9]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *SubstationAPIController) findParams(r *http.Request) (substation.FindParams, listview.Pagination) {
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	params := substation.FindParams{
		Limit:  pagination.Limit(),
		Offset: pagination.Offset(),
		Query:  composables.GetLastQueryParam(r, "Search"),
		Status: substation.Status(strings.ToLower(composables.GetLastQueryParam(r, "Status"))),
		Sort:   listview.ParseSort(r, substationSortKeys, listview.Sort{Field: "createdAt", Desc: true}),
	}
	if raw := composables.GetLastQueryParam(r, "FeederId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			params.FeederID = uint(id)
		}
	}
	return params, pagination
}

func (c *SubstationAPIController) List(w http.ResponseWriter, r *http.Request) {
	params, pagination := c.findParams(r)
	total, err := c.substationService.Count(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	entities, err := c.substationService.GetPaginated(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	items := make([]viewmodels.Substation, 0, len(entities))
	for _, e := range entities {
		items = append(items, mappers.SubstationToViewModel(e))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *SubstationAPIController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Substation ID must be numeric")
		return
	}
	entity, err := c.substationService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrSubstationNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "SUBSTATION_NOT_FOUND", "Substation not found")
			return
		}
		c.writeInternal(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.SubstationToViewModel(entity))
}

func (c *SubstationAPIController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &substation.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if ve, ok := dto.Ok(); !ok {
		_ = httpapi.WriteValidationError(w, "VALIDATION_FAILED", ve.Summary(), ve)
		return
	}
	created, err := c.substationService.Create(r.Context(), dto)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusCreated, mappers.SubstationToViewModel(created))
}

func (c *SubstationAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Substation ID must be numeric")
		return
	}
	dto := &substation.UpdateDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if ve, ok := dto.Ok(); !ok {
		_ = httpapi.WriteValidationError(w, "VALIDATION_FAILED", ve.Summary(), ve)
		return
	}
	updated, err := c.substationService.Update(r.Context(), id, dto)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.SubstationToViewModel(updated))
}

func (c *SubstationAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Substation ID must be numeric")
		return
	}
	if err := c.substationService.Delete(r.Context(), id); err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, nil)
}

// BulkImport ingests a CSV upload. The whole batch is rejected when any row
// fails so operators fix the file and re-upload instead of chasing partial
// inserts.
func (c *SubstationAPIController) BulkImport(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	if err := r.ParseMultipartForm(conf.Uploads.MaxMemory); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_UPLOAD", "Expected a multipart file upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_UPLOAD", "Missing file field")
		return
	}
	defer func() { _ = file.Close() }()

	if err := csvimport.SniffUpload(header, file, conf.Uploads.MaxCSVSize); err != nil {
		var base *serrors.Base
		if errors.As(err, &base) {
			_ = httpapi.WriteError(w, http.StatusBadRequest, base.Code, base.Message)
			return
		}
		c.writeInternal(w, r, err)
		return
	}

	result, err := csvimport.Ingest(file, services.SubstationSchema, services.BindSubstation)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	if len(result.Valid) > conf.Uploads.MaxCSVRows {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "CSV_TOO_MANY_ROWS",
			"File exceeds the maximum number of rows per import")
		return
	}
	if !result.OK() {
		_ = httpapi.WriteJSON(w, http.StatusUnprocessableEntity, &httpapi.MutationEnvelope{
			IsSuccess:    false,
			Code:         "CSV_INVALID",
			ErrorMessage: "Import file has errors",
			Data:         result.Messages(),
		})
		return
	}

	created, err := c.substationService.BulkCreate(r.Context(), result.Valid)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusCreated, map[string]int{"imported": len(created)})
}

// Template serves the downloadable import template with a header row and one
// example row.
func (c *SubstationAPIController) Template(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+csvimport.TemplateFilename(services.SubstationSchema)+`"`)
	_, _ = w.Write(csvimport.Template(services.SubstationSchema))
}

func (c *SubstationAPIController) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var base *serrors.Base
	if errors.As(err, &base) {
		status := http.StatusConflict
		if base == persistence.ErrSubstationNotFound || base == persistence.ErrFeederNotFound {
			status = http.StatusNotFound
		}
		_ = httpapi.WriteError(w, status, base.Code, base.Message)
		return
	}
	c.writeInternal(w, r, err)
}

func (c *SubstationAPIController) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("substation request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
