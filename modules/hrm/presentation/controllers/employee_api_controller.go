package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/blumenos/gridadmin/modules/hrm/domain/aggregates/employee"
	"github.com/blumenos/gridadmin/modules/hrm/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/hrm/presentation/mappers"
	"github.com/blumenos/gridadmin/modules/hrm/presentation/viewmodels"
	"github.com/blumenos/gridadmin/modules/hrm/services"
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

var employeeSortKeys = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"createdAt": "created_at",
}

type EmployeeAPIController struct {
	app             application.Application
	employeeService *services.EmployeeService
	basePath        string
}

func NewEmployeeAPIController(app application.Application) application.Controller {
	return &EmployeeAPIController{
		app:             app,
		employeeService: app.Service(services.EmployeeService{}).(*services.EmployeeService),
		basePath:        "/hrm/api/employees",
	}
}

func (c *EmployeeAPIController) Key() string {
	return c.basePath
}

func (c *EmployeeAPIController) Register(r *mux.Router) {
	getRouter := r.PathPrefix(c.basePath).Subrouter()
	getRouter.HandleFunc("", c.List).Methods(http.MethodGet)
	getRouter.HandleFunc("/template", c.Template).Methods(http.MethodGet)
	getRouter.HandleFunc("/{id:[0-9]+}", c.GetByID).Methods(http.MethodGet)

	setRouter := r.PathPrefix(c.basePath).Subrouter()
	setRouter.Use(middleware.WithTransaction())
	setRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	setRouter.HandleFunc("/bulk", c.BulkImport).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}", c.Update).Methods(http.MethodPut)
	setRouter.HandleFunc("/{id:[0-9]+}/activate", c.Activate).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}/deactivate", c.Deactivate).Methods(http.MethodPost)
}

func (c *EmployeeAPIController) findParams(r *http.Request) (employee.FindParams, listview.Pagination) {
	conf := configuration.Use()
	pagination := listview.ParsePagination(r, conf.PageSize, conf.MaxPageSize)
	params := employee.FindParams{
		Limit:      pagination.Limit(),
		Offset:     pagination.Offset(),
		Query:      composables.GetLastQueryParam(r, "Search"),
		ActiveOnly: composables.GetLastQueryParam(r, "ActiveOnly") == "true",
		Sort:       listview.ParseSort(r, employeeSortKeys, listview.Sort{Field: "createdAt", Desc: true}),
	}
	if raw := composables.GetLastQueryParam(r, "AreaOfficeId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			params.AreaOfficeID = uint(id)
		}
	}
	if raw := composables.GetLastQueryParam(r, "DepartmentId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			params.DepartmentID = uint(id)
		}
	}
	return params, pagination
}

func (c *EmployeeAPIController) List(w http.ResponseWriter, r *http.Request) {
	params, pagination := c.findParams(r)
	total, err := c.employeeService.Count(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	entities, err := c.employeeService.GetPaginated(r.Context(), params)
	if err != nil {
		c.writeInternal(w, r, err)
		return
	}
	items := make([]viewmodels.Employee, 0, len(entities))
	for _, e := range entities {
		items = append(items, mappers.EmployeeToViewModel(e))
	}
	_ = httpapi.WriteList(w, items, total, listview.TotalPages(total, pagination.Size), pagination.Page)
}

func (c *EmployeeAPIController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Employee ID must be numeric")
		return
	}
	entity, err := c.employeeService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrEmployeeNotFound) {
			_ = httpapi.WriteError(w, http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "Employee not found")
			return
		}
		c.writeInternal(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.EmployeeToViewModel(entity))
}

func (c *EmployeeAPIController) Create(w http.ResponseWriter, r *http.Request) {
	dto := &employee.CreateDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if ve, ok := dto.Ok(); !ok {
		_ = httpapi.WriteValidationError(w, "VALIDATION_FAILED", ve.Summary(), ve)
		return
	}
	created, err := c.employeeService.Create(r.Context(), dto)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusCreated, mappers.EmployeeToViewModel(created))
}

func (c *EmployeeAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Employee ID must be numeric")
		return
	}
	dto := &employee.UpdateDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if ve, ok := dto.Ok(); !ok {
		_ = httpapi.WriteValidationError(w, "VALIDATION_FAILED", ve.Summary(), ve)
		return
	}
	updated, err := c.employeeService.Update(r.Context(), id, dto)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.EmployeeToViewModel(updated))
}

func (c *EmployeeAPIController) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Employee ID must be numeric")
		return
	}
	updated, err := c.employeeService.Activate(r.Context(), id)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.EmployeeToViewModel(updated))
}

func (c *EmployeeAPIController) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Employee ID must be numeric")
		return
	}
	updated, err := c.employeeService.Deactivate(r.Context(), id)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusOK, mappers.EmployeeToViewModel(updated))
}

func (c *EmployeeAPIController) BulkImport(w http.ResponseWriter, r *http.Request) {
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

	result, err := csvimport.Ingest(file, services.EmployeeSchema, services.BindEmployee)
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

	created, err := c.employeeService.BulkCreate(r.Context(), result.Valid)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	_ = httpapi.WriteSuccess(w, http.StatusCreated, map[string]int{"imported": len(created)})
}

func (c *EmployeeAPIController) Template(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+csvimport.TemplateFilename(services.EmployeeSchema)+`"`)
	_, _ = w.Write(csvimport.Template(services.EmployeeSchema))
}

func (c *EmployeeAPIController) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var base *serrors.Base
	if errors.As(err, &base) {
		status := http.StatusConflict
		if base == persistence.ErrEmployeeNotFound {
			status = http.StatusNotFound
		}
		_ = httpapi.WriteError(w, status, base.Code, base.Message)
		return
	}
	c.writeInternal(w, r, err)
}

func (c *EmployeeAPIController) writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	composables.UseLogger(r.Context()).WithError(err).Error("employee request failed")
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
}
