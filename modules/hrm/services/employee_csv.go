package services

import (
	"strconv"
	"strings"

	"github.com/blumenos/gridadmin/modules/hrm/domain/aggregates/employee"
	"github.com/blumenos/gridadmin/pkg/csvimport"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

// EmployeeSchema describes the bulk import file for staff records.
var EmployeeSchema = csvimport.Schema{
	Entity: "Employees",
	Columns: []csvimport.Column{
		{Name: "firstname", Required: true, Example: "Adaeze"},
		{Name: "lastname", Required: true, Example: "Okafor"},
		{Name: "email", Required: true, Example: "adaeze.okafor@example.com"},
		{Name: "phone", Required: true, Example: "+2348012345678"},
		{Name: "roleid", Required: true, Example: "3"},
		{Name: "areaofficeid", Required: true, Example: "7"},
		{Name: "departmentid", Required: true, Example: "2"},
		{Name: "supervisorid", Required: false, Example: ""},
		{Name: "employmenttype", Required: false, Example: "full_time"},
	},
}

// BindEmployee turns one import row into a validated CreateDTO.
func BindEmployee(row csvimport.Row) (*employee.CreateDTO, serrors.ValidationErrors) {
	errs := serrors.ValidationErrors{}
	dto := &employee.CreateDTO{
		FirstName:      row.Get("firstname"),
		LastName:       row.Get("lastname"),
		Email:          row.Get("email"),
		Phone:          row.Get("phone"),
		EmploymentType: strings.ToLower(row.Get("employmenttype")),
	}
	parseID := func(col, field, label string) uint {
		raw := row.Get(col)
		if raw == "" {
			return 0
		}
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			errs[field] = label + " must be a whole number"
			return 0
		}
		return uint(v)
	}
	dto.RoleID = parseID("roleid", "RoleID", "Role ID")
	dto.AreaOfficeID = parseID("areaofficeid", "AreaOfficeID", "Area office ID")
	dto.DepartmentID = parseID("departmentid", "DepartmentID", "Department ID")
	dto.SupervisorID = parseID("supervisorid", "SupervisorID", "Supervisor ID")
	if !errs.Empty() {
		return nil, errs
	}
	if ve, ok := dto.Ok(); !ok {
		return nil, ve
	}
	return dto, serrors.ValidationErrors{}
}
