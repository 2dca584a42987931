package employee

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/blumenos/gridadmin/pkg/constants"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var fieldLabels = serrors.FieldLabels{
	"FirstName":    "First name",
	"LastName":     "Last name",
	"Phone":        "Phone number",
	"RoleID":       "Role",
	"AreaOfficeID": "Area office",
	"DepartmentID": "Department",
}

type CreateDTO struct {
	FirstName      string `form:"firstName" json:"firstName" validate:"required"`
	LastName       string `form:"lastName" json:"lastName" validate:"required"`
	Email          string `form:"email" json:"email" validate:"required,email"`
	Phone          string `form:"phone" json:"phone" validate:"required,ng_phone"`
	RoleID         uint   `form:"roleId" json:"roleId" validate:"required"`
	AreaOfficeID   uint   `form:"areaOfficeId" json:"areaOfficeId" validate:"required"`
	DepartmentID   uint   `form:"departmentId" json:"departmentId" validate:"required"`
	SupervisorID   uint   `form:"supervisorId" json:"supervisorId"`
	EmploymentType string `form:"employmentType" json:"employmentType" validate:"omitempty,oneof=full_time contract nysc corper"`
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	ve := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldLabels)
	return ve, ve.Empty()
}

func (d *CreateDTO) ToEntity() Employee {
	return New(
		d.FirstName, d.LastName, d.Email, d.Phone,
		d.RoleID, d.AreaOfficeID, d.DepartmentID, d.SupervisorID,
		EmploymentType(strings.TrimSpace(d.EmploymentType)),
	)
}

type UpdateDTO struct {
	FirstName      string `form:"firstName" json:"firstName" validate:"required"`
	LastName       string `form:"lastName" json:"lastName" validate:"required"`
	Email          string `form:"email" json:"email" validate:"required,email"`
	Phone          string `form:"phone" json:"phone" validate:"required,ng_phone"`
	RoleID         uint   `form:"roleId" json:"roleId" validate:"required"`
	AreaOfficeID   uint   `form:"areaOfficeId" json:"areaOfficeId" validate:"required"`
	DepartmentID   uint   `form:"departmentId" json:"departmentId" validate:"required"`
	SupervisorID   uint   `form:"supervisorId" json:"supervisorId"`
	EmploymentType string `form:"employmentType" json:"employmentType" validate:"omitempty,oneof=full_time contract nysc corper"`
	IsActive       bool   `form:"isActive" json:"isActive"`
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	ve := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldLabels)
	return ve, ve.Empty()
}

func (d *UpdateDTO) Apply(existing Employee) Employee {
	updated := New(
		d.FirstName, d.LastName, d.Email, d.Phone,
		d.RoleID, d.AreaOfficeID, d.DepartmentID, d.SupervisorID,
		EmploymentType(strings.TrimSpace(d.EmploymentType)),
	)
	updated.id = existing.id
	updated.isActive = d.IsActive
	updated.createdAt = existing.createdAt
	return updated
}
