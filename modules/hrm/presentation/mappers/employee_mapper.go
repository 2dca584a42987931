package mappers

import (
	"time"

	"github.com/blumenos/gridadmin/modules/hrm/domain/aggregates/employee"
	"github.com/blumenos/gridadmin/modules/hrm/presentation/viewmodels"
)

func EmployeeToViewModel(entity employee.Employee) viewmodels.Employee {
	return viewmodels.Employee{
		ID:             entity.ID(),
		FirstName:      entity.FirstName(),
		LastName:       entity.LastName(),
		FullName:       entity.FullName(),
		Email:          entity.Email(),
		Phone:          entity.Phone(),
		RoleID:         entity.RoleID(),
		AreaOfficeID:   entity.AreaOfficeID(),
		DepartmentID:   entity.DepartmentID(),
		SupervisorID:   entity.SupervisorID(),
		EmploymentType: string(entity.EmploymentType()),
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:      entity.UpdatedAt().Format(time.RFC3339),
	}
}
