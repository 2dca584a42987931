package employee

import (
	"strings"
	"time"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentContract EmploymentType = "contract"
	EmploymentNYSC     EmploymentType = "nysc"
	EmploymentCorper   EmploymentType = "corper"
)

// Employee is a staff member assigned to an area office and department.
type Employee struct {
	id             uint
	firstName      string
	lastName       string
	email          string
	phone          string
	roleID         uint
	areaOfficeID   uint
	departmentID   uint
	supervisorID   uint
	employmentType EmploymentType
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func New(
	firstName, lastName, email, phone string,
	roleID, areaOfficeID, departmentID, supervisorID uint,
	employmentType EmploymentType,
) Employee {
	if employmentType == "" {
		employmentType = EmploymentFullTime
	}
	return Employee{
		firstName:      strings.TrimSpace(firstName),
		lastName:       strings.TrimSpace(lastName),
		email:          strings.ToLower(strings.TrimSpace(email)),
		phone:          strings.TrimSpace(phone),
		roleID:         roleID,
		areaOfficeID:   areaOfficeID,
		departmentID:   departmentID,
		supervisorID:   supervisorID,
		employmentType: employmentType,
		isActive:       true,
	}
}

func Hydrate(
	id uint,
	firstName, lastName, email, phone string,
	roleID, areaOfficeID, departmentID, supervisorID uint,
	employmentType EmploymentType,
	isActive bool,
	createdAt, updatedAt time.Time,
) Employee {
	e := New(firstName, lastName, email, phone, roleID, areaOfficeID, departmentID, supervisorID, employmentType)
	e.id = id
	e.isActive = isActive
	e.createdAt = createdAt
	e.updatedAt = updatedAt
	return e
}

func (e Employee) ID() uint                       { return e.id }
func (e Employee) FirstName() string              { return e.firstName }
func (e Employee) LastName() string               { return e.lastName }
func (e Employee) FullName() string               { return strings.TrimSpace(e.firstName + " " + e.lastName) }
func (e Employee) Email() string                  { return e.email }
func (e Employee) Phone() string                  { return e.phone }
func (e Employee) RoleID() uint                   { return e.roleID }
func (e Employee) AreaOfficeID() uint             { return e.areaOfficeID }
func (e Employee) DepartmentID() uint             { return e.departmentID }
func (e Employee) SupervisorID() uint             { return e.supervisorID }
func (e Employee) EmploymentType() EmploymentType { return e.employmentType }
func (e Employee) IsActive() bool                 { return e.isActive }
func (e Employee) CreatedAt() time.Time           { return e.createdAt }
func (e Employee) UpdatedAt() time.Time           { return e.updatedAt }

// Deactivate marks the employee as no longer active without deleting the
// record, so historical assignments keep resolving.
func (e Employee) Deactivate() Employee {
	e.isActive = false
	return e
}

func (e Employee) Activate() Employee {
	e.isActive = true
	return e
}
