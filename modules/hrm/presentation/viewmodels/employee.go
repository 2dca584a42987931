package viewmodels

type Employee struct {
	ID             uint   `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	RoleID         uint   `json:"roleId"`
	AreaOfficeID   uint   `json:"areaOfficeId"`
	DepartmentID   uint   `json:"departmentId"`
	SupervisorID   uint   `json:"supervisorId,omitempty"`
	EmploymentType string `json:"employmentType"`
	IsActive       bool   `json:"isActive"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}
