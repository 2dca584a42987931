package employee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/modules/hrm/domain/aggregates/employee"
)

func validDTO() *employee.CreateDTO {
	return &employee.CreateDTO{
		FirstName:    "Adaeze",
		LastName:     "Okafor",
		Email:        "adaeze.okafor@example.com",
		Phone:        "+2348012345678",
		RoleID:       3,
		AreaOfficeID: 7,
		DepartmentID: 2,
	}
}

func TestCreateDTO_Ok_Valid(t *testing.T) {
	errs, ok := validDTO().Ok()
	require.True(t, ok, "unexpected errors: %v", errs)
}

func TestCreateDTO_Ok_PhoneFormats(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+2348012345678", true},
		{"08012345678", true},
		{"07098765432", true},
		{"09112345678", true},
		{"12345", false},
		{"+2346012345678", false},
		{"080123456", false},
	}
	for _, tc := range cases {
		dto := validDTO()
		dto.Phone = tc.phone
		_, ok := dto.Ok()
		assert.Equal(t, tc.valid, ok, "phone %q", tc.phone)
	}
}

func TestCreateDTO_Ok_InvalidEmail(t *testing.T) {
	dto := validDTO()
	dto.Email = "not-an-email"
	errs, ok := dto.Ok()
	require.False(t, ok)
	assert.Contains(t, errs["Email"], "valid email")
}

func TestCreateDTO_Ok_MissingAssignments(t *testing.T) {
	dto := validDTO()
	dto.RoleID = 0
	dto.AreaOfficeID = 0
	dto.DepartmentID = 0
	errs, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "Role is required", errs["RoleID"])
	assert.Equal(t, "Area office is required", errs["AreaOfficeID"])
	assert.Equal(t, "Department is required", errs["DepartmentID"])
}

func TestCreateDTO_Ok_SupervisorOptional(t *testing.T) {
	dto := validDTO()
	dto.SupervisorID = 0
	_, ok := dto.Ok()
	assert.True(t, ok)
}

func TestNew_NormalizesEmail(t *testing.T) {
	e := employee.New("Adaeze", "Okafor", " Adaeze.Okafor@Example.com ", "08012345678", 3, 7, 2, 0, "")
	assert.Equal(t, "adaeze.okafor@example.com", e.Email())
	assert.Equal(t, employee.EmploymentFullTime, e.EmploymentType())
	assert.True(t, e.IsActive())
}

func TestDeactivate(t *testing.T) {
	e := employee.New("Adaeze", "Okafor", "a@example.com", "08012345678", 3, 7, 2, 0, "")
	assert.False(t, e.Deactivate().IsActive())
}
