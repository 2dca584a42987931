package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/modules/hrm/services"
	"github.com/blumenos/gridadmin/pkg/csvimport"
)

const employeeHeader = "firstname,lastname,email,phone,roleid,areaofficeid,departmentid,supervisorid,employmenttype"

func TestIngestEmployees_AllValid(t *testing.T) {
	csv := employeeHeader + "\n" +
		"Adaeze,Okafor,adaeze@example.com,+2348012345678,3,7,2,,full_time\n" +
		"Tunde,Bello,tunde@example.com,08098765432,4,7,2,1,contract\n"
	result, err := csvimport.Ingest(strings.NewReader(csv), services.EmployeeSchema, services.BindEmployee)
	require.NoError(t, err)
	require.True(t, result.OK(), "errors: %v", result.Messages())
	require.Len(t, result.Valid, 2)
	assert.Equal(t, uint(1), result.Valid[1].SupervisorID)
}

func TestIngestEmployees_BadPhoneRow(t *testing.T) {
	csv := employeeHeader + "\n" +
		"Adaeze,Okafor,adaeze@example.com,12345,3,7,2,,\n"
	result, err := csvimport.Ingest(strings.NewReader(csv), services.EmployeeSchema, services.BindEmployee)
	require.NoError(t, err)
	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 1: Phone number must be a valid Nigerian phone number", result.Errors[0].String())
}

func TestIngestEmployees_MissingEmailColumn(t *testing.T) {
	csv := "firstname,lastname,phone,roleid,areaofficeid,departmentid\n" +
		"Adaeze,Okafor,08012345678,3,7,2\n"
	result, err := csvimport.Ingest(strings.NewReader(csv), services.EmployeeSchema, services.BindEmployee)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Missing required columns: email", result.Errors[0].String())
}
