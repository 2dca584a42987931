package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/modules/grid/domain/aggregates/substation"
	"github.com/blumenos/gridadmin/modules/grid/services"
	"github.com/blumenos/gridadmin/pkg/csvimport"
)

const substationHeader = "feederid,olddsscode,newdsscode,nerccode,transformercapacity,latitude,longitude,numberofunits,unitonecode,unittwocode,unitthreecode,unitfourcode,isdedicated,status,remarks"

func ingestSubstations(t *testing.T, csv string) csvimport.Result[*substation.CreateDTO] {
	t.Helper()
	result, err := csvimport.Ingest(strings.NewReader(csv), services.SubstationSchema, services.BindSubstation)
	require.NoError(t, err)
	return result
}

func TestIngestSubstations_AllValid(t *testing.T) {
	csv := substationHeader + "\n" +
		"12,AB-OLD-014,AB-DSS-014,NERC/AB/014,500,6.4541,3.3947,2,U1,U2,,,false,active,\n" +
		"12,,AB-DSS-015,NERC/AB/015,300,6.5,3.4,1,U1,,,,true,,\n"
	result := ingestSubstations(t, csv)
	require.True(t, result.OK(), "errors: %v", result.Messages())
	require.Len(t, result.Valid, 2)
	assert.Equal(t, "AB-DSS-014", result.Valid[0].NewCode)
	assert.True(t, result.Valid[1].IsDedicated)
}

func TestIngestSubstations_MissingNERCColumn(t *testing.T) {
	csv := "feederid,olddsscode,newdsscode,transformercapacity,latitude,longitude\n" +
		"12,,AB-DSS-014,500,6.4541,3.3947\n"
	result := ingestSubstations(t, csv)
	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Missing required columns: nerccode", result.Errors[0].String())
	assert.Empty(t, result.Valid)
}

func TestIngestSubstations_BadLatitudeRow(t *testing.T) {
	csv := substationHeader + "\n" +
		"12,,AB-DSS-014,NERC/AB/014,500,6.4541,3.3947,0,,,,,false,active,\n" +
		"12,,AB-DSS-015,NERC/AB/015,300,north,3.4,0,,,,,false,active,\n"
	result := ingestSubstations(t, csv)
	require.False(t, result.OK())
	require.Len(t, result.Valid, 1)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 2: Latitude must be a number", result.Errors[0].String())
}

func TestIngestSubstations_OutOfRangeLatitudeRow(t *testing.T) {
	csv := substationHeader + "\n" +
		"12,,AB-DSS-014,NERC/AB/014,500,95,3.3947,0,,,,,false,active,\n"
	result := ingestSubstations(t, csv)
	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 1: Latitude must be between -90 and 90", result.Errors[0].String())
}

func TestIngestSubstations_EmptyFileNotSubmittable(t *testing.T) {
	result := ingestSubstations(t, substationHeader+"\n")
	assert.False(t, result.OK())
	assert.Empty(t, result.Errors)
}
