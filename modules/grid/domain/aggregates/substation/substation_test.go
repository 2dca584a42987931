package substation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/modules/grid/domain/aggregates/substation"
)

func TestNew_BlanksUnitCodesBeyondCount(t *testing.T) {
	entity := substation.New(
		1, "", "AB-DSS-001", "NERC/AB/001", 500,
		6.45, 3.39, 2,
		[substation.MaxUnits]string{"U1", "U2", "U3", "U4"},
		false, substation.StatusActive, "",
	)
	units := entity.UnitCodes()
	assert.Equal(t, "U1", units[0])
	assert.Equal(t, "U2", units[1])
	assert.Empty(t, units[2])
	assert.Empty(t, units[3])
}

func TestNew_DefaultsStatusToActive(t *testing.T) {
	entity := substation.New(
		1, "", "AB-DSS-001", "NERC/AB/001", 500,
		6.45, 3.39, 0,
		[substation.MaxUnits]string{}, false, "", "",
	)
	assert.Equal(t, substation.StatusActive, entity.Status())
}

func TestCreateDTO_Ok_Valid(t *testing.T) {
	dto := &substation.CreateDTO{
		FeederID:            12,
		NewCode:             "AB-DSS-014",
		NERCCode:            "NERC/AB/014",
		TransformerCapacity: 500,
		Latitude:            6.4541,
		Longitude:           3.3947,
		NumberOfUnits:       2,
	}
	errs, ok := dto.Ok()
	require.True(t, ok, "unexpected errors: %v", errs)
}

func TestCreateDTO_Ok_LatitudeOutOfRange(t *testing.T) {
	dto := &substation.CreateDTO{
		FeederID:            12,
		NewCode:             "AB-DSS-014",
		NERCCode:            "NERC/AB/014",
		TransformerCapacity: 500,
		Latitude:            95,
		Longitude:           3.3947,
	}
	errs, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "Latitude must be between -90 and 90", errs["Latitude"])
}

func TestCreateDTO_Ok_LongitudeOutOfRange(t *testing.T) {
	dto := &substation.CreateDTO{
		FeederID:            12,
		NewCode:             "AB-DSS-014",
		NERCCode:            "NERC/AB/014",
		TransformerCapacity: 500,
		Latitude:            6.4541,
		Longitude:           200,
	}
	errs, ok := dto.Ok()
	require.False(t, ok)
	assert.Equal(t, "Longitude must be between -180 and 180", errs["Longitude"])
}

func TestCreateDTO_Ok_MissingRequired(t *testing.T) {
	dto := &substation.CreateDTO{Latitude: 6.45, Longitude: 3.39}
	errs, ok := dto.Ok()
	require.False(t, ok)
	assert.Contains(t, errs, "FeederID")
	assert.Contains(t, errs, "NewCode")
	assert.Contains(t, errs, "NERCCode")
	assert.Contains(t, errs, "TransformerCapacity")
}

func TestCreateDTO_Ok_TooManyUnits(t *testing.T) {
	dto := &substation.CreateDTO{
		FeederID:            12,
		NewCode:             "AB-DSS-014",
		NERCCode:            "NERC/AB/014",
		TransformerCapacity: 500,
		Latitude:            6.4541,
		Longitude:           3.3947,
		NumberOfUnits:       5,
	}
	_, ok := dto.Ok()
	assert.False(t, ok)
}

func TestUpdateDTO_Apply_KeepsIdentity(t *testing.T) {
	existing := substation.Hydrate(
		42, 1, "", "AB-DSS-001", "NERC/AB/001", 500,
		6.45, 3.39, 0, [substation.MaxUnits]string{},
		false, substation.StatusActive, "",
		testTime(), testTime(),
	)
	dto := &substation.UpdateDTO{
		FeederID:            1,
		NewCode:             "AB-DSS-001",
		NERCCode:            "NERC/AB/001",
		TransformerCapacity: 750,
		Latitude:            6.45,
		Longitude:           3.39,
		Status:              "inactive",
	}
	updated := dto.Apply(existing)
	assert.Equal(t, uint(42), updated.ID())
	assert.Equal(t, float64(750), updated.TransformerCapacity())
	assert.Equal(t, substation.StatusInactive, updated.Status())
	assert.Equal(t, existing.CreatedAt(), updated.CreatedAt())
}

func testTime() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}
