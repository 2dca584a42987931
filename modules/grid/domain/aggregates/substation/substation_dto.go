package substation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/blumenos/gridadmin/pkg/constants"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

var fieldLabels = serrors.FieldLabels{
	"FeederID":            "Feeder",
	"NewCode":             "New DSS code",
	"NERCCode":            "NERC code",
	"TransformerCapacity": "Transformer capacity",
	"NumberOfUnits":       "Number of units",
}

type CreateDTO struct {
	FeederID            uint    `form:"feederId" json:"feederId" validate:"required"`
	OldCode             string  `form:"oldDssCode" json:"oldDssCode"`
	NewCode             string  `form:"newDssCode" json:"newDssCode" validate:"required"`
	NERCCode            string  `form:"nercCode" json:"nercCode" validate:"required"`
	TransformerCapacity float64 `form:"transformerCapacity" json:"transformerCapacity" validate:"required,gt=0"`
	Latitude            float64 `form:"latitude" json:"latitude" validate:"latitude"`
	Longitude           float64 `form:"longitude" json:"longitude" validate:"longitude"`
	NumberOfUnits       int     `form:"numberOfUnits" json:"numberOfUnits" validate:"gte=0,lte=4"`
	UnitOneCode         string  `form:"unitOneCode" json:"unitOneCode"`
	UnitTwoCode         string  `form:"unitTwoCode" json:"unitTwoCode"`
	UnitThreeCode       string  `form:"unitThreeCode" json:"unitThreeCode"`
	UnitFourCode        string  `form:"unitFourCode" json:"unitFourCode"`
	IsDedicated         bool    `form:"isDedicated" json:"isDedicated"`
	Status              string  `form:"status" json:"status" validate:"omitempty,oneof=active inactive decommissioned"`
	Remarks             string  `form:"remarks" json:"remarks"`
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	ve := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldLabels)
	return ve, ve.Empty()
}

func (d *CreateDTO) ToEntity() Substation {
	return New(
		d.FeederID,
		d.OldCode,
		d.NewCode,
		d.NERCCode,
		d.TransformerCapacity,
		d.Latitude,
		d.Longitude,
		d.NumberOfUnits,
		[MaxUnits]string{d.UnitOneCode, d.UnitTwoCode, d.UnitThreeCode, d.UnitFourCode},
		d.IsDedicated,
		Status(strings.TrimSpace(d.Status)),
		d.Remarks,
	)
}

type UpdateDTO struct {
	FeederID            uint    `form:"feederId" json:"feederId" validate:"required"`
	OldCode             string  `form:"oldDssCode" json:"oldDssCode"`
	NewCode             string  `form:"newDssCode" json:"newDssCode" validate:"required"`
	NERCCode            string  `form:"nercCode" json:"nercCode" validate:"required"`
	TransformerCapacity float64 `form:"transformerCapacity" json:"transformerCapacity" validate:"required,gt=0"`
	Latitude            float64 `form:"latitude" json:"latitude" validate:"latitude"`
	Longitude           float64 `form:"longitude" json:"longitude" validate:"longitude"`
	NumberOfUnits       int     `form:"numberOfUnits" json:"numberOfUnits" validate:"gte=0,lte=4"`
	UnitOneCode         string  `form:"unitOneCode" json:"unitOneCode"`
	UnitTwoCode         string  `form:"unitTwoCode" json:"unitTwoCode"`
	UnitThreeCode       string  `form:"unitThreeCode" json:"unitThreeCode"`
	UnitFourCode        string  `form:"unitFourCode" json:"unitFourCode"`
	IsDedicated         bool    `form:"isDedicated" json:"isDedicated"`
	Status              string  `form:"status" json:"status" validate:"omitempty,oneof=active inactive decommissioned"`
	Remarks             string  `form:"remarks" json:"remarks"`
}

func (d *UpdateDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	ve := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), fieldLabels)
	return ve, ve.Empty()
}

// Apply rebuilds the aggregate from the DTO, keeping identity and timestamps.
func (d *UpdateDTO) Apply(existing Substation) Substation {
	updated := New(
		d.FeederID,
		d.OldCode,
		d.NewCode,
		d.NERCCode,
		d.TransformerCapacity,
		d.Latitude,
		d.Longitude,
		d.NumberOfUnits,
		[MaxUnits]string{d.UnitOneCode, d.UnitTwoCode, d.UnitThreeCode, d.UnitFourCode},
		d.IsDedicated,
		Status(strings.TrimSpace(d.Status)),
		d.Remarks,
	)
	updated.id = existing.id
	updated.createdAt = existing.createdAt
	return updated
}
