package services

import (
	"strconv"
	"strings"

	"github.com/blumenos/gridadmin/modules/grid/domain/aggregates/substation"
	"github.com/blumenos/gridadmin/pkg/csvimport"
	"github.com/blumenos/gridadmin/pkg/serrors"
)

// SubstationSchema describes the bulk import file for distribution substations.
var SubstationSchema = csvimport.Schema{
	Entity: "Substations",
	Columns: []csvimport.Column{
		{Name: "feederid", Required: true, Example: "12"},
		{Name: "olddsscode", Required: false, Example: "AB-OLD-014"},
		{Name: "newdsscode", Required: true, Example: "AB-DSS-014"},
		{Name: "nerccode", Required: true, Example: "NERC/AB/014"},
		{Name: "transformercapacity", Required: true, Example: "500"},
		{Name: "latitude", Required: true, Example: "6.4541"},
		{Name: "longitude", Required: true, Example: "3.3947"},
		{Name: "numberofunits", Required: false, Example: "2"},
		{Name: "unitonecode", Required: false, Example: "AB-DSS-014-U1"},
		{Name: "unittwocode", Required: false, Example: "AB-DSS-014-U2"},
		{Name: "unitthreecode", Required: false, Example: ""},
		{Name: "unitfourcode", Required: false, Example: ""},
		{Name: "isdedicated", Required: false, Example: "false"},
		{Name: "status", Required: false, Example: "active"},
		{Name: "remarks", Required: false, Example: ""},
	},
}

// BindSubstation turns one import row into a validated CreateDTO.
func BindSubstation(row csvimport.Row) (*substation.CreateDTO, serrors.ValidationErrors) {
	errs := serrors.ValidationErrors{}
	dto := &substation.CreateDTO{
		OldCode:       row.Get("olddsscode"),
		NewCode:       row.Get("newdsscode"),
		NERCCode:      row.Get("nerccode"),
		UnitOneCode:   row.Get("unitonecode"),
		UnitTwoCode:   row.Get("unittwocode"),
		UnitThreeCode: row.Get("unitthreecode"),
		UnitFourCode:  row.Get("unitfourcode"),
		Status:        strings.ToLower(row.Get("status")),
		Remarks:       row.Get("remarks"),
	}
	if v, err := strconv.ParseUint(row.Get("feederid"), 10, 32); err != nil {
		errs["FeederID"] = "Feeder ID must be a whole number"
	} else {
		dto.FeederID = uint(v)
	}
	if v, err := strconv.ParseFloat(row.Get("transformercapacity"), 64); err != nil {
		errs["TransformerCapacity"] = "Transformer capacity must be a number"
	} else {
		dto.TransformerCapacity = v
	}
	if v, err := strconv.ParseFloat(row.Get("latitude"), 64); err != nil {
		errs["Latitude"] = "Latitude must be a number"
	} else {
		dto.Latitude = v
	}
	if v, err := strconv.ParseFloat(row.Get("longitude"), 64); err != nil {
		errs["Longitude"] = "Longitude must be a number"
	} else {
		dto.Longitude = v
	}
	if raw := row.Get("numberofunits"); raw != "" {
		if v, err := strconv.Atoi(raw); err != nil {
			errs["NumberOfUnits"] = "Number of units must be a whole number"
		} else {
			dto.NumberOfUnits = v
		}
	}
	if raw := row.Get("isdedicated"); raw != "" {
		if v, err := strconv.ParseBool(raw); err != nil {
			errs["IsDedicated"] = "Dedicated flag must be true or false"
		} else {
			dto.IsDedicated = v
		}
	}
	if !errs.Empty() {
		return nil, errs
	}
	if ve, ok := dto.Ok(); !ok {
		return nil, ve
	}
	return dto, serrors.ValidationErrors{}
}
