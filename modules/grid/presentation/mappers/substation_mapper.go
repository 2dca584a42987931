package mappers

import (
	"fmt"
	"time"

	"github.com/blumenos/gridadmin/modules/grid/domain/aggregates/substation"
	"github.com/blumenos/gridadmin/modules/grid/domain/entities/feeder"
	"github.com/blumenos/gridadmin/modules/grid/services"
	"github.com/blumenos/gridadmin/modules/grid/presentation/viewmodels"
)

func SubstationToViewModel(entity substation.Substation) viewmodels.Substation {
	units := entity.UnitCodes()
	codes := make([]string, 0, entity.NumberOfUnits())
	for i := 0; i < entity.NumberOfUnits() && i < len(units); i++ {
		codes = append(codes, units[i])
	}
	return viewmodels.Substation{
		ID:                  entity.ID(),
		FeederID:            entity.FeederID(),
		OldDSSCode:          entity.OldCode(),
		NewDSSCode:          entity.NewCode(),
		NERCCode:            entity.NERCCode(),
		TransformerCapacity: entity.TransformerCapacity(),
		Latitude:            entity.Latitude(),
		Longitude:           entity.Longitude(),
		NumberOfUnits:       entity.NumberOfUnits(),
		UnitCodes:           codes,
		IsDedicated:         entity.IsDedicated(),
		Status:              string(entity.Status()),
		Remarks:             entity.Remarks(),
		CreatedAt:           entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:           entity.UpdatedAt().Format(time.RFC3339),
	}
}

func FeederToViewModel(f feeder.Feeder) viewmodels.Feeder {
	return viewmodels.Feeder{
		ID:         f.ID,
		Code:       f.Code,
		Name:       f.Name,
		AreaOffice: f.AreaOffice,
		VoltageKV:  f.VoltageKV,
	}
}

func FeederToOption(f feeder.Feeder) viewmodels.FeederOption {
	return viewmodels.FeederOption{
		Value: f.ID,
		Label: fmt.Sprintf("%s (%s)", f.Code, f.Name),
	}
}

func MarkerToViewModel(m services.Marker) viewmodels.MapMarker {
	return viewmodels.MapMarker{
		ID:        m.ID,
		Kind:      string(m.Kind),
		Label:     m.Label,
		Status:    m.Status,
		Color:     m.Color,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
	}
}
