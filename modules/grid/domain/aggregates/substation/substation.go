package substation

import (
	"strings"
	"time"
)

// MaxUnits is the most transformer units a distribution substation carries.
const MaxUnits = 4

type Status string

const (
	StatusActive         Status = "active"
	StatusInactive       Status = "inactive"
	StatusDecommissioned Status = "decommissioned"
)

// Substation is a distribution substation (DSS) hanging off a feeder.
type Substation struct {
	id                  uint
	feederID            uint
	oldCode             string
	newCode             string
	nercCode            string
	transformerCapacity float64
	latitude            float64
	longitude           float64
	numberOfUnits       int
	unitCodes           [MaxUnits]string
	isDedicated         bool
	status              Status
	remarks             string
	createdAt           time.Time
	updatedAt           time.Time
}

func New(
	feederID uint,
	oldCode, newCode, nercCode string,
	transformerCapacity float64,
	latitude, longitude float64,
	numberOfUnits int,
	unitCodes [MaxUnits]string,
	isDedicated bool,
	status Status,
	remarks string,
) Substation {
	if status == "" {
		status = StatusActive
	}
	return Substation{
		feederID:            feederID,
		oldCode:             strings.TrimSpace(oldCode),
		newCode:             strings.TrimSpace(newCode),
		nercCode:            strings.TrimSpace(nercCode),
		transformerCapacity: transformerCapacity,
		latitude:            latitude,
		longitude:           longitude,
		numberOfUnits:       numberOfUnits,
		unitCodes:           normalizeUnits(numberOfUnits, unitCodes),
		isDedicated:         isDedicated,
		status:              status,
		remarks:             strings.TrimSpace(remarks),
	}
}

func Hydrate(
	id uint,
	feederID uint,
	oldCode, newCode, nercCode string,
	transformerCapacity float64,
	latitude, longitude float64,
	numberOfUnits int,
	unitCodes [MaxUnits]string,
	isDedicated bool,
	status Status,
	remarks string,
	createdAt, updatedAt time.Time,
) Substation {
	s := New(feederID, oldCode, newCode, nercCode, transformerCapacity, latitude, longitude, numberOfUnits, unitCodes, isDedicated, status, remarks)
	s.id = id
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s
}

// normalizeUnits blanks unit codes beyond the declared unit count.
func normalizeUnits(n int, codes [MaxUnits]string) [MaxUnits]string {
	for i := range codes {
		if i >= n {
			codes[i] = ""
		} else {
			codes[i] = strings.TrimSpace(codes[i])
		}
	}
	return codes
}

func (s Substation) ID() uint                     { return s.id }
func (s Substation) FeederID() uint               { return s.feederID }
func (s Substation) OldCode() string              { return s.oldCode }
func (s Substation) NewCode() string              { return s.newCode }
func (s Substation) NERCCode() string             { return s.nercCode }
func (s Substation) TransformerCapacity() float64 { return s.transformerCapacity }
func (s Substation) Latitude() float64            { return s.latitude }
func (s Substation) Longitude() float64           { return s.longitude }
func (s Substation) NumberOfUnits() int           { return s.numberOfUnits }
func (s Substation) UnitCodes() [MaxUnits]string  { return s.unitCodes }
func (s Substation) IsDedicated() bool            { return s.isDedicated }
func (s Substation) Status() Status               { return s.status }
func (s Substation) Remarks() string              { return s.remarks }
func (s Substation) CreatedAt() time.Time         { return s.createdAt }
func (s Substation) UpdatedAt() time.Time         { return s.updatedAt }
func (s Substation) IsZero() bool                 { return s.id == 0 && s.newCode == "" }
