package viewmodels

type Substation struct {
	ID                  uint     `json:"id"`
	FeederID            uint     `json:"feederId"`
	OldDSSCode          string   `json:"oldDssCode"`
	NewDSSCode          string   `json:"newDssCode"`
	NERCCode            string   `json:"nercCode"`
	TransformerCapacity float64  `json:"transformerCapacity"`
	Latitude            float64  `json:"latitude"`
	Longitude           float64  `json:"longitude"`
	NumberOfUnits       int      `json:"numberOfUnits"`
	UnitCodes           []string `json:"unitCodes"`
	IsDedicated         bool     `json:"isDedicated"`
	Status              string   `json:"status"`
	Remarks             string   `json:"remarks"`
	CreatedAt           string   `json:"createdAt"`
	UpdatedAt           string   `json:"updatedAt"`
}

type Feeder struct {
	ID         uint   `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	AreaOffice string `json:"areaOffice"`
	VoltageKV  int    `json:"voltageKv"`
}

type FeederOption struct {
	Value uint   `json:"value"`
	Label string `json:"label"`
}

type MapMarker struct {
	ID        uint    `json:"id"`
	Kind      string  `json:"kind"`
	Label     string  `json:"label"`
	Status    string  `json:"status"`
	Color     string  `json:"color"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
