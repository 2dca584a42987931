package feeder

import "context"

// Feeder is an 11kV or 33kV line that distribution substations hang off.
type Feeder struct {
	ID         uint
	Code       string
	Name       string
	AreaOffice string
	VoltageKV  int
}

type Repository interface {
	GetAll(ctx context.Context) ([]Feeder, error)
	GetByID(ctx context.Context, id uint) (Feeder, error)
}
