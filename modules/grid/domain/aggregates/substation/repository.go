package substation

import (
	"context"

	"github.com/blumenos/gridadmin/pkg/listview"
)

type FindParams struct {
	Limit    int
	Offset   int
	Query    string
	FeederID uint
	Status   Status
	Sort     listview.Sort
}

type Repository interface {
	Count(ctx context.Context, params FindParams) (int64, error)
	GetPaginated(ctx context.Context, params FindParams) ([]Substation, error)
	GetByID(ctx context.Context, id uint) (Substation, error)
	Create(ctx context.Context, entity Substation) (Substation, error)
	CreateMany(ctx context.Context, entities []Substation) ([]Substation, error)
	Update(ctx context.Context, entity Substation) (Substation, error)
	Delete(ctx context.Context, id uint) error
}
