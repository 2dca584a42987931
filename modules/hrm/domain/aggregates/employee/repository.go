package employee

import (
	"context"

	"github.com/blumenos/gridadmin/pkg/listview"
)

type FindParams struct {
	Limit        int
	Offset       int
	Query        string
	AreaOfficeID uint
	DepartmentID uint
	ActiveOnly   bool
	Sort         listview.Sort
}

type Repository interface {
	Count(ctx context.Context, params FindParams) (int64, error)
	GetPaginated(ctx context.Context, params FindParams) ([]Employee, error)
	GetByID(ctx context.Context, id uint) (Employee, error)
	Create(ctx context.Context, entity Employee) (Employee, error)
	CreateMany(ctx context.Context, entities []Employee) ([]Employee, error)
	Update(ctx context.Context, entity Employee) (Employee, error)
}
