package hrm

import (
	"embed"
	"io/fs"

	"github.com/blumenos/gridadmin/modules/hrm/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/hrm/presentation/controllers"
	"github.com/blumenos/gridadmin/modules/hrm/services"
	"github.com/blumenos/gridadmin/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "hrm"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewEmployeeService(persistence.NewEmployeeRepository(), app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewEmployeeAPIController(app),
	)

	schema, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(m.Name(), schema)
	return nil
}
