package grid

import (
	"embed"
	"io/fs"

	"github.com/blumenos/gridadmin/modules/grid/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/grid/presentation/controllers"
	"github.com/blumenos/gridadmin/modules/grid/services"
	"github.com/blumenos/gridadmin/pkg/application"
	"github.com/blumenos/gridadmin/pkg/configuration"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "grid"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	app.RegisterServices(
		services.NewSubstationService(persistence.NewSubstationRepository(), app.EventPublisher()),
		services.NewFeederService(persistence.NewFeederRepository()),
		services.NewMapService(persistence.NewMapRepository(), conf.Map.MaxMarkers),
	)

	app.RegisterControllers(
		controllers.NewSubstationAPIController(app),
		controllers.NewFeederAPIController(app),
		controllers.NewMapAPIController(app),
	)

	schema, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(m.Name(), schema)
	return nil
}
