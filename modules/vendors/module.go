package vendors

import (
	"embed"
	"io/fs"

	"github.com/blumenos/gridadmin/modules/vendors/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/vendors/presentation/controllers"
	"github.com/blumenos/gridadmin/modules/vendors/services"
	"github.com/blumenos/gridadmin/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "vendors"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewVendorService(
			persistence.NewVendorRepository(),
			persistence.NewWalletRepository(),
			app.EventPublisher(),
		),
	)
	app.RegisterControllers(
		controllers.NewVendorAPIController(app),
	)

	schema, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(m.Name(), schema)
	return nil
}
