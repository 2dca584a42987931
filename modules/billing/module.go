package billing

import (
	"embed"
	"io/fs"

	"github.com/blumenos/gridadmin/modules/billing/infrastructure/persistence"
	"github.com/blumenos/gridadmin/modules/billing/presentation/controllers"
	"github.com/blumenos/gridadmin/modules/billing/services"
	"github.com/blumenos/gridadmin/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "billing"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewBillService(persistence.NewBillRepository()),
		services.NewPaymentService(persistence.NewPaymentRepository()),
		services.NewDebtService(persistence.NewDebtRepository()),
		services.NewChangeRequestService(persistence.NewChangeRequestRepository()),
		services.NewQualityService(persistence.NewQualityRepository()),
	)

	app.RegisterControllers(
		controllers.NewBillAPIController(app),
		controllers.NewPaymentAPIController(app),
		controllers.NewDebtAPIController(app),
		controllers.NewChangeRequestAPIController(app),
		controllers.NewQualityAPIController(app),
	)

	schema, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.Migrations().RegisterSchema(m.Name(), schema)
	return nil
}
