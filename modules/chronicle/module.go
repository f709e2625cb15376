package chronicle

import (
	"embed"
	"io/fs"

	"github.com/hanlinworks/zhiguan/modules/chronicle/infrastructure/persistence"
	"github.com/hanlinworks/zhiguan/modules/chronicle/presentation/controllers"
	"github.com/hanlinworks/zhiguan/modules/chronicle/services"
	"github.com/hanlinworks/zhiguan/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	schema, err := fs.Sub(migrationFiles, "infrastructure/persistence/schema")
	if err != nil {
		return err
	}
	app.RegisterSchema(schema)

	positionRepo := persistence.NewPositionRepository()
	app.RegisterServices(
		services.NewPositionService(positionRepo, app.EventPublisher()),
		services.NewOfficialService(persistence.NewOfficialRepository(), positionRepo),
		services.NewConnectionService(persistence.NewConnectionRepository(), positionRepo),
	)

	app.RegisterControllers(
		controllers.NewPositionAPIController(app),
		controllers.NewOfficialAPIController(app),
		controllers.NewConnectionAPIController(app),
		controllers.NewCalendarAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "chronicle"
}
