package catalog

import (
	"embed"
	"io/fs"

	"github.com/hanlinworks/zhiguan/modules/catalog/infrastructure/persistence"
	"github.com/hanlinworks/zhiguan/modules/catalog/presentation/controllers"
	"github.com/hanlinworks/zhiguan/modules/catalog/services"
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
	relationshipRepo := persistence.NewRelationshipRepository()
	app.RegisterServices(
		services.NewPositionService(positionRepo, relationshipRepo),
		services.NewRelationshipService(relationshipRepo, positionRepo),
	)

	// The SPA controller must come last: its catch-all route would
	// otherwise shadow the API endpoints.
	app.RegisterControllers(
		controllers.NewPositionAPIController(app),
		controllers.NewRelationshipAPIController(app),
		controllers.NewLunarAPIController(app),
		controllers.NewSpaController(),
	)

	return nil
}

func (m *Module) Name() string {
	return "catalog"
}
