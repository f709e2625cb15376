package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/hanlinworks/zhiguan/modules"
	catalogposition "github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
	catalogservices "github.com/hanlinworks/zhiguan/modules/catalog/services"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/connection"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/official"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
	chronicleservices "github.com/hanlinworks/zhiguan/modules/chronicle/services"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/composables"
	"github.com/hanlinworks/zhiguan/pkg/configuration"
	"github.com/hanlinworks/zhiguan/pkg/eventbus"
)

// seedFile is the on-disk dataset layout. Chronicle connections refer
// to positions by their serial id, so position order in the file is
// the id order after insertion into an empty database.
type seedFile struct {
	Chronicle struct {
		Officials   []official.CreateDTO   `json:"officials"`
		Positions   []position.CreateDTO   `json:"positions"`
		Connections []connection.CreateDTO `json:"connections"`
	} `json:"chronicle"`
	Catalog struct {
		Positions     []catalogposition.CreateDTO `json:"positions"`
		Relationships []relationship.CreateDTO    `json:"relationships"`
	} `json:"catalog"`
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <dataset.json>",
		Short: "Load a curated dataset through the service layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var dataset seedFile
			if err := json.Unmarshal(raw, &dataset); err != nil {
				return err
			}

			conf := configuration.Use()
			logger := conf.Logger()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			pool, err := pgxpool.New(ctx, conf.Database.Opts)
			if err != nil {
				return err
			}
			defer pool.Close()

			app := application.New(&application.ApplicationOptions{
				Pool:     pool,
				EventBus: eventbus.NewEventPublisher(logger),
				Logger:   logger,
			})
			if err := modules.Load(app, modules.BuiltInModules...); err != nil {
				return err
			}

			ctx = composables.WithPool(ctx, pool)
			if err := composables.InTx(ctx, func(txCtx context.Context) error {
				return seed(txCtx, app, &dataset)
			}); err != nil {
				return err
			}

			logger.WithField("dataset", args[0]).Info("seed complete")
			return nil
		},
	}
}

func seed(ctx context.Context, app application.Application, dataset *seedFile) error {
	officials := app.Service(chronicleservices.OfficialService{}).(*chronicleservices.OfficialService)
	positions := app.Service(chronicleservices.PositionService{}).(*chronicleservices.PositionService)
	connections := app.Service(chronicleservices.ConnectionService{}).(*chronicleservices.ConnectionService)
	catalogPositions := app.Service(catalogservices.PositionService{}).(*catalogservices.PositionService)
	relationships := app.Service(catalogservices.RelationshipService{}).(*catalogservices.RelationshipService)

	for i := range dataset.Chronicle.Officials {
		if _, err := officials.Create(ctx, &dataset.Chronicle.Officials[i]); err != nil {
			return err
		}
	}
	for i := range dataset.Chronicle.Positions {
		if _, err := positions.Create(ctx, &dataset.Chronicle.Positions[i]); err != nil {
			return err
		}
	}
	for i := range dataset.Chronicle.Connections {
		if _, err := connections.Create(ctx, &dataset.Chronicle.Connections[i]); err != nil {
			return err
		}
	}
	for i := range dataset.Catalog.Positions {
		if _, err := catalogPositions.Create(ctx, &dataset.Catalog.Positions[i]); err != nil {
			return err
		}
	}
	for i := range dataset.Catalog.Relationships {
		if _, err := relationships.Create(ctx, &dataset.Catalog.Relationships[i]); err != nil {
			return err
		}
	}
	return nil
}
