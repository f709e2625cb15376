package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/hanlinworks/zhiguan/modules"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/configuration"
	"github.com/hanlinworks/zhiguan/pkg/eventbus"
	"github.com/hanlinworks/zhiguan/pkg/migrations"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations for every module",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			db := stdlib.OpenDBFromPool(pool)
			defer db.Close()
			return migrations.Run(ctx, db, app.Schemas(), logger)
		},
	}
}
