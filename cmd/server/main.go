package main

import (
	"context"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"

	"github.com/hanlinworks/zhiguan/internal/server"
	"github.com/hanlinworks/zhiguan/modules"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/events"
	"github.com/hanlinworks/zhiguan/pkg/application"
	"github.com/hanlinworks/zhiguan/pkg/configuration"
	"github.com/hanlinworks/zhiguan/pkg/eventbus"
	"github.com/hanlinworks/zhiguan/pkg/migrations"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		panic(err)
	}
	defer pool.Close()

	app := application.New(&application.ApplicationOptions{
		Pool:     pool,
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := migrations.Run(ctx, db, app.Schemas(), logger); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Fatalf("failed to release migration connection: %v", err)
	}

	subscribeAuditLog(app.EventPublisher(), logger)

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
		Pool:          pool,
	})
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	logger.WithField("address", conf.Address).Info("listening")
	if err := srv.Start(conf.Address); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

func subscribeAuditLog(bus eventbus.EventBus, logger *logrus.Logger) {
	bus.Subscribe(func(e events.PositionCreatedEvent) {
		logger.WithFields(logrus.Fields{
			"position_id": e.Position.ID,
			"name":        e.Position.Name,
		}).Info("position created")
	})
	bus.Subscribe(func(e events.PositionUpdatedEvent) {
		logger.WithField("position_id", e.Position.ID).Info("position updated")
	})
	bus.Subscribe(func(e events.PositionDeletedEvent) {
		logger.WithField("position_id", e.PositionID).Info("position deleted")
	})
}
