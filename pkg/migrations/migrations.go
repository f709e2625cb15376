package migrations

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

// Run applies every registered module schema against the database. Each
// module embeds its own migration files; version numbers are global across
// modules so the schemas apply in a stable order.
func Run(ctx context.Context, db *sql.DB, schemas []fs.FS, logger *logrus.Logger) error {
	for _, schema := range schemas {
		provider, err := goose.NewProvider(goose.DialectPostgres, db, schema)
		if err != nil {
			return err
		}
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		for _, res := range results {
			logger.WithFields(logrus.Fields{
				"migration": res.Source.Path,
				"duration":  res.Duration,
			}).Info("applied migration")
		}
	}
	return nil
}
