package persistence

import (
	"context"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/connection"
	"github.com/hanlinworks/zhiguan/pkg/composables"
)

type ConnectionRepository struct{}

func NewConnectionRepository() connection.Repository {
	return &ConnectionRepository{}
}

func (r *ConnectionRepository) VisibleAt(ctx context.Context, at time.Time) ([]connection.Connection, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, from_position_id, to_position_id, date, label, color, style, is_visible, source_text, source_reference
FROM chronicle_connections
WHERE date <= $1
ORDER BY id
`, pgDateOnlyUTC(at))
	if err != nil {
		return nil, gerrors.Wrap(err, "connections visible at date")
	}
	defer rows.Close()

	var out []connection.Connection
	for rows.Next() {
		var (
			c    connection.Connection
			date pgtype.Date
		)
		if err := rows.Scan(
			&c.ID, &c.FromPositionID, &c.ToPositionID, &date,
			&c.Label, &c.Color, &c.Style, &c.IsVisible,
			&c.SourceText, &c.SourceReference,
		); err != nil {
			return nil, err
		}
		c.Date = fromPgDate(date)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ConnectionRepository) Create(ctx context.Context, c connection.Connection) (connection.Connection, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return connection.Connection{}, err
	}

	if err := tx.QueryRow(ctx, `
INSERT INTO chronicle_connections (from_position_id, to_position_id, date, label, color, style, is_visible, source_text, source_reference)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`,
		c.FromPositionID, c.ToPositionID, pgDateOnlyUTC(c.Date),
		c.Label, c.Color, c.Style, c.IsVisible,
		c.SourceText, c.SourceReference,
	).Scan(&c.ID); err != nil {
		return connection.Connection{}, gerrors.Wrap(err, "create connection")
	}
	return c, nil
}
