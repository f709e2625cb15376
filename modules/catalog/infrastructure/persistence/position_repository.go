package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/pkg/composables"
)

const (
	selectPositionColumns = `id, name, dynasty, category, description, start_year, end_year, rank, superior_id, image`
)

type PositionRepository struct{}

func NewPositionRepository() position.Repository {
	return &PositionRepository{}
}

func (r *PositionRepository) GetAll(ctx context.Context) ([]position.Position, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+selectPositionColumns+`
FROM catalog_positions
ORDER BY created_at, id
`)
	if err != nil {
		return nil, gerrors.Wrap(err, "list catalog positions")
	}
	defer rows.Close()

	out := []position.Position{}
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PositionRepository) GetByID(ctx context.Context, id uuid.UUID) (position.Position, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return position.Position{}, err
	}

	row := tx.QueryRow(ctx, `
SELECT `+selectPositionColumns+`
FROM catalog_positions
WHERE id = $1
`, id)
	p, err := scanPosition(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrNotFound
		}
		return position.Position{}, err
	}
	return p, nil
}

func (r *PositionRepository) Create(ctx context.Context, p position.Position) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO catalog_positions (id, name, dynasty, category, description, start_year, end_year, rank, superior_id, image)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, p.ID, p.Name, p.Dynasty, p.Category, p.Description, p.StartYear, p.EndYear, p.Rank, p.SuperiorID, p.Image)
	if err != nil {
		return gerrors.Wrap(err, "create catalog position")
	}
	return nil
}

func (r *PositionRepository) Update(ctx context.Context, p position.Position) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
UPDATE catalog_positions
SET name = $2,
    dynasty = $3,
    category = $4,
    description = $5,
    start_year = $6,
    end_year = $7,
    rank = $8,
    superior_id = $9,
    image = $10
WHERE id = $1
`, p.ID, p.Name, p.Dynasty, p.Category, p.Description, p.StartYear, p.EndYear, p.Rank, p.SuperiorID, p.Image)
	if err != nil {
		return gerrors.Wrap(err, "update catalog position")
	}
	if tag.RowsAffected() == 0 {
		return position.ErrNotFound
	}
	return nil
}

func (r *PositionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	// Detach subordinates before removing the row so the reporting tree
	// stays a forest instead of losing a subtree.
	if _, err := tx.Exec(ctx, `
UPDATE catalog_positions
SET superior_id = NULL
WHERE superior_id = $1
`, id); err != nil {
		return gerrors.Wrap(err, "detach subordinates")
	}

	tag, err := tx.Exec(ctx, `
DELETE FROM catalog_positions
WHERE id = $1
`, id)
	if err != nil {
		return gerrors.Wrap(err, "delete catalog position")
	}
	if tag.RowsAffected() == 0 {
		return position.ErrNotFound
	}
	return nil
}

func scanPosition(row pgx.Row) (position.Position, error) {
	var p position.Position
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Dynasty,
		&p.Category,
		&p.Description,
		&p.StartYear,
		&p.EndYear,
		&p.Rank,
		&p.SuperiorID,
		&p.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, err
		}
		return position.Position{}, gerrors.Wrap(err, "scan catalog position")
	}
	return p, nil
}
