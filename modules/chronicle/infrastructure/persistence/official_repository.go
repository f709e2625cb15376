package persistence

import (
	"context"
	"errors"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/official"
	"github.com/hanlinworks/zhiguan/pkg/composables"
)

type OfficialRepository struct{}

func NewOfficialRepository() official.Repository {
	return &OfficialRepository{}
}

func (r *OfficialRepository) GetByID(ctx context.Context, id int64) (official.Official, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return official.Official{}, err
	}

	var o official.Official
	err = tx.QueryRow(ctx, `
SELECT id, name, bio
FROM chronicle_officials
WHERE id = $1
`, id).Scan(&o.ID, &o.Name, &o.Bio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return official.Official{}, official.ErrNotFound
		}
		return official.Official{}, gerrors.Wrap(err, "get official")
	}
	return o, nil
}

func (r *OfficialRepository) Create(ctx context.Context, o official.Official) (official.Official, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return official.Official{}, err
	}

	if err := tx.QueryRow(ctx, `
INSERT INTO chronicle_officials (name, bio)
VALUES ($1, $2)
RETURNING id
`, o.Name, o.Bio).Scan(&o.ID); err != nil {
		return official.Official{}, gerrors.Wrap(err, "create official")
	}
	return o, nil
}

func (r *OfficialRepository) Update(ctx context.Context, o official.Official) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
UPDATE chronicle_officials
SET name = $2, bio = $3
WHERE id = $1
`, o.ID, o.Name, o.Bio)
	if err != nil {
		return gerrors.Wrap(err, "update official")
	}
	if tag.RowsAffected() == 0 {
		return official.ErrNotFound
	}
	return nil
}
