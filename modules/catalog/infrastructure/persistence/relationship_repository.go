package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
	"github.com/hanlinworks/zhiguan/pkg/composables"
)

type RelationshipRepository struct{}

func NewRelationshipRepository() relationship.Repository {
	return &RelationshipRepository{}
}

func (r *RelationshipRepository) GetAll(ctx context.Context) ([]relationship.Relationship, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT id, source_id, target_id, relationship_type, description
FROM catalog_relationships
ORDER BY created_at, id
`)
	if err != nil {
		return nil, gerrors.Wrap(err, "list relationships")
	}
	defer rows.Close()

	out := []relationship.Relationship{}
	for rows.Next() {
		var rel relationship.Relationship
		if err := rows.Scan(&rel.ID, &rel.SourceID, &rel.TargetID, &rel.Type, &rel.Description); err != nil {
			return nil, gerrors.Wrap(err, "scan relationship")
		}
		out = append(out, rel)
	}
	return out, rows.Err()
}

func (r *RelationshipRepository) Create(ctx context.Context, rel relationship.Relationship) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
INSERT INTO catalog_relationships (id, source_id, target_id, relationship_type, description)
VALUES ($1, $2, $3, $4, $5)
`, rel.ID, rel.SourceID, rel.TargetID, rel.Type, rel.Description)
	if err != nil {
		return gerrors.Wrap(err, "create relationship")
	}
	return nil
}

func (r *RelationshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
DELETE FROM catalog_relationships
WHERE id = $1
`, id)
	if err != nil {
		return gerrors.Wrap(err, "delete relationship")
	}
	if tag.RowsAffected() == 0 {
		return relationship.ErrNotFound
	}
	return nil
}

func (r *RelationshipRepository) DeleteByPosition(ctx context.Context, positionID uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
DELETE FROM catalog_relationships
WHERE source_id = $1 OR target_id = $1
`, positionID)
	if err != nil {
		return gerrors.Wrap(err, "delete relationships by position")
	}
	return nil
}
