package relationship

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hanlinworks/zhiguan/pkg/serrors"
)

var ErrNotFound = errors.New("relationship not found")

// DefaultType is assumed when a caller creates an edge without naming
// its kind.
const DefaultType = "superior"

// Relationship is a typed edge between two catalogued positions. It is
// stored directionally (source, target) and carries no dates.
type Relationship struct {
	ID          uuid.UUID
	SourceID    uuid.UUID
	TargetID    uuid.UUID
	Type        string
	Description string
}

type CreateDTO struct {
	ID          *uuid.UUID `json:"id"`
	SourceID    *uuid.UUID `json:"source_id"`
	TargetID    *uuid.UUID `json:"target_id"`
	Type        string     `json:"relationship_type"`
	Description string     `json:"description"`
}

func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	out := serrors.ValidationErrors{}
	if d.SourceID == nil {
		out["SourceID"] = "source_id is required"
	}
	if d.TargetID == nil {
		out["TargetID"] = "target_id is required"
	}
	return out, len(out) == 0
}

func (d *CreateDTO) ToEntity() Relationship {
	id := uuid.New()
	if d.ID != nil {
		id = *d.ID
	}
	typ := d.Type
	if typ == "" {
		typ = DefaultType
	}
	return Relationship{
		ID:          id,
		SourceID:    *d.SourceID,
		TargetID:    *d.TargetID,
		Type:        typ,
		Description: d.Description,
	}
}

type Repository interface {
	GetAll(ctx context.Context) ([]Relationship, error)
	Create(ctx context.Context, r Relationship) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByPosition removes every edge touching the given position,
	// on either end.
	DeleteByPosition(ctx context.Context, positionID uuid.UUID) error
}
