package position

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("catalog position not found")

// Position is a catalogued office described by dynasty and category
// rather than by dated records. SuperiorID forms the reporting tree.
// Image holds a base64 encoded illustration, empty when none uploaded.
type Position struct {
	ID          uuid.UUID
	Name        string
	Dynasty     string
	Category    string
	Description string
	StartYear   *int
	EndYear     *int
	Rank        string
	SuperiorID  *uuid.UUID
	Image       string
}

type Repository interface {
	GetAll(ctx context.Context) ([]Position, error)
	GetByID(ctx context.Context, id uuid.UUID) (Position, error)
	Create(ctx context.Context, p Position) error
	Update(ctx context.Context, p Position) error
	Delete(ctx context.Context, id uuid.UUID) error
}
