package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
)

// PositionService is plain catalogue CRUD. Deleting a position also
// removes every relationship edge touching it, on either end, so the
// graph never holds edges to missing nodes.
type PositionService struct {
	repo          position.Repository
	relationships relationship.Repository
}

func NewPositionService(repo position.Repository, relationships relationship.Repository) *PositionService {
	return &PositionService{repo: repo, relationships: relationships}
}

func (s *PositionService) GetAll(ctx context.Context) ([]position.Position, error) {
	out, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []position.Position{}
	}
	return out, nil
}

func (s *PositionService) GetByID(ctx context.Context, id uuid.UUID) (position.Position, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PositionService) Create(ctx context.Context, dto *position.CreateDTO) (position.Position, error) {
	if dto == nil {
		return position.Position{}, &ValidationError{Fields: map[string]string{"Name": "missing request body"}}
	}
	if fields, ok := dto.Ok(); !ok {
		return position.Position{}, &ValidationError{Fields: fields}
	}

	entity := dto.ToEntity()
	if err := s.repo.Create(ctx, entity); err != nil {
		return position.Position{}, err
	}
	return entity, nil
}

func (s *PositionService) Update(ctx context.Context, id uuid.UUID, dto *position.UpdateDTO) (position.Position, error) {
	if dto == nil {
		return position.Position{}, &ValidationError{Fields: map[string]string{"Name": "missing request body"}}
	}
	if fields, ok := dto.Ok(); !ok {
		return position.Position{}, &ValidationError{Fields: fields}
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return position.Position{}, err
	}

	updated := dto.Apply(current)
	if err := s.repo.Update(ctx, updated); err != nil {
		return position.Position{}, err
	}
	return updated, nil
}

func (s *PositionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.relationships.DeleteByPosition(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
