package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
)

type RelationshipService struct {
	repo      relationship.Repository
	positions position.Repository
}

func NewRelationshipService(repo relationship.Repository, positions position.Repository) *RelationshipService {
	return &RelationshipService{repo: repo, positions: positions}
}

func (s *RelationshipService) GetAll(ctx context.Context) ([]relationship.Relationship, error) {
	out, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []relationship.Relationship{}
	}
	return out, nil
}

func (s *RelationshipService) Create(ctx context.Context, dto *relationship.CreateDTO) (relationship.Relationship, error) {
	if dto == nil {
		return relationship.Relationship{}, &ValidationError{Fields: map[string]string{"SourceID": "missing request body"}}
	}
	if fields, ok := dto.Ok(); !ok {
		return relationship.Relationship{}, &ValidationError{Fields: fields}
	}

	for _, id := range []uuid.UUID{*dto.SourceID, *dto.TargetID} {
		if _, err := s.positions.GetByID(ctx, id); err != nil {
			if errors.Is(err, position.ErrNotFound) {
				return relationship.Relationship{}, &ValidationError{
					Fields: map[string]string{"SourceID": "referenced position does not exist"},
				}
			}
			return relationship.Relationship{}, err
		}
	}

	entity := dto.ToEntity()
	if err := s.repo.Create(ctx, entity); err != nil {
		return relationship.Relationship{}, err
	}
	return entity, nil
}

func (s *RelationshipService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
