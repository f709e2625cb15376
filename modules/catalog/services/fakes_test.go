package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
)

type fakePositionRepo struct {
	seq       int
	order     map[uuid.UUID]int
	positions map[uuid.UUID]position.Position
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{
		order:     map[uuid.UUID]int{},
		positions: map[uuid.UUID]position.Position{},
	}
}

func (f *fakePositionRepo) GetAll(context.Context) ([]position.Position, error) {
	out := make([]position.Position, 0, len(f.positions))
	for _, p := range f.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return f.order[out[i].ID] < f.order[out[j].ID]
	})
	return out, nil
}

func (f *fakePositionRepo) GetByID(_ context.Context, id uuid.UUID) (position.Position, error) {
	p, ok := f.positions[id]
	if !ok {
		return position.Position{}, position.ErrNotFound
	}
	return p, nil
}

func (f *fakePositionRepo) Create(_ context.Context, p position.Position) error {
	f.seq++
	f.order[p.ID] = f.seq
	f.positions[p.ID] = p
	return nil
}

func (f *fakePositionRepo) Update(_ context.Context, p position.Position) error {
	if _, ok := f.positions[p.ID]; !ok {
		return position.ErrNotFound
	}
	f.positions[p.ID] = p
	return nil
}

func (f *fakePositionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.positions[id]; !ok {
		return position.ErrNotFound
	}
	for childID, p := range f.positions {
		if p.SuperiorID != nil && *p.SuperiorID == id {
			p.SuperiorID = nil
			f.positions[childID] = p
		}
	}
	delete(f.positions, id)
	return nil
}

type fakeRelationshipRepo struct {
	seq   int
	order map[uuid.UUID]int
	edges map[uuid.UUID]relationship.Relationship
}

func newFakeRelationshipRepo() *fakeRelationshipRepo {
	return &fakeRelationshipRepo{
		order: map[uuid.UUID]int{},
		edges: map[uuid.UUID]relationship.Relationship{},
	}
}

func (f *fakeRelationshipRepo) GetAll(context.Context) ([]relationship.Relationship, error) {
	out := make([]relationship.Relationship, 0, len(f.edges))
	for _, r := range f.edges {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return f.order[out[i].ID] < f.order[out[j].ID]
	})
	return out, nil
}

func (f *fakeRelationshipRepo) Create(_ context.Context, r relationship.Relationship) error {
	f.seq++
	f.order[r.ID] = f.seq
	f.edges[r.ID] = r
	return nil
}

func (f *fakeRelationshipRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.edges[id]; !ok {
		return relationship.ErrNotFound
	}
	delete(f.edges, id)
	return nil
}

func (f *fakeRelationshipRepo) DeleteByPosition(_ context.Context, positionID uuid.UUID) error {
	for id, r := range f.edges {
		if r.SourceID == positionID || r.TargetID == positionID {
			delete(f.edges, id)
		}
	}
	return nil
}
