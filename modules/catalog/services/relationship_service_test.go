package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hanlinworks/zhiguan/modules/catalog/domain/position"
	"github.com/hanlinworks/zhiguan/modules/catalog/domain/relationship"
)

func newRelationshipService(t *testing.T) (*RelationshipService, uuid.UUID, uuid.UUID) {
	t.Helper()

	positions := newFakePositionRepo()
	relationships := newFakeRelationshipRepo()

	a := position.Position{ID: uuid.New(), Name: "丞相"}
	b := position.Position{ID: uuid.New(), Name: "九卿"}
	require.NoError(t, positions.Create(context.Background(), a))
	require.NoError(t, positions.Create(context.Background(), b))

	return NewRelationshipService(relationships, positions), a.ID, b.ID
}

func TestRelationshipCreate_DefaultsType(t *testing.T) {
	svc, a, b := newRelationshipService(t)

	created, err := svc.Create(context.Background(), &relationship.CreateDTO{
		SourceID: &a,
		TargetID: &b,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, "superior", created.Type)
	require.Equal(t, a, created.SourceID)
	require.Equal(t, b, created.TargetID)
}

func TestRelationshipCreate_MissingEndpoints(t *testing.T) {
	svc, a, _ := newRelationshipService(t)

	_, err := svc.Create(context.Background(), &relationship.CreateDTO{SourceID: &a})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "TargetID")
}

func TestRelationshipCreate_UnknownPositionRejected(t *testing.T) {
	svc, a, _ := newRelationshipService(t)

	ghost := uuid.New()
	_, err := svc.Create(context.Background(), &relationship.CreateDTO{
		SourceID: &a,
		TargetID: &ghost,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRelationshipDelete(t *testing.T) {
	svc, a, b := newRelationshipService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &relationship.CreateDTO{SourceID: &a, TargetID: &b})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	err = svc.Delete(ctx, created.ID)
	require.True(t, errors.Is(err, relationship.ErrNotFound))
}
