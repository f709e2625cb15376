package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/connection"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
)

func TestConnectionCreate_DefaultsAndVisibility(t *testing.T) {
	ctx := context.Background()
	positions := newFakePositionRepo()
	repo := newFakeConnectionRepo()
	svc := NewConnectionService(repo, positions)

	from, err := positions.Create(ctx, position.Position{Name: "中书省"})
	require.NoError(t, err)
	to, err := positions.Create(ctx, position.Position{Name: "门下省"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, &connection.CreateDTO{
		FromPositionID: from.ID,
		ToPositionID:   to.ID,
		Date:           "0621-03-01",
		Label:          "奏章流转",
	})
	require.NoError(t, err)
	require.Equal(t, "#000000", created.Color)
	require.Equal(t, "solid", created.Style)
	require.True(t, created.IsVisible)

	// Visible at its own date and after, never before.
	visible, err := svc.VisibleAt(ctx, day(621, time.March, 1))
	require.NoError(t, err)
	require.Len(t, visible, 1)

	visible, err = svc.VisibleAt(ctx, day(900, time.January, 1))
	require.NoError(t, err)
	require.Len(t, visible, 1)

	visible, err = svc.VisibleAt(ctx, day(621, time.February, 28))
	require.NoError(t, err)
	require.Empty(t, visible)
}

func TestConnectionCreate_Validation(t *testing.T) {
	ctx := context.Background()
	positions := newFakePositionRepo()
	svc := NewConnectionService(newFakeConnectionRepo(), positions)

	var verr *ValidationError

	_, err := svc.Create(ctx, &connection.CreateDTO{ToPositionID: 1, Date: "0621-03-01"})
	require.ErrorAs(t, err, &verr)

	_, err = svc.Create(ctx, &connection.CreateDTO{FromPositionID: 1, ToPositionID: 2, Date: ""})
	require.ErrorAs(t, err, &verr)

	_, err = svc.Create(ctx, &connection.CreateDTO{FromPositionID: 1, ToPositionID: 2, Date: "bad"})
	require.ErrorIs(t, err, ErrInvalidDate)

	// Referencing positions that do not exist is rejected.
	_, err = svc.Create(ctx, &connection.CreateDTO{FromPositionID: 1, ToPositionID: 2, Date: "0621-03-01"})
	require.ErrorAs(t, err, &verr)
}
