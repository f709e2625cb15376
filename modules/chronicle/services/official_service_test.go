package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/official"
	"github.com/hanlinworks/zhiguan/modules/chronicle/domain/position"
)

func TestOfficialService_GetWithAppointmentHistory(t *testing.T) {
	ctx := context.Background()
	officials := newFakeOfficialRepo()
	positions := newFakePositionRepo()
	svc := NewOfficialService(officials, positions)

	o, err := svc.Create(ctx, &official.CreateDTO{Name: "房玄龄", Bio: "唐初名相"})
	require.NoError(t, err)

	p, err := positions.Create(ctx, position.Position{Name: "中书令"})
	require.NoError(t, err)
	_, err = positions.CreateAppointment(ctx, position.Appointment{
		PositionID: p.ID, OfficialID: o.ID, StartDate: day(626, time.September, 1),
	})
	require.NoError(t, err)
	_, err = positions.CreateAppointment(ctx, position.Appointment{
		PositionID: p.ID, OfficialID: o.ID, StartDate: day(629, time.February, 1),
	})
	require.NoError(t, err)

	record, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, "房玄龄", record.Official.Name)
	require.Len(t, record.Appointments, 2)
	require.True(t, record.Appointments[0].StartDate.Before(record.Appointments[1].StartDate))
}

func TestOfficialService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	officials := newFakeOfficialRepo()
	svc := NewOfficialService(officials, newFakePositionRepo())

	o, err := svc.Create(ctx, &official.CreateDTO{Name: "杜如晦"})
	require.NoError(t, err)

	bio := "与房玄龄并称房谋杜断"
	require.NoError(t, svc.Update(ctx, o.ID, &official.UpdateDTO{Bio: &bio}))

	record, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, "杜如晦", record.Official.Name)
	require.Equal(t, bio, record.Official.Bio)
}

func TestOfficialService_UpdateTrimsName(t *testing.T) {
	ctx := context.Background()
	officials := newFakeOfficialRepo()
	svc := NewOfficialService(officials, newFakePositionRepo())

	o, err := svc.Create(ctx, &official.CreateDTO{Name: "魏徵"})
	require.NoError(t, err)

	padded := "  魏征  "
	require.NoError(t, svc.Update(ctx, o.ID, &official.UpdateDTO{Name: &padded}))

	record, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, "魏征", record.Official.Name, "stored name carries no surrounding whitespace")
}

func TestOfficialService_NotFound(t *testing.T) {
	svc := NewOfficialService(newFakeOfficialRepo(), newFakePositionRepo())

	_, err := svc.Get(context.Background(), 123)
	require.ErrorIs(t, err, official.ErrNotFound)

	name := "x"
	err = svc.Update(context.Background(), 123, &official.UpdateDTO{Name: &name})
	require.ErrorIs(t, err, official.ErrNotFound)
}

func TestOfficialService_RejectsBlankName(t *testing.T) {
	svc := NewOfficialService(newFakeOfficialRepo(), newFakePositionRepo())

	_, err := svc.Create(context.Background(), &official.CreateDTO{Name: "  "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
