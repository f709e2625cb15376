package position

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAppointment_ActiveAt_InclusiveBoundaries(t *testing.T) {
	end := day(2020, time.December, 31)
	a := Appointment{
		StartDate: day(2020, time.January, 1),
		EndDate:   &end,
	}

	require.False(t, a.ActiveAt(day(2019, time.December, 31)))
	require.True(t, a.ActiveAt(day(2020, time.January, 1)))
	require.True(t, a.ActiveAt(day(2020, time.June, 15)))
	require.True(t, a.ActiveAt(day(2020, time.December, 31)))
	require.False(t, a.ActiveAt(day(2021, time.January, 1)))
}

func TestAppointment_ActiveAt_OpenEnded(t *testing.T) {
	a := Appointment{StartDate: day(1368, time.January, 1)}

	require.True(t, a.ActiveAt(day(1368, time.January, 1)))
	require.True(t, a.ActiveAt(day(1644, time.April, 25)))
	require.False(t, a.ActiveAt(day(1367, time.December, 31)))
}

func TestCreateDTO_Ok(t *testing.T) {
	dto := &CreateDTO{Name: "  尚书令  "}
	errs, ok := dto.Ok()
	require.True(t, ok, "errors: %v", errs)
	require.Equal(t, "尚书令", dto.Name)

	dto = &CreateDTO{Name: "   "}
	errs, ok = dto.Ok()
	require.False(t, ok)
	require.NotEmpty(t, errs.First("Name"))
}

func TestUpdateDTO_Ok_RejectsBlankName(t *testing.T) {
	blank := "  "
	dto := &UpdateDTO{Name: &blank}
	_, ok := dto.Ok()
	require.False(t, ok)

	dto = &UpdateDTO{}
	_, ok = dto.Ok()
	require.True(t, ok)
}
