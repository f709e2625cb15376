package lunisolar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConvert_LunarNewYear(t *testing.T) {
	// 1984-02-02 and 2000-02-05 are both lunar new year days.
	ld, err := Convert(date(1984, time.February, 2))
	require.NoError(t, err)
	require.Equal(t, LunarDate{Year: 1984, Month: 1, Day: 1}, ld)
	require.Equal(t, "1984年1月1日", ld.Label())

	ld, err = Convert(date(2000, time.February, 5))
	require.NoError(t, err)
	require.Equal(t, LunarDate{Year: 2000, Month: 1, Day: 1}, ld)
}

func TestLunarDate_LeapMonthLabel(t *testing.T) {
	ld := LunarDate{Year: 2023, Month: -2, Day: 5}
	require.Equal(t, "2023年闰2月5日", ld.Label())
}

func TestGanzhiOf_NewYearPillars(t *testing.T) {
	// 1984-02-02 opens a 甲子 year; its astronomical day pillar is 丙寅.
	parts, err := GanzhiOf(date(1984, time.February, 2))
	require.NoError(t, err)
	require.Equal(t, "甲子", parts.Year)
	require.Equal(t, "丙寅", parts.Day)
}
