package lunisolar

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// LunarDate is the lunar calendar rendering of a Gregorian date. Month is
// negative for leap months, following the conversion library's convention.
type LunarDate struct {
	Year  int
	Month int
	Day   int
}

// Label renders the date the way the record UI displays it, e.g.
// "1984年1月1日". Leap months carry a 闰 prefix.
func (d LunarDate) Label() string {
	if d.Month < 0 {
		return fmt.Sprintf("%d年闰%d月%d日", d.Year, -d.Month, d.Day)
	}
	return fmt.Sprintf("%d年%d月%d日", d.Year, d.Month, d.Day)
}

// Convert maps a Gregorian date to its lunar equivalent. The underlying
// astronomical conversion is delegated to lunar-go; inputs outside its
// supported range surface as an error rather than a panic.
func Convert(t time.Time) (ld LunarDate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lunar conversion failed: %v", r)
		}
	}()

	u := DateOnlyUTC(t)
	lunar := calendar.NewSolarFromYmd(u.Year(), int(u.Month()), u.Day()).GetLunar()
	return LunarDate{
		Year:  lunar.GetYear(),
		Month: lunar.GetMonth(),
		Day:   lunar.GetDay(),
	}, nil
}

// GanzhiParts are the sexagenary labels of a date's lunar year, month and
// day as reported by the conversion library.
type GanzhiParts struct {
	Year  string
	Month string
	Day   string
}

// GanzhiOf returns the full set of ganzhi labels for t.
func GanzhiOf(t time.Time) (parts GanzhiParts, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ganzhi conversion failed: %v", r)
		}
	}()

	u := DateOnlyUTC(t)
	lunar := calendar.NewSolarFromYmd(u.Year(), int(u.Month()), u.Day()).GetLunar()
	return GanzhiParts{
		Year:  lunar.GetYearInGanZhi(),
		Month: lunar.GetMonthInGanZhi(),
		Day:   lunar.GetDayInGanZhi(),
	}, nil
}
