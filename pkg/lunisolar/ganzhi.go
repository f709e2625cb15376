// Package lunisolar converts Gregorian dates to Chinese lunar calendar
// labels and sexagenary (ganzhi) cycle labels.
package lunisolar

import "time"

var (
	stems    = []rune("甲乙丙丁戊己庚辛壬癸")
	branches = []rune("子丑寅卯辰巳午未申酉戌亥")

	// epoch is the first day of a known jiazi cycle: 1984-02-02 is 甲子日.
	epoch = time.Date(1984, time.February, 2, 0, 0, 0, 0, time.UTC)
)

// DateOnlyUTC truncates t to a UTC calendar date.
func DateOnlyUTC(t time.Time) time.Time {
	u := t.UTC()
	y, m, d := u.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GanzhiDay returns the sexagenary day label for t, e.g. "甲子日".
// Dates before the epoch are handled by true mathematical modulo, so the
// cycle extends backwards without negative indexes.
func GanzhiDay(t time.Time) string {
	deltaDays := int(DateOnlyUTC(t).Sub(epoch).Hours() / 24)
	stem := mod(deltaDays, 10)
	branch := mod(deltaDays, 12)
	return string(stems[stem]) + string(branches[branch]) + "日"
}

func mod(a, n int) int {
	return (a%n + n) % n
}
