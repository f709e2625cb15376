package services

import (
	"time"

	"github.com/hanlinworks/zhiguan/pkg/serrors"
)

const validDateLayout = "2006-01-02"

var ErrInvalidDate = serrors.NewError("CHRONICLE_INVALID_DATE", "invalid date format, use YYYY-MM-DD", "")

func normalizeValidDateUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	u := t.UTC()
	y, m, d := u.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TodayUTC is the default target date when a caller supplies none.
func TodayUTC() time.Time {
	return normalizeValidDateUTC(time.Now())
}

// ParseValidDate parses a YYYY-MM-DD date string. A malformed value is an
// error; the absent-value default belongs to the caller, so absence and
// malformation are never conflated.
func ParseValidDate(s string) (time.Time, error) {
	t, err := time.Parse(validDateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return normalizeValidDateUTC(t), nil
}

// ParseValidDateOr parses s, returning fallback when s is empty.
func ParseValidDateOr(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return normalizeValidDateUTC(fallback), nil
	}
	return ParseValidDate(s)
}
