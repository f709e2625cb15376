package persistence

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func pgDateOnlyUTC(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	u := t.UTC()
	y, m, d := u.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func pgNullableDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgDateOnlyUTC(*t)
}

func pgNullableInt8(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func fromPgDate(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	u := d.Time.UTC()
	y, m, dd := u.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func fromPgNullableDate(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := fromPgDate(d)
	return &t
}

func fromPgNullableInt8(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
