// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package roadmap

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// dateLayout is the ISO 8601 calendar date format used on the wire
// and in the database.
const dateLayout = "2006-01-02"

// Date is a calendar date with no time of day or time zone.  The
// zero Date means "no date" and is encoded as JSON null.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t, in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current local date according to clk.
func Today(clk clock.Clock) Date {
	return DateOf(clk.Now())
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// In returns the time at midnight at the start of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.In(time.UTC).AddDate(0, 0, n))
}

// String returns d in YYYY-MM-DD form, or an empty string for the
// zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.In(time.UTC).Format(dateLayout)
}

// MarshalText returns d in YYYY-MM-DD form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a date in YYYY-MM-DD form.  An empty string
// produces the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON returns d as a JSON string, or null for the zero Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string or null into d.
func (d *Date) UnmarshalJSON(in []byte) error {
	in = bytes.TrimSpace(in)
	if bytes.Equal(in, []byte("null")) {
		*d = Date{}
		return nil
	}
	if len(in) < 2 || in[0] != '"' || in[len(in)-1] != '"' {
		return fmt.Errorf("invalid date %s", in)
	}
	return d.UnmarshalText(in[1 : len(in)-1])
}

// Value implements database/sql/driver.Valuer, storing the zero Date
// as NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.In(time.UTC), nil
}

// Scan implements database/sql.Scanner.  It accepts the time.Time
// values the PostgreSQL driver returns for DATE columns, as well as
// textual dates.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.UnmarshalText(v)
	case string:
		return d.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into a date", src)
	}
}
