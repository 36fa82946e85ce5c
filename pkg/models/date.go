package models

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the layout dates are written with, in ledger files and on screen.
const DateFormat = "2006-01-02"

// fullDateLayouts are accepted for a complete calendar date. Slashes are
// normalized to dashes before parsing.
var fullDateLayouts = []string{
	"2006-1-2",
	"20060102",
}

// Date is a calendar day, without time of day or location.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date { return NewDate(t.Date()) }

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Add returns d shifted by the given number of days.
func (d Date) Add(days int) Date { return NewDate(d.y, d.m, d.d+days) }

func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool  { return d.time().After(x.time()) }

func (d Date) String() string { return d.time().Format(DateFormat) }

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// ParseDate parses a complete calendar date such as 2026-10-14, 2026/10/14,
// 2026-1-2 or 20261014. Out of range days and months are rejected.
func ParseDate(s string) (Date, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	for _, layout := range fullDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", s, DateFormat)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
