package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// CalendarDate is a wall-calendar day with no time zone attached. The
// wire form is DD-MM-YYYY; comparisons go through Ordinal, never the
// string form, which does not sort lexically.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// ParseCalendarDate parses the DD-MM-YYYY wire form.
func ParseCalendarDate(s string) (CalendarDate, error) {
	var d CalendarDate
	if _, err := fmt.Sscanf(s, "%02d-%02d-%04d", &d.Day, &d.Month, &d.Year); err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: want DD-MM-YYYY", s)
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return CalendarDate{}, fmt.Errorf("invalid date %q: out of range", s)
	}
	return d, nil
}

// CalendarDateOf truncates an instant to its calendar day in the
// instant's location.
func CalendarDateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Ordinal returns a sortable integer form (YYYYMMDD).
func (d CalendarDate) Ordinal() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Ordinal() < other.Ordinal()
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.Ordinal() > other.Ordinal()
}

// Time joins the date with a clock time into an instant in local time.
func (d CalendarDate) Time(clock ClockTime) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, clock.Hour, clock.Minute, 0, 0, time.Local)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as a DATE column so SQL ORDER BY is chronological.
func (d CalendarDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), nil
}

func (d *CalendarDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = CalendarDate{}
		return nil
	case time.Time:
		*d = CalendarDateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	}
	return fmt.Errorf("cannot scan %T into CalendarDate", src)
}

func (d *CalendarDate) scanString(s string) error {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		*d = CalendarDateOf(t)
		return nil
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ClockTime is a wall-clock time of day, wire form HH:MM.
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	var c ClockTime
	if _, err := fmt.Sscanf(s, "%02d:%02d", &c.Hour, &c.Minute); err != nil {
		return ClockTime{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return c, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes since midnight, used for intra-day ordering.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*c = ClockTime{}
		return nil
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ClockTime) Value() (driver.Value, error) {
	return c.String(), nil
}

func (c *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = ClockTime{}
		return nil
	case []byte:
		return c.scanString(string(v))
	case string:
		return c.scanString(v)
	case time.Time:
		*c = ClockTime{Hour: v.Hour(), Minute: v.Minute()}
		return nil
	}
	return fmt.Errorf("cannot scan %T into ClockTime", src)
}

func (c *ClockTime) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
