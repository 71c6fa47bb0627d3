package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day, always held in UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return DateOf(t), nil
}

// String renders the date as yyyy-mm-dd.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Equal reports whether both values denote the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Year() == other.Year() && d.YearDay() == other.YearDay()
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE and TIMESTAMP columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		parsed, err := ParseDate(firstDatePart(string(v)))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(firstDatePart(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// DatePtr returns a pointer to a new Date, handy when building optional fields.
func DatePtr(year int, month time.Month, day int) *Date {
	d := NewDate(year, month, day)
	return &d
}

func firstDatePart(raw string) string {
	if len(raw) > len(DateLayout) {
		return raw[:len(DateLayout)]
	}
	return raw
}
