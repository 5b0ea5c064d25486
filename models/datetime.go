package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateFormat      = "2006-01-02"
	TimeInputFormat = "15:04"
	TimeWireFormat  = "15:04:05"
)

// DateOnly is a calendar date without a time component. It travels as
// "YYYY-MM-DD" on the wire and maps to a DATE column.
type DateOnly struct {
	time.Time
}

func NewDateOnly(t time.Time) DateOnly {
	year, month, day := t.Date()
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD" input.
func ParseDate(s string) (DateOnly, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return DateOnly{}, err
	}
	return DateOnly{t}, nil
}

func (d DateOnly) String() string {
	return d.Format(DateFormat)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDateOnly(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		return nil
	}
	return fmt.Errorf("cannot scan %T into DateOnly", value)
}

func (d *DateOnly) scanString(s string) error {
	if len(s) > len(DateFormat) {
		s = s[:len(DateFormat)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall-clock time without a date. Input is accepted as
// "HH:MM", output is serialized as "HH:MM:SS", and it maps to a TIME column.
type TimeOfDay struct {
	time.Time
}

// ParseTime parses "HH:MM" input.
func ParseTime(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeInputFormat, s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{t}, nil
}

func (t TimeOfDay) String() string {
	return t.Format(TimeWireFormat)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeWireFormat) + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Format(TimeWireFormat), nil
}

func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*t = TimeOfDay{time.Date(0, 1, 1, v.Hour(), v.Minute(), v.Second(), 0, time.UTC)}
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		return nil
	}
	return fmt.Errorf("cannot scan %T into TimeOfDay", value)
}

func (t *TimeOfDay) scanString(s string) error {
	parsed, err := time.Parse(TimeWireFormat, s)
	if err != nil {
		parsed, err = time.Parse(TimeInputFormat, s)
	}
	if err != nil {
		return errors.New("malformed time value: " + s)
	}
	*t = TimeOfDay{parsed}
	return nil
}
