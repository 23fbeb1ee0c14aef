package datetime

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	LocalLayout     = "2006-01-02T15:04:05"
	TimeOfDayLayout = "15:04"
)

// Provider timestamps are wall-clock times at the airport; offsets, when
// present, are dropped rather than converted.
var localLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Date is a calendar date without a time-of-day component.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) Weekday() Weekday {
	return weekdayOf(d.t)
}

// At returns the local datetime offset from midnight of d.
func (d Date) At(offset time.Duration) Local {
	return Local{t: d.t.Add(offset)}
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Local is a wall-clock datetime with no zone attached.
type Local struct {
	t time.Time
}

func ParseLocal(s string) (Local, error) {
	s = strings.TrimSpace(s)
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalOf(t), nil
		}
	}

	return Local{}, &time.ParseError{
		Value:   s,
		Message: ": unable to parse local datetime",
	}
}

// LocalOf keeps the wall clock of t and discards its location.
func LocalOf(t time.Time) Local {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return Local{t: time.Date(y, mo, d, h, mi, s, 0, time.UTC)}
}

func (l Local) Time() time.Time { return l.t }

func (l Local) IsZero() bool { return l.t.IsZero() }

func (l Local) Add(d time.Duration) Local {
	return Local{t: l.t.Add(d)}
}

func (l Local) Before(other Local) bool { return l.t.Before(other.t) }

func (l Local) Date() Date { return DateOf(l.t) }

func (l Local) Clock() TimeOfDay { return ClockOf(l.t) }

func (l Local) String() string {
	return l.t.Format(LocalLayout)
}

func (l Local) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *Local) UnmarshalJSON(data []byte) error {
	parsed, err := ParseLocal(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
