package datetime

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay counts seconds since midnight.
type TimeOfDay int

const secondsPerDay = 24 * 60 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60)
}

func ClockOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(h*3600 + m*60 + s)
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeOfDayLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockOf(t), nil
		}
	}
	return 0, fmt.Errorf("parse time of day %q: expected HH:MM", s)
}

func (c TimeOfDay) Hour() int   { return int(c) / 3600 }
func (c TimeOfDay) Minute() int { return int(c) % 3600 / 60 }
func (c TimeOfDay) Second() int { return int(c) % 60 }

func (c TimeOfDay) Valid() bool { return c >= 0 && c < secondsPerDay }

func (c TimeOfDay) String() string {
	if c.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *TimeOfDay) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTimeOfDay(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
