package datetime

import (
	"fmt"
	"strings"
	"time"
)

// Weekday uses ISO 8601 numbering, Monday=1 through Sunday=7. The zero
// value is not a day and marks an unset field.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// ParseWeekday matches full English day names, ignoring case.
func ParseWeekday(name string) (Weekday, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == upper {
			return Weekday(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

func weekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday())+6)%7 + 1)
}

func (w Weekday) Valid() bool { return w >= Monday && w <= Sunday }

// Index is the Monday=0 through Sunday=6 position of w, or -1 when w is
// not a day.
func (w Weekday) Index() int {
	if !w.Valid() {
		return -1
	}
	return int(w) - 1
}

// DaysUntil is the forward distance from w to next, in [0, 6].
func (w Weekday) DaysUntil(next Weekday) int {
	return ((next.Index()-w.Index())%7 + 7) % 7
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

func (w Weekday) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

func (w *Weekday) UnmarshalJSON(data []byte) error {
	parsed, err := ParseWeekday(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
