package datetime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseWeekday_CaseInsensitive(t *testing.T) {
	cases := map[string]Weekday{
		"MONDAY":   Monday,
		"friday":   Friday,
		"Sunday":   Sunday,
		" TUESDAY": Tuesday,
	}
	for in, want := range cases {
		got, err := ParseWeekday(in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseWeekday(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseWeekday("FUNDAY"); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestWeekday_DaysUntil(t *testing.T) {
	tests := []struct {
		from, to Weekday
		want     int
	}{
		{Friday, Sunday, 2},
		{Sunday, Friday, 5},
		{Wednesday, Wednesday, 0},
		{Monday, Sunday, 6},
	}
	for _, tt := range tests {
		if got := tt.from.DaysUntil(tt.to); got != tt.want {
			t.Fatalf("%v.DaysUntil(%v) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestWeekday_Index(t *testing.T) {
	days := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i, d := range days {
		if d.Index() != i {
			t.Fatalf("%v.Index() = %d, want %d", d, d.Index(), i)
		}
	}
	if Weekday(0).Index() != -1 || Weekday(8).Index() != -1 {
		t.Fatal("expected -1 for values outside the week")
	}
}

func TestDate_WeekdayMondayBased(t *testing.T) {
	// 2025-01-03 is a Friday.
	d := NewDate(2025, time.January, 3)
	if d.Weekday() != Friday {
		t.Fatalf("unexpected weekday: %v", d.Weekday())
	}
	if d.AddDays(3).Weekday() != Monday {
		t.Fatalf("unexpected weekday after 3 days: %v", d.AddDays(3).Weekday())
	}
}

func TestParseLocal_DropsOffset(t *testing.T) {
	tests := map[string]string{
		"2024-12-10T18:00:00":       "2024-12-10T18:00:00",
		"2024-12-10T18:00":          "2024-12-10T18:00:00",
		"2024-12-10T18:00:00+01:00": "2024-12-10T18:00:00",
		"2024-12-10 07:05:09":       "2024-12-10T07:05:09",
	}
	for in, want := range tests {
		got, err := ParseLocal(in)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", in, err)
		}
		if got.String() != want {
			t.Fatalf("ParseLocal(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseLocal("10/12/2024 18:00"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("11:15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != NewTimeOfDay(11, 15) || got.String() != "11:15" {
		t.Fatalf("unexpected time of day: %v", got)
	}

	withSeconds, err := ParseTimeOfDay("18:00:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withSeconds <= NewTimeOfDay(18, 0) {
		t.Fatalf("seconds should be kept: %v", withSeconds)
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Date    Date      `json:"date"`
		At      Local     `json:"at"`
		Clock   TimeOfDay `json:"clock"`
		Weekday Weekday   `json:"weekday"`
	}

	in := []byte(`{"date":"2025-01-03","at":"2025-01-03T09:30:00","clock":"11:15","weekday":"friday"}`)
	var p payload
	if err := json.Unmarshal(in, &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Date.Equal(NewDate(2025, time.January, 3)) {
		t.Fatalf("unexpected date: %v", p.Date)
	}
	if p.At.Clock() != NewTimeOfDay(9, 30) {
		t.Fatalf("unexpected local clock: %v", p.At.Clock())
	}
	if p.Weekday != Friday {
		t.Fatalf("unexpected weekday: %v", p.Weekday)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"date":"2025-01-03","at":"2025-01-03T09:30:00","clock":"11:15","weekday":"FRIDAY"}`
	if string(out) != want {
		t.Fatalf("unexpected json: %s", out)
	}

	var bad payload
	if err := json.Unmarshal([]byte(`{"date":"03.01.2025"}`), &bad); err == nil {
		t.Fatal("expected error for malformed date")
	}
}
