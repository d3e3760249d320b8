package utils

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2026-04-01")
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	want := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDay() = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "01-04-2026", "2026/04/01", "2026-13-01"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q) error = nil, want an error", bad)
		}
	}
}

func TestDayOf(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2026, 4, 1, 2, 30, 0, 0, ist) // 2026-03-31 21:00 UTC
	got := DayOf(in)
	want := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DayOf(%v) = %v, want %v", in, got, want)
	}
}
