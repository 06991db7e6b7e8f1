package datecalc

import (
	"testing"
	"time"
)

func d(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{8, 7, 1},
		{14, 7, 2},
		{6, 7, 0},
		{-1, 7, -1},
		{-8, 7, -2},
		{30, 30, 1},
		{59, 30, 1},
		{60, 30, 2},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	days, ok := DaysBetween(d(2025, time.May, 1), d(2025, time.May, 10))
	if !ok || days != 9 {
		t.Fatalf("expected 9 days, got %d (ok=%v)", days, ok)
	}

	// reversed dates stay negative, never clamped
	days, ok = DaysBetween(d(2025, time.May, 10), d(2025, time.May, 1))
	if !ok || days != -9 {
		t.Fatalf("expected -9 days, got %d (ok=%v)", days, ok)
	}

	if _, ok := DaysBetween(nil, d(2025, time.May, 1)); ok {
		t.Fatalf("expected unavailable when start is absent")
	}
}

func TestWeeksAndMonthsFollowFloorDivision(t *testing.T) {
	start, end := d(2025, time.January, 1), d(2025, time.February, 15) // 45 days

	days, _ := DaysBetween(start, end)
	weeks, ok := WeeksBetween(start, end)
	if !ok || weeks != FloorDiv(days, 7) {
		t.Fatalf("weeks = %d, want %d", weeks, FloorDiv(days, 7))
	}

	months, ok := MonthsBetween(start, end)
	if !ok || months != 1 {
		t.Fatalf("months = %d, want 1", months)
	}

	// negative span floors toward negative infinity
	weeks, _ = WeeksBetween(end, start)
	if weeks != FloorDiv(-45, 7) {
		t.Fatalf("negative weeks = %d, want %d", weeks, FloorDiv(-45, 7))
	}
}

func TestDaysUntilAndPast(t *testing.T) {
	today := time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)

	until, ok := DaysUntil(d(2025, time.June, 15), today)
	if !ok || until != 5 {
		t.Fatalf("DaysUntil = %d, want 5", until)
	}

	until, _ = DaysUntil(d(2025, time.June, 5), today)
	if until != -5 {
		t.Fatalf("DaysUntil past date = %d, want -5", until)
	}

	past, ok := DaysPast(d(2025, time.June, 5), today)
	if !ok || past != 5 {
		t.Fatalf("DaysPast = %d, want 5", past)
	}

	past, _ = DaysPast(d(2025, time.June, 15), today)
	if past != -5 {
		t.Fatalf("DaysPast future date = %d, want -5", past)
	}

	if _, ok := DaysUntil(nil, today); ok {
		t.Fatalf("expected unavailable for absent date")
	}
}

func TestDayOfWeek(t *testing.T) {
	if got := DayOfWeek(d(2025, time.June, 9)); got != "Monday" {
		t.Fatalf("DayOfWeek = %q, want Monday", got)
	}
	if got := DayOfWeek(nil); got != "" {
		t.Fatalf("DayOfWeek(nil) = %q, want empty", got)
	}
}
