// Package datecalc holds the date arithmetic behind the derived fields shown on
// rental, service and vehicle records. Every function takes its inputs
// explicitly, including "today", so results are reproducible in tests.
package datecalc

import "time"

// FloorDiv divides like Python's //, rounding toward negative infinity.
// Plain Go division truncates toward zero, which flips the week/month
// bucketing for negative durations.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DayOfWeek returns the weekday name ("Monday", ...) or "" when the date is absent.
func DayOfWeek(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Weekday().String()
}

// DaysBetween returns the whole-day span end-start. Negative when end precedes
// start, never clamped. ok is false when either date is absent.
func DaysBetween(start, end *time.Time) (int, bool) {
	if start == nil || end == nil {
		return 0, false
	}
	return int(truncate(*end).Sub(truncate(*start)).Hours() / 24), true
}

// WeeksBetween is DaysBetween floored into whole weeks.
func WeeksBetween(start, end *time.Time) (int, bool) {
	days, ok := DaysBetween(start, end)
	if !ok {
		return 0, false
	}
	return FloorDiv(days, 7), true
}

// MonthsBetween is DaysBetween floored into whole 30-day months.
func MonthsBetween(start, end *time.Time) (int, bool) {
	days, ok := DaysBetween(start, end)
	if !ok {
		return 0, false
	}
	return FloorDiv(days, 30), true
}

// DaysUntil returns d-today in whole days; negative once d has passed.
func DaysUntil(d *time.Time, today time.Time) (int, bool) {
	if d == nil {
		return 0, false
	}
	return int(truncate(*d).Sub(truncate(today)).Hours() / 24), true
}

// DaysPast returns today-d in whole days; negative while d is still ahead.
func DaysPast(d *time.Time, today time.Time) (int, bool) {
	if d == nil {
		return 0, false
	}
	return int(truncate(today).Sub(truncate(*d)).Hours() / 24), true
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
