package utils

import (
	"fmt"
	"time"
)

// Dates are stored and compared at day granularity in UTC. Every lookup
// and every weekday derivation must go through the same normalization,
// otherwise exact-equality matches on days.date break across time zones.

// StartOfDay обрезает время до начала дня (00:00 UTC)
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date truncated to day start.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// ParseDate accepts a plain ISO date or a full RFC3339 timestamp and
// normalizes it to day start.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return StartOfDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return StartOfDay(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// WeekDay возвращает день недели (0 = воскресенье .. 6 = суббота)
func WeekDay(t time.Time) int {
	return int(StartOfDay(t).Weekday())
}
