package utils

import (
	"fmt"
	"time"
)

// DateLayout is the civil-date format used everywhere: log keys, week math,
// user.last_active. Dates are always rendered from their own calendar
// fields, never re-converted through UTC.
const DateLayout = "2006-01-02"

// CostaRica is the single reference timezone of the challenge (UTC-6, no DST).
var CostaRica = time.FixedZone("America/Costa_Rica", -6*60*60)

// Spanish short day names, Sunday first to match time.Weekday.
var shortDayNames = [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"}

// Today returns the current instant in Costa Rica, shifted by offsetDays.
// The offset exists only so dev/test environments can simulate "today";
// production runs with offset 0.
func Today(offsetDays int) time.Time {
	t := time.Now().In(CostaRica)
	if offsetDays != 0 {
		t = t.AddDate(0, 0, offsetDays)
	}
	return t
}

// FormatDate renders t as YYYY-MM-DD using t's own calendar fields.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as a Costa Rica civil date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, CostaRica)
}

// WeekKey returns the ISO-week identifier for t, e.g. "2025-W7".
// ISO weeks are Thursday-anchored with Monday as the first day.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}

// MondayOf returns the Monday of t's week at t's clock time. When t falls
// on a Sunday, Monday is six days back.
func MondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// ShortDayName returns the localized short weekday name for t.
func ShortDayName(t time.Time) string {
	return shortDayNames[int(t.Weekday())]
}
