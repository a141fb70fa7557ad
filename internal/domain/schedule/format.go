package schedule

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Placeholder rendered when a date or time field is absent. Formatting in
// this package never fails: the data comes from free-text fields, and one
// malformed row must not take down a table or calendar render.
const Placeholder = "-"

const dayKeyLayout = "2006-01-02"

// Layouts accepted for date strings coming from the reservations backend.
// RFC3339 first since that is what the backend emits for timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dayKeyLayout,
	"2006/01/02",
}

// FormatDateLabel renders a display label like "5th March 2025".
// Absent input yields the placeholder; a string that is not a date is
// returned unchanged so operator-entered text is never silently dropped.
func FormatDateLabel(v any) string {
	switch d := v.(type) {
	case nil:
		return Placeholder
	case time.Time:
		return dateLabel(d)
	case *time.Time:
		if d == nil {
			return Placeholder
		}
		return dateLabel(*d)
	case string:
		trimmed := strings.TrimSpace(d)
		if trimmed == "" {
			return Placeholder
		}
		t, ok := parseDateString(trimmed)
		if !ok {
			return d
		}
		return dateLabel(t)
	default:
		return Placeholder
	}
}

func dateLabel(t time.Time) string {
	return fmt.Sprintf("%d%s %s %d", t.Day(), ordinalSuffix(t.Day()), t.Month().String(), t.Year())
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// DayKey derives the canonical YYYY-MM-DD grouping key from local calendar
// fields, so every instant of one local day maps to the same key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// DayKeyFromString derives a day key from a free-text date string.
// The boolean reports whether the string parsed as a date.
func DayKeyFromString(raw string) (string, bool) {
	t, ok := parseDateString(strings.TrimSpace(raw))
	if !ok {
		return "", false
	}
	return DayKey(t), true
}

func parseDateString(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatRideTime renders a parsed ride time in 12-hour form ("2:30 PM").
// Unparseable input comes back trimmed but otherwise untouched; empty
// input yields the placeholder.
func FormatRideTime(raw string) string {
	t, ok := ParseRideTime(raw)
	if !ok {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return Placeholder
		}
		return trimmed
	}

	meridiem := "AM"
	if t.Hours24 >= 12 {
		meridiem = "PM"
	}
	hour12 := t.Hours24 % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, t.Minutes, meridiem)
}

// TimeSortValue orders same-day bookings chronologically. Unparseable or
// missing times sort last under ascending order via +Inf.
func TimeSortValue(raw string) float64 {
	t, ok := ParseRideTime(raw)
	if !ok {
		return math.Inf(1)
	}
	return float64(t.MinutesSinceMidnight())
}
