package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// TimeOfDay is a canonical 24-hour clock value derived from a free-text
// ride time. It is ephemeral: produced by ParseRideTime, consumed by the
// formatters, never persisted.
type TimeOfDay struct {
	Hours24 int
	Minutes int
}

// Ride times are typed by staff and customers in whatever form comes to
// mind: "9:30", "09.30", "14h30", "9pm", "9:30 PM". The patterns accept
// all of them; anything else is a no-match, never an error.
var (
	hourMinutePattern = regexp.MustCompile(`^(\d{1,2})[:.h](\d{2})\s*(am|pm)?$`)
	hourOnlyPattern   = regexp.MustCompile(`^(\d{1,2})\s*(am|pm)$`)
)

// ParseRideTime parses a loosely formatted time string. The second return
// value reports whether the input matched a recognized shape; callers
// always have a fallback path, so no error type is involved.
func ParseRideTime(raw string) (TimeOfDay, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return TimeOfDay{}, false
	}

	if m := hourMinutePattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return newTimeOfDay(hour, minute, m[3]), true
	}

	if m := hourOnlyPattern.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		return newTimeOfDay(hour, 0, m[2]), true
	}

	return TimeOfDay{}, false
}

func newTimeOfDay(hour, minute int, meridiem string) TimeOfDay {
	switch meridiem {
	case "am":
		hour %= 12
	case "pm":
		hour = hour%12 + 12
	}
	return TimeOfDay{
		Hours24: clampInt(hour, 0, 23),
		Minutes: clampInt(minute, 0, 59),
	}
}

// MinutesSinceMidnight positions the time within its day for chronological
// ordering.
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.Hours24*60 + t.Minutes
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
