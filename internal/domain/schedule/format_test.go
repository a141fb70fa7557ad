//go:build unit

package schedule_test

import (
	"math"
	"testing"
	"time"

	"jetski-rentals/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateLabel(t *testing.T) {
	t.Run("ordinal suffixes", func(t *testing.T) {
		cases := map[int]string{
			1:  "1st March 2025",
			2:  "2nd March 2025",
			3:  "3rd March 2025",
			4:  "4th March 2025",
			11: "11th March 2025",
			12: "12th March 2025",
			13: "13th March 2025",
			21: "21st March 2025",
			22: "22nd March 2025",
			23: "23rd March 2025",
			31: "31st March 2025",
		}
		for day, want := range cases {
			d := time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
			assert.Equal(t, want, schedule.FormatDateLabel(d))
		}
	})

	t.Run("string inputs", func(t *testing.T) {
		assert.Equal(t, "5th March 2025", schedule.FormatDateLabel("2025-03-05"))
		assert.Equal(t, "16th December 2025", schedule.FormatDateLabel("2025-12-16"))
		assert.Equal(t, "1st January 2026", schedule.FormatDateLabel("2026-01-01T09:30:00Z"))
	})

	t.Run("unparseable string passes through unchanged", func(t *testing.T) {
		assert.Equal(t, "next tuesday", schedule.FormatDateLabel("next tuesday"))
		assert.Equal(t, "sometime in july", schedule.FormatDateLabel("sometime in july"))
	})

	t.Run("absent input yields placeholder", func(t *testing.T) {
		assert.Equal(t, schedule.Placeholder, schedule.FormatDateLabel(nil))
		assert.Equal(t, schedule.Placeholder, schedule.FormatDateLabel(""))
		assert.Equal(t, schedule.Placeholder, schedule.FormatDateLabel("  "))
		assert.Equal(t, schedule.Placeholder, schedule.FormatDateLabel((*time.Time)(nil)))
	})

	t.Run("pointer input", func(t *testing.T) {
		d := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "5th March 2025", schedule.FormatDateLabel(&d))
	})
}

func TestDayKey(t *testing.T) {
	t.Run("independent of time of day", func(t *testing.T) {
		early := time.Date(2025, time.March, 5, 0, 1, 0, 0, time.Local)
		late := time.Date(2025, time.March, 5, 23, 59, 0, 0, time.Local)

		assert.Equal(t, "2025-03-05", schedule.DayKey(early))
		assert.Equal(t, schedule.DayKey(early), schedule.DayKey(late))
	})

	t.Run("zero padded", func(t *testing.T) {
		d := time.Date(2025, time.January, 2, 12, 0, 0, 0, time.Local)
		assert.Equal(t, "2025-01-02", schedule.DayKey(d))
	})

	t.Run("from string", func(t *testing.T) {
		key, ok := schedule.DayKeyFromString("2025-12-16")
		assert.True(t, ok)
		assert.Equal(t, "2025-12-16", key)

		_, ok = schedule.DayKeyFromString("whenever")
		assert.False(t, ok)
	})
}

func TestFormatRideTime(t *testing.T) {
	cases := map[string]string{
		"9:30":    "9:30 AM",
		"09:30":   "9:30 AM",
		"14h30":   "2:30 PM",
		"9pm":     "9:00 PM",
		"12am":    "12:00 AM",
		"12pm":    "12:00 PM",
		"0:05":    "12:05 AM",
		"23:59":   "11:59 PM",
		" 9:30  ": "9:30 AM",
	}
	for input, want := range cases {
		assert.Equal(t, want, schedule.FormatRideTime(input), "input %q", input)
	}

	t.Run("unparseable input comes back trimmed", func(t *testing.T) {
		assert.Equal(t, "around lunch", schedule.FormatRideTime("  around lunch "))
	})

	t.Run("empty input yields placeholder", func(t *testing.T) {
		assert.Equal(t, schedule.Placeholder, schedule.FormatRideTime(""))
		assert.Equal(t, schedule.Placeholder, schedule.FormatRideTime("   "))
	})
}

func TestTimeSortValue(t *testing.T) {
	t.Run("minutes since midnight", func(t *testing.T) {
		assert.Equal(t, float64(0), schedule.TimeSortValue("12am"))
		assert.Equal(t, float64(570), schedule.TimeSortValue("9:30"))
		assert.Equal(t, float64(870), schedule.TimeSortValue("14h30"))
		assert.Equal(t, float64(1439), schedule.TimeSortValue("23:59"))
	})

	t.Run("monotonically non-decreasing across a day", func(t *testing.T) {
		ordered := []string{"12am", "6:15", "9:30", "12pm", "14h30", "9:30pm", "23:59"}
		prev := math.Inf(-1)
		for _, input := range ordered {
			v := schedule.TimeSortValue(input)
			assert.GreaterOrEqual(t, v, prev, "input %q", input)
			prev = v
		}
	})

	t.Run("unparseable input sorts last", func(t *testing.T) {
		assert.True(t, math.IsInf(schedule.TimeSortValue(""), 1))
		assert.True(t, math.IsInf(schedule.TimeSortValue("soon"), 1))
	})
}

// The admin table scenario: one row rendered end to end.
func TestBookingRowRendering(t *testing.T) {
	assert.Equal(t, "16th December 2025", schedule.FormatDateLabel("2025-12-16"))
	assert.Equal(t, "2:30 PM", schedule.FormatRideTime("14h30"))
	assert.Equal(t, float64(870), schedule.TimeSortValue("14h30"))
}
