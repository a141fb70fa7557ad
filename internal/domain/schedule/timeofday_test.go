//go:build unit

package schedule_test

import (
	"testing"

	"jetski-rentals/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseCase struct {
	name  string
	input string
	want  schedule.TimeOfDay
	ok    bool
}

func runParseCases(t *testing.T, cases []parseCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := schedule.ParseRideTime(tc.input)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRideTime(t *testing.T) {
	t.Run("recognized shapes", func(t *testing.T) {
		runParseCases(t, []parseCase{
			{name: "colon form", input: "9:30", want: schedule.TimeOfDay{Hours24: 9, Minutes: 30}, ok: true},
			{name: "zero padded equals unpadded", input: "09:30", want: schedule.TimeOfDay{Hours24: 9, Minutes: 30}, ok: true},
			{name: "dot separator", input: "9.15", want: schedule.TimeOfDay{Hours24: 9, Minutes: 15}, ok: true},
			{name: "french h separator", input: "14h30", want: schedule.TimeOfDay{Hours24: 14, Minutes: 30}, ok: true},
			{name: "h separator morning", input: "9h30", want: schedule.TimeOfDay{Hours24: 9, Minutes: 30}, ok: true},
			{name: "pm suffix on colon form", input: "9:30pm", want: schedule.TimeOfDay{Hours24: 21, Minutes: 30}, ok: true},
			{name: "pm suffix zero padded", input: "09:30pm", want: schedule.TimeOfDay{Hours24: 21, Minutes: 30}, ok: true},
			{name: "bare hour with am", input: "9am", want: schedule.TimeOfDay{Hours24: 9, Minutes: 0}, ok: true},
			{name: "bare hour uppercase pm", input: "12PM", want: schedule.TimeOfDay{Hours24: 12, Minutes: 0}, ok: true},
			{name: "midnight twelve am", input: "12am", want: schedule.TimeOfDay{Hours24: 0, Minutes: 0}, ok: true},
			{name: "noon twelve pm", input: "12pm", want: schedule.TimeOfDay{Hours24: 12, Minutes: 0}, ok: true},
			{name: "surrounding whitespace", input: "  9:30  ", want: schedule.TimeOfDay{Hours24: 9, Minutes: 30}, ok: true},
			{name: "space before meridiem", input: "9:30 PM", want: schedule.TimeOfDay{Hours24: 21, Minutes: 30}, ok: true},
		})
	})

	t.Run("clamping", func(t *testing.T) {
		runParseCases(t, []parseCase{
			{name: "out of range hour and minute", input: "25:99", want: schedule.TimeOfDay{Hours24: 23, Minutes: 59}, ok: true},
			{name: "out of range minute only", input: "9:75", want: schedule.TimeOfDay{Hours24: 9, Minutes: 59}, ok: true},
			{name: "hour 24 clamps", input: "24:00", want: schedule.TimeOfDay{Hours24: 23, Minutes: 0}, ok: true},
		})
	})

	t.Run("no match", func(t *testing.T) {
		runParseCases(t, []parseCase{
			{name: "empty string", input: ""},
			{name: "whitespace only", input: "   "},
			{name: "bare hour without meridiem", input: "9"},
			{name: "free text", input: "morning"},
			{name: "meridiem only", input: "pm"},
			{name: "negative hour", input: "-9:30"},
			{name: "three digit hour", input: "123:45"},
		})
	})
}

func TestParseRideTime_RoundTrip(t *testing.T) {
	// Formatting a parsed time must produce a string that re-parses to
	// the same canonical value.
	inputs := []string{"9:30", "09:30", "14h30", "9pm", "12am", "12pm", "0:05", "23:59", "9.15"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, ok := schedule.ParseRideTime(input)
			require.True(t, ok)

			rendered := schedule.FormatRideTime(input)
			second, ok := schedule.ParseRideTime(rendered)
			require.True(t, ok, "rendered form %q must re-parse", rendered)
			assert.Equal(t, first, second)
		})
	}
}
