//go:build unit

package weather_test

import (
	"math"
	"testing"
	"time"

	"jetski-rentals/internal/domain/weather"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		wind float64
		gust float64
		want weather.Severity
	}{
		{name: "calm", wind: 5, gust: 5, want: weather.SeverityGood},
		{name: "strong wind alone", wind: 30, gust: 0, want: weather.SeverityBad},
		{name: "strong gust alone", wind: 0, gust: 40, want: weather.SeverityBad},
		{name: "moderate wind", wind: 15, gust: 0, want: weather.SeverityOK},
		{name: "moderate gust", wind: 0, gust: 22, want: weather.SeverityOK},
		{name: "wind at bad threshold", wind: 25, gust: 0, want: weather.SeverityBad},
		{name: "wind just under bad threshold", wind: 24.9, gust: 0, want: weather.SeverityOK},
		{name: "gust at bad threshold", wind: 0, gust: 35, want: weather.SeverityBad},
		{name: "wind at ok threshold", wind: 12, gust: 0, want: weather.SeverityOK},
		{name: "wind just under ok threshold", wind: 11.9, gust: 0, want: weather.SeverityGood},
		{name: "gust at ok threshold", wind: 0, gust: 20, want: weather.SeverityOK},
		{name: "missing wind reading", wind: math.NaN(), gust: 0, want: weather.SeverityGood},
		{name: "missing gust with strong wind", wind: 30, gust: math.NaN(), want: weather.SeverityBad},
		{name: "both readings missing", wind: math.NaN(), gust: math.NaN(), want: weather.SeverityGood},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, weather.Classify(tc.wind, tc.gust))
		})
	}
}

func TestSeverityWorst(t *testing.T) {
	assert.Equal(t, weather.SeverityBad, weather.SeverityGood.Worst(weather.SeverityBad))
	assert.Equal(t, weather.SeverityBad, weather.SeverityBad.Worst(weather.SeverityGood))
	assert.Equal(t, weather.SeverityOK, weather.SeverityGood.Worst(weather.SeverityOK))
	assert.Equal(t, weather.SeverityOK, weather.SeverityOK.Worst(weather.SeverityOK))
	assert.Equal(t, weather.SeverityGood, weather.SeverityGood.Worst(weather.SeverityGood))
}

func TestSampleSeverity(t *testing.T) {
	s := weather.Sample{
		Time:    time.Date(2025, time.June, 10, 14, 0, 0, 0, time.UTC),
		WindKmh: 26,
		GustKmh: 10,
	}
	assert.Equal(t, weather.SeverityBad, s.Severity())
}
