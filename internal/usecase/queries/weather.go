package queries

import (
	"context"
	"math"
	"sort"
	"time"

	"jetski-rentals/internal/domain/schedule"
	"jetski-rentals/internal/domain/weather"
)

// Daylight bounds for the best-window suggestion, in local hours.
const (
	windowStartHour = 9
	windowEndHour   = 18
)

// WeatherSource fetches the hourly forecast for the ride spot.
type WeatherSource interface {
	Forecast(ctx context.Context) ([]weather.Sample, error)
}

type WeatherQueries interface {
	Advice(ctx context.Context) (*WeatherView, error)
}

type weatherQueriesImpl struct {
	source WeatherSource
}

func NewWeatherQueries(source WeatherSource) WeatherQueries {
	return &weatherQueriesImpl{source: source}
}

// Advice groups the hourly forecast by day. Each day carries its worst
// severity band and, when any daylight sample exists, the calmest
// daylight hour as a suggested ride window.
func (q *weatherQueriesImpl) Advice(ctx context.Context) (*WeatherView, error) {
	samples, err := q.source.Forecast(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]weather.Sample)
	for _, s := range samples {
		key := schedule.DayKey(s.Time)
		byDay[key] = append(byDay[key], s)
	}

	view := &WeatherView{Days: make([]WeatherDayView, 0, len(byDay))}
	for key, daySamples := range byDay {
		sort.Slice(daySamples, func(i, j int) bool {
			return daySamples[i].Time.Before(daySamples[j].Time)
		})
		view.Days = append(view.Days, buildDayView(key, daySamples))
	}
	sort.Slice(view.Days, func(i, j int) bool { return view.Days[i].DayKey < view.Days[j].DayKey })

	return view, nil
}

func buildDayView(key string, samples []weather.Sample) WeatherDayView {
	day := WeatherDayView{
		DayKey:    key,
		DateLabel: schedule.FormatDateLabel(key),
		Severity:  weather.SeverityGood.String(),
		Samples:   make([]WeatherSampleView, 0, len(samples)),
	}

	worst := weather.SeverityGood
	for _, s := range samples {
		severity := s.Severity()
		worst = worst.Worst(severity)

		if s.WindKmh > day.MaxWindKmh {
			day.MaxWindKmh = s.WindKmh
		}
		if s.GustKmh > day.MaxGustKmh {
			day.MaxGustKmh = s.GustKmh
		}

		// NaN readings classify as zero; render them as zero too so the
		// view stays JSON-encodable.
		day.Samples = append(day.Samples, WeatherSampleView{
			Time:         s.Time,
			TimeLabel:    hourLabel(s.Time),
			WindKmh:      zeroNaN(s.WindKmh),
			GustKmh:      zeroNaN(s.GustKmh),
			TemperatureC: s.TemperatureC,
			Severity:     severity.String(),
		})
	}
	day.Severity = worst.String()
	day.BestWindow = bestWindow(samples)
	return day
}

// bestWindow picks the calmest daylight hour, earliest on ties. Nil when
// the day has no daylight samples.
func bestWindow(samples []weather.Sample) *BestWindowView {
	var best *weather.Sample
	for i := range samples {
		s := samples[i]
		hour := s.Time.Hour()
		if hour < windowStartHour || hour >= windowEndHour {
			continue
		}
		if math.IsNaN(s.WindKmh) {
			continue
		}
		if best == nil || s.WindKmh < best.WindKmh {
			best = &samples[i]
		}
	}
	if best == nil {
		return nil
	}

	return &BestWindowView{
		StartLabel: hourLabel(best.Time),
		EndLabel:   hourLabel(best.Time.Add(time.Hour)),
		WindKmh:    zeroNaN(best.WindKmh),
		Severity:   best.Severity().String(),
	}
}

func zeroNaN(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}

func hourLabel(t time.Time) string {
	return t.Format("3:04 PM")
}
