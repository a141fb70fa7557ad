package weather

import "time"

// Sample is one observed-or-forecast point. Wind and gust speeds may be
// NaN when the provider has no reading; optional fields are pointers.
// Ephemeral: rendered, never persisted.
type Sample struct {
	Time         time.Time
	WindKmh      float64
	GustKmh      float64
	TemperatureC *float64
	DirectionDeg *float64
	WeatherCode  *int
}

// Severity classifies the sample from wind and gust alone.
func (s Sample) Severity() Severity {
	return Classify(s.WindKmh, s.GustKmh)
}
