package weather

import "math"

// Severity is the three-band risk classification used to color calendar
// cells and advisory copy. It informs humans only; rescheduling is always
// a manual decision.
type Severity string

const (
	SeverityGood Severity = "good"
	SeverityOK   Severity = "ok"
	SeverityBad  Severity = "bad"
)

// Wind thresholds in km/h, checked in priority order: bad first, then ok.
const (
	WindBadKmh = 25.0
	GustBadKmh = 35.0
	WindOKKmh  = 12.0
	GustOKKmh  = 20.0
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) rank() int {
	switch s {
	case SeverityBad:
		return 2
	case SeverityOK:
		return 1
	default:
		return 0
	}
}

// Worst returns the more severe of the two bands.
func (s Severity) Worst(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// Classify maps wind and gust speed to a severity band. Absent readings
// (NaN) are treated as zero so callers always get an answer.
func Classify(windKmh, gustKmh float64) Severity {
	if math.IsNaN(windKmh) {
		windKmh = 0
	}
	if math.IsNaN(gustKmh) {
		gustKmh = 0
	}

	switch {
	case windKmh >= WindBadKmh || gustKmh >= GustBadKmh:
		return SeverityBad
	case windKmh >= WindOKKmh || gustKmh >= GustOKKmh:
		return SeverityOK
	default:
		return SeverityGood
	}
}
