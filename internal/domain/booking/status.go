package booking

import "strings"

// Status is the booking lifecycle label as owned and transitioned by the
// reservations backend. This service treats it as display data: unknown
// labels are preserved and rendered gracefully, never rejected.
type Status string

const (
	StatusCreated    Status = "created"
	StatusProcessing Status = "processing"
	StatusApproved   Status = "approved"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// Tone is the UI coloring hint attached to a status in tables and
// calendars.
type Tone string

const (
	ToneOK      Tone = "ok"
	ToneWarn    Tone = "warn"
	ToneBad     Tone = "bad"
	ToneNeutral Tone = "neutral"
)

// ParseStatus normalizes a raw status label. Unrecognized values pass
// through lowercased so a backend addition cannot crash a render.
func ParseStatus(raw string) Status {
	return Status(strings.ToLower(strings.TrimSpace(raw)))
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusProcessing, StatusApproved, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Label returns the capitalized display form ("approved" -> "Approved").
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	str := string(s)
	return strings.ToUpper(str[:1]) + str[1:]
}

func (s Status) Tone() Tone {
	switch s {
	case StatusApproved:
		return ToneOK
	case StatusProcessing:
		return ToneWarn
	case StatusFailed, StatusCancelled:
		return ToneBad
	default:
		return ToneNeutral
	}
}
