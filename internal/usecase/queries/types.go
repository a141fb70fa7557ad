package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingRow struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TierID        string    `json:"tier_id"`
	TierTitle     string    `json:"tier_title"`
	DateLabel     string    `json:"date_label"`
	TimeLabel     string    `json:"time_label"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	Tone          string    `json:"tone"`
	AmountCents   int       `json:"amount_cents"`
	CreatedAt     time.Time `json:"created_at"`

	dayKey   string
	timeSort float64
}

type CalendarEntry struct {
	ID           uuid.UUID `json:"id"`
	TimeLabel    string    `json:"time_label"`
	CustomerName string    `json:"customer_name"`
	TierTitle    string    `json:"tier_title"`
	Status       string    `json:"status"`
	Tone         string    `json:"tone"`

	timeSort float64
}

type CalendarDay struct {
	DayKey    string          `json:"day_key"`
	DateLabel string          `json:"date_label"`
	Severity  string          `json:"severity,omitempty"`
	Entries   []CalendarEntry `json:"entries"`
}

type CalendarView struct {
	Month       string          `json:"month"`
	Days        []CalendarDay   `json:"days"`
	Unscheduled []CalendarEntry `json:"unscheduled,omitempty"`
}

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type TierCount struct {
	TierID       string `json:"tier_id"`
	TierTitle    string `json:"tier_title"`
	Count        int    `json:"count"`
	RevenueCents int    `json:"revenue_cents"`
}

type DayRevenue struct {
	DayKey       string `json:"day_key"`
	Count        int    `json:"count"`
	RevenueCents int    `json:"revenue_cents"`
}

type AddonRate struct {
	Addon   string `json:"addon"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type AnalyticsView struct {
	TotalBookings        int           `json:"total_bookings"`
	ApprovedBookings     int           `json:"approved_bookings"`
	ApprovedRevenueCents int           `json:"approved_revenue_cents"`
	ByStatus             []StatusCount `json:"by_status"`
	ByTier               []TierCount   `json:"by_tier"`
	ByAddon              []AddonRate   `json:"by_addon"`
	Daily                []DayRevenue  `json:"daily"`
}

type WeatherSampleView struct {
	Time         time.Time `json:"time"`
	TimeLabel    string    `json:"time_label"`
	WindKmh      float64   `json:"wind_kmh"`
	GustKmh      float64   `json:"gust_kmh"`
	TemperatureC *float64  `json:"temperature_c,omitempty"`
	Severity     string    `json:"severity"`
}

type BestWindowView struct {
	StartLabel string  `json:"start_label"`
	EndLabel   string  `json:"end_label"`
	WindKmh    float64 `json:"wind_kmh"`
	Severity   string  `json:"severity"`
}

type WeatherDayView struct {
	DayKey     string              `json:"day_key"`
	DateLabel  string              `json:"date_label"`
	Severity   string              `json:"severity"`
	MaxWindKmh float64             `json:"max_wind_kmh"`
	MaxGustKmh float64             `json:"max_gust_kmh"`
	BestWindow *BestWindowView     `json:"best_window,omitempty"`
	Samples    []WeatherSampleView `json:"samples"`
}

type WeatherView struct {
	Days []WeatherDayView `json:"days"`
}

type QuizRow struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Percent     int       `json:"percent"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submitted_at"`
}
