package response

import (
	"time"

	"jetski-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingRowResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	TierID        string    `json:"tierId"`
	TierTitle     string    `json:"tierTitle"`
	DateLabel     string    `json:"dateLabel"`
	TimeLabel     string    `json:"timeLabel"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"statusLabel"`
	Tone          string    `json:"tone"`
	AmountCents   int       `json:"amountCents"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingRows(rows []queries.BookingRow) []BookingRowResponse {
	resp := make([]BookingRowResponse, 0, len(rows))
	_ = copier.Copy(&resp, &rows)
	return resp
}

type CalendarEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	TimeLabel    string    `json:"timeLabel"`
	CustomerName string    `json:"customerName"`
	TierTitle    string    `json:"tierTitle"`
	Status       string    `json:"status"`
	Tone         string    `json:"tone"`
}

type CalendarDayResponse struct {
	DayKey    string                  `json:"dayKey"`
	DateLabel string                  `json:"dateLabel"`
	Severity  string                  `json:"severity,omitempty"`
	Entries   []CalendarEntryResponse `json:"entries"`
}

type CalendarResponse struct {
	Month       string                  `json:"month"`
	Days        []CalendarDayResponse   `json:"days"`
	Unscheduled []CalendarEntryResponse `json:"unscheduled,omitempty"`
}

func FromCalendarView(view *queries.CalendarView) *CalendarResponse {
	var resp CalendarResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type TierCountResponse struct {
	TierID       string `json:"tierId"`
	TierTitle    string `json:"tierTitle"`
	Count        int    `json:"count"`
	RevenueCents int    `json:"revenueCents"`
}

type DayRevenueResponse struct {
	DayKey       string `json:"dayKey"`
	Count        int    `json:"count"`
	RevenueCents int    `json:"revenueCents"`
}

type AddonRateResponse struct {
	Addon   string `json:"addon"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type AnalyticsResponse struct {
	TotalBookings        int                   `json:"totalBookings"`
	ApprovedBookings     int                   `json:"approvedBookings"`
	ApprovedRevenueCents int                   `json:"approvedRevenueCents"`
	ByStatus             []StatusCountResponse `json:"byStatus"`
	ByTier               []TierCountResponse   `json:"byTier"`
	ByAddon              []AddonRateResponse   `json:"byAddon"`
	Daily                []DayRevenueResponse  `json:"daily"`
}

func FromAnalyticsView(view *queries.AnalyticsView) *AnalyticsResponse {
	var resp AnalyticsResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type QuizRowResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Percent     int       `json:"percent"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func FromQuizRows(rows []queries.QuizRow) []QuizRowResponse {
	resp := make([]QuizRowResponse, 0, len(rows))
	_ = copier.Copy(&resp, &rows)
	return resp
}
