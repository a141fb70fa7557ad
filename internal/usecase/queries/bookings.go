package queries

import (
	"context"
	"sort"
	"strings"

	"jetski-rentals/internal/domain/booking"
	"jetski-rentals/internal/domain/pricing"
	"jetski-rentals/internal/domain/schedule"
	"jetski-rentals/internal/domain/weather"
	"jetski-rentals/internal/pkg/clock"
)

// BookingSource reads booking records from the reservations backend.
type BookingSource interface {
	ListBookings(ctx context.Context) ([]booking.Booking, error)
}

type BookingQueries interface {
	Table(ctx context.Context) ([]BookingRow, error)
	Calendar(ctx context.Context, month string) (*CalendarView, error)
	Analytics(ctx context.Context) (*AnalyticsView, error)
}

type bookingQueriesImpl struct {
	source  BookingSource
	weather WeatherSource
	clock   clock.Clock
}

func NewBookingQueries(source BookingSource, weather WeatherSource, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{source: source, weather: weather, clock: clock}
}

// Table renders the admin table: every booking, sorted by ride date then
// ride time. Rows whose free-text date or time cannot be parsed sort
// after the dated ones rather than disappearing.
func (q *bookingQueriesImpl) Table(ctx context.Context) ([]BookingRow, error) {
	bookings, err := q.source.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]BookingRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, toBookingRow(b.Normalized()))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].dayKey != rows[j].dayKey {
			return rows[i].dayKey < rows[j].dayKey
		}
		return rows[i].timeSort < rows[j].timeSort
	})
	return rows, nil
}

// Calendar groups one month of bookings by day. Bookings whose ride date
// cannot be resolved to a day are listed separately so the operator still
// sees them.
func (q *bookingQueriesImpl) Calendar(ctx context.Context, month string) (*CalendarView, error) {
	if month == "" {
		month = q.clock.Now().Format("2006-01")
	}

	bookings, err := q.source.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]CalendarEntry)
	var unscheduled []CalendarEntry
	for _, b := range bookings {
		b = b.Normalized()
		entry := toCalendarEntry(b)

		key, ok := schedule.DayKeyFromString(b.RideDate)
		if !ok {
			unscheduled = append(unscheduled, entry)
			continue
		}
		if !strings.HasPrefix(key, month) {
			continue
		}
		byDay[key] = append(byDay[key], entry)
	}

	severities := q.daySeverities(ctx)

	days := make([]CalendarDay, 0, len(byDay))
	for key, entries := range byDay {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].timeSort < entries[j].timeSort
		})
		days = append(days, CalendarDay{
			DayKey:    key,
			DateLabel: schedule.FormatDateLabel(key),
			Severity:  severities[key],
			Entries:   entries,
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].DayKey < days[j].DayKey })

	return &CalendarView{Month: month, Days: days, Unscheduled: unscheduled}, nil
}

// daySeverities folds the hourly forecast into the worst band per day key.
// A provider outage leaves the calendar usable: cells outside forecast
// coverage carry no band.
func (q *bookingQueriesImpl) daySeverities(ctx context.Context) map[string]string {
	samples, err := q.weather.Forecast(ctx)
	if err != nil {
		return nil
	}

	worst := make(map[string]weather.Severity)
	for _, s := range samples {
		key := schedule.DayKey(s.Time)
		band, ok := worst[key]
		if !ok {
			band = weather.SeverityGood
		}
		worst[key] = band.Worst(s.Severity())
	}

	bands := make(map[string]string, len(worst))
	for key, band := range worst {
		bands[key] = band.String()
	}
	return bands
}

// Analytics aggregates all bookings into the dashboard counters. Revenue
// counts approved bookings only.
func (q *bookingQueriesImpl) Analytics(ctx context.Context) (*AnalyticsView, error) {
	bookings, err := q.source.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	view := &AnalyticsView{}
	statusCounts := make(map[booking.Status]int)
	tierCounts := make(map[string]*TierCount)
	dailyByKey := make(map[string]*DayRevenue)
	var droneCount, goproCount, wetsuitCount, boatCount, passengerCount int

	for _, b := range bookings {
		b = b.Normalized()
		view.TotalBookings++
		statusCounts[b.Status]++

		if b.Addons.DroneVideo {
			droneCount++
		}
		if b.Addons.GoPro {
			goproCount++
		}
		if b.Addons.Wetsuit {
			wetsuitCount++
		}
		if b.Addons.BoatRide {
			boatCount++
		}
		if b.Addons.ExtraPassengers > 0 {
			passengerCount++
		}

		approved := b.Status == booking.StatusApproved
		if approved {
			view.ApprovedBookings++
			view.ApprovedRevenueCents += b.AmountCents
		}

		tier := pricing.TierByID(b.RideTierID)
		tc, ok := tierCounts[tier.ID]
		if !ok {
			tc = &TierCount{TierID: tier.ID, TierTitle: tier.Title}
			tierCounts[tier.ID] = tc
		}
		tc.Count++
		if approved {
			tc.RevenueCents += b.AmountCents
		}

		if key, ok := schedule.DayKeyFromString(b.RideDate); ok {
			day, found := dailyByKey[key]
			if !found {
				day = &DayRevenue{DayKey: key}
				dailyByKey[key] = day
			}
			day.Count++
			if approved {
				day.RevenueCents += b.AmountCents
			}
		}
	}

	for status, count := range statusCounts {
		view.ByStatus = append(view.ByStatus, StatusCount{
			Status: status.String(),
			Label:  status.Label(),
			Count:  count,
		})
	}
	sort.Slice(view.ByStatus, func(i, j int) bool {
		if view.ByStatus[i].Count != view.ByStatus[j].Count {
			return view.ByStatus[i].Count > view.ByStatus[j].Count
		}
		return view.ByStatus[i].Status < view.ByStatus[j].Status
	})

	// Catalog order keeps the tier breakdown stable across reloads.
	for _, tier := range pricing.Tiers() {
		if tc, ok := tierCounts[tier.ID]; ok {
			view.ByTier = append(view.ByTier, *tc)
		}
	}

	if view.TotalBookings > 0 {
		rate := func(addon, label string, count int) AddonRate {
			return AddonRate{Addon: addon, Label: label, Count: count, Percent: count * 100 / view.TotalBookings}
		}
		view.ByAddon = []AddonRate{
			rate("drone_video", "Drone video", droneCount),
			rate("gopro", "GoPro rental", goproCount),
			rate("wetsuit", "Wetsuit", wetsuitCount),
			rate("boat_ride", "Boat ride", boatCount),
			rate("extra_passengers", "Extra passengers", passengerCount),
		}
	}

	for _, day := range dailyByKey {
		view.Daily = append(view.Daily, *day)
	}
	sort.Slice(view.Daily, func(i, j int) bool { return view.Daily[i].DayKey < view.Daily[j].DayKey })

	return view, nil
}

func toBookingRow(b booking.Booking) BookingRow {
	tier := pricing.TierByID(b.RideTierID)

	key, ok := schedule.DayKeyFromString(b.RideDate)
	if !ok {
		// Undated rows sort after every real day key.
		key = "~" + strings.TrimSpace(b.RideDate)
	}

	return BookingRow{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		TierID:        tier.ID,
		TierTitle:     tier.Title,
		DateLabel:     schedule.FormatDateLabel(b.RideDate),
		TimeLabel:     schedule.FormatRideTime(b.RideTime),
		Status:        b.Status.String(),
		StatusLabel:   b.Status.Label(),
		Tone:          string(b.Status.Tone()),
		AmountCents:   b.AmountCents,
		CreatedAt:     b.CreatedAt,
		dayKey:        key,
		timeSort:      schedule.TimeSortValue(b.RideTime),
	}
}

func toCalendarEntry(b booking.Booking) CalendarEntry {
	return CalendarEntry{
		ID:           b.ID,
		TimeLabel:    schedule.FormatRideTime(b.RideTime),
		CustomerName: b.CustomerName,
		TierTitle:    pricing.TierByID(b.RideTierID).Title,
		Status:       b.Status.String(),
		Tone:         string(b.Status.Tone()),
		timeSort:     schedule.TimeSortValue(b.RideTime),
	}
}
