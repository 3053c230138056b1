package queries

import (
	"context"
	"time"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/errs"
)

var (
	ErrInvalidDate             = errs.New("invalid date")
	ErrInvalidDuration         = errs.New("invalid duration")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Read models (DTO for read side)
type BookingView struct {
	ID              int64          `json:"id"`
	Date            string         `json:"date"`
	StartTime       string         `json:"start_time"`
	DurationHours   int            `json:"duration_hours"`
	CustomerRef     string         `json:"customer_ref"`
	CustomerName    string         `json:"customer_name"`
	CustomerPhone   string         `json:"customer_phone"`
	TotalPriceCents int64          `json:"total_price_cents"`
	LineItems       []LineItemView `json:"line_items"`
	CreatedAt       time.Time      `json:"created_at"`
}

type LineItemView struct {
	ServiceName    string `json:"service_name"`
	ServiceCode    string `json:"service_code"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	DurationHours  int    `json:"duration_hours"`
}

// OccupiedSpan is the minimal projection availability needs per active booking.
type OccupiedSpan struct {
	StartHour     int
	DurationHours int
}

type AvailableTimesResult struct {
	Date       string
	Duration   int
	StartTimes []string
}

type BookingReadStore interface {
	ListActiveByDay(ctx context.Context, day booking.Day) ([]*BookingView, error)
	OccupiedSpansByDay(ctx context.Context, day booking.Day) ([]OccupiedSpan, error)
}

type BookingQueries interface {
	// AvailableTimes derives bookable start times for the date. An empty date
	// means today in the business timezone. An empty result is a valid answer,
	// not an error.
	AvailableTimes(ctx context.Context, date string, durationHours int) (*AvailableTimesResult, error)
	// ListByDate returns the active bookings for the date, ordered by start
	// hour ascending.
	ListByDate(ctx context.Context, date string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	clock clock.Clock
	hours schedule.Hours
	loc   *time.Location
}

func NewBookingQueries(
	store BookingReadStore,
	clk clock.Clock,
	hours schedule.Hours,
	loc *time.Location,
) BookingQueries {
	return &bookingQueriesImpl{
		store: store,
		clock: clk,
		hours: hours,
		loc:   loc,
	}
}

func (q *bookingQueriesImpl) AvailableTimes(ctx context.Context, date string, durationHours int) (*AvailableTimesResult, error) {
	now := q.clock.Now().In(q.loc)

	var day booking.Day
	if date == "" {
		day = booking.DayOf(now)
	} else {
		parsed, err := booking.ParseDay(date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = parsed
	}

	duration, err := booking.NewDuration(durationHours)
	if err != nil {
		return nil, ErrInvalidDuration
	}

	spans, err := q.store.OccupiedSpansByDay(ctx, day)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	booked := make([]schedule.BookedSpan, 0, len(spans))
	for _, s := range spans {
		start, startErr := booking.NewStartHour(s.StartHour)
		dur, durErr := booking.NewDuration(s.DurationHours)
		if startErr != nil || durErr != nil {
			continue
		}
		booked = append(booked, schedule.BookedSpan{Start: start, Duration: dur})
	}

	starts := schedule.AvailableStartTimes(q.hours, day, duration, now, booked)
	startTimes := make([]string, len(starts))
	for i, s := range starts {
		startTimes[i] = s.String()
	}

	return &AvailableTimesResult{
		Date:       day.String(),
		Duration:   duration.Hours(),
		StartTimes: startTimes,
	}, nil
}

func (q *bookingQueriesImpl) ListByDate(ctx context.Context, date string) ([]*BookingView, error) {
	day, err := booking.ParseDay(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	views, err := q.store.ListActiveByDay(ctx, day)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
