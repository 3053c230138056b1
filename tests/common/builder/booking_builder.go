//go:build unit || e2e

package builder

import (
	"time"

	dombooking "barber-booking/internal/domain/booking"
	reqdto "barber-booking/internal/handler/dto/request"
	"barber-booking/internal/usecase/commands"
	"barber-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	Date            string
	StartTime       string
	DurationHours   int
	CustomerRef     string
	CustomerName    string
	CustomerPhone   string
	ServiceName     string
	ServiceCode     string
	UnitPriceCents  int64
	TotalPriceCents int64
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Date:            "2026-03-14",
		StartTime:       "10:00",
		DurationHours:   1,
		CustomerRef:     "tg:100001",
		CustomerName:    "Test Customer",
		CustomerPhone:   "+998901234567",
		ServiceName:     "Haircut",
		ServiceCode:     "haircut",
		UnitPriceCents:  5000000,
		TotalPriceCents: 5000000,
		CreatedAt:       time.Now(),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithStartTime(startTime string) *BookingBuilder {
	b.StartTime = startTime
	return b
}

func (b *BookingBuilder) WithDurationHours(hours int) *BookingBuilder {
	b.DurationHours = hours
	return b
}

func (b *BookingBuilder) WithCustomerRef(ref string) *BookingBuilder {
	b.CustomerRef = ref
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithCustomerPhone(phone string) *BookingBuilder {
	b.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithService(name, code string, priceCents int64) *BookingBuilder {
	b.ServiceName = name
	b.ServiceCode = code
	b.UnitPriceCents = priceCents
	b.TotalPriceCents = priceCents
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date:          b.Date,
		StartTime:     b.StartTime,
		DurationHours: b.DurationHours,
		CustomerRef:   b.CustomerRef,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		LineItems: []reqdto.LineItemRequest{
			{
				ServiceName:    b.ServiceName,
				ServiceCode:    b.ServiceCode,
				UnitPriceCents: b.UnitPriceCents,
				DurationHours:  b.DurationHours,
			},
		},
		TotalPriceCents: b.TotalPriceCents,
	}
}

func (b *BookingBuilder) BuildCommitParams() commands.CommitBookingParams {
	return b.BuildCreateRequestDTO().ToParams()
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	day, err := dombooking.ParseDay(b.Date)
	if err != nil {
		return nil, err
	}
	start, err := dombooking.ParseStartHour(b.StartTime)
	if err != nil {
		return nil, err
	}
	duration, err := dombooking.NewDuration(b.DurationHours)
	if err != nil {
		return nil, err
	}
	total, err := dombooking.NewMoney(b.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	item, err := dombooking.NewLineItem(b.ServiceName, b.ServiceCode, b.UnitPriceCents, b.DurationHours)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		b.CustomerRef, b.CustomerName, b.CustomerPhone,
		day, start, duration, total, []dombooking.LineItem{item},
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:              1,
		Date:            b.Date,
		StartTime:       b.StartTime,
		DurationHours:   b.DurationHours,
		CustomerRef:     b.CustomerRef,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		TotalPriceCents: b.TotalPriceCents,
		LineItems: []queries.LineItemView{
			{
				ServiceName:    b.ServiceName,
				ServiceCode:    b.ServiceCode,
				UnitPriceCents: b.UnitPriceCents,
				DurationHours:  b.DurationHours,
			},
		},
		CreatedAt: b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildAvailableTimesResult(startTimes ...string) *queries.AvailableTimesResult {
	return &queries.AvailableTimesResult{
		Date:       b.Date,
		Duration:   b.DurationHours,
		StartTimes: startTimes,
	}
}
