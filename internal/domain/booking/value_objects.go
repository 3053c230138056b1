package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrMissingCustomer  = errors.New("customer reference is required")
)

const dayLayout = "2006-01-02"

// Day is a calendar day in the business-local timezone, kept in the
// YYYY-MM-DD form it travels in over the wire and in storage.
type Day struct {
	value string
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return Day{value: t.Format(dayLayout)}, nil
}

func DayOf(t time.Time) Day {
	return Day{value: t.Format(dayLayout)}
}

func (d Day) String() string {
	return d.value
}

func (d Day) IsZero() bool {
	return d.value == ""
}

// Matches reports whether t falls on this day. The caller is responsible for
// converting t into the business timezone first.
func (d Day) Matches(t time.Time) bool {
	return d.value == t.Format(dayLayout)
}

// StartHour is an hour-granularity start time, serialized as "HH:00".
type StartHour struct {
	hour int
}

func NewStartHour(hour int) (StartHour, error) {
	if hour < 0 || hour > 23 {
		return StartHour{}, ErrInvalidStartTime
	}
	return StartHour{hour: hour}, nil
}

func ParseStartHour(s string) (StartHour, error) {
	t, err := time.Parse("15:04", s)
	if err != nil || t.Minute() != 0 {
		return StartHour{}, ErrInvalidStartTime
	}
	return StartHour{hour: t.Hour()}, nil
}

func (h StartHour) Hour() int {
	return h.hour
}

func (h StartHour) String() string {
	return fmt.Sprintf("%02d:00", h.hour)
}

// Duration is a whole number of hours, at least one.
type Duration struct {
	hours int
}

func NewDuration(hours int) (Duration, error) {
	if hours < 1 {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{hours: hours}, nil
}

func (d Duration) Hours() int {
	return d.hours
}

// HourRange is the inclusive [first, last] span of occupied hours. A booking
// starting at s with duration d occupies [s, s+d]: the hour it nominally ends
// at is blocked too, leaving a cleanup hour before the next customer.
type HourRange struct {
	first int
	last  int
}

func OccupiedRange(start StartHour, d Duration) HourRange {
	return HourRange{first: start.hour, last: start.hour + d.hours}
}

func (r HourRange) First() int {
	return r.first
}

func (r HourRange) Last() int {
	return r.last
}

func (r HourRange) Contains(hour int) bool {
	return hour >= r.first && hour <= r.last
}

func (r HourRange) Overlaps(other HourRange) bool {
	return r.first <= other.last && other.first <= r.last
}

// Money is an amount in minor currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// LineItem is one named service bundled into a booking. Line items are owned
// by the booking and live or die with it.
type LineItem struct {
	serviceName   string
	serviceCode   string
	unitPrice     Money
	durationHours int
}

func NewLineItem(serviceName, serviceCode string, unitPriceCents int64, durationHours int) (LineItem, error) {
	if serviceName == "" {
		return LineItem{}, ErrInvalidLineItem
	}
	if durationHours < 1 {
		return LineItem{}, ErrInvalidLineItem
	}
	price, err := NewMoney(unitPriceCents)
	if err != nil {
		return LineItem{}, ErrInvalidLineItem
	}
	return LineItem{
		serviceName:   serviceName,
		serviceCode:   serviceCode,
		unitPrice:     price,
		durationHours: durationHours,
	}, nil
}

func (li LineItem) ServiceName() string {
	return li.serviceName
}

func (li LineItem) ServiceCode() string {
	return li.serviceCode
}

func (li LineItem) UnitPrice() Money {
	return li.unitPrice
}

func (li LineItem) DurationHours() int {
	return li.durationHours
}
