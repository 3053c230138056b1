// Package schedule derives bookable start times from ledger occupancy.
// It holds no state of its own: given the same hours, bookings and clock
// reading it always produces the same answer.
package schedule

import (
	"errors"
	"time"

	"barber-booking/internal/domain/booking"
)

var ErrInvalidHours = errors.New("invalid business hours")

// Hours are the daily open/close bounds. Start times are offered in
// [Open, Close); Close itself is never a valid start and no booking may
// run past it.
type Hours struct {
	open  int
	close int
}

func NewHours(open, close int) (Hours, error) {
	if open < 0 || close > 24 || open >= close {
		return Hours{}, ErrInvalidHours
	}
	return Hours{open: open, close: close}, nil
}

func (h Hours) Open() int  { return h.open }
func (h Hours) Close() int { return h.close }

// ContainsStart reports whether hour is a valid start within business hours.
func (h Hours) ContainsStart(hour int) bool {
	return hour >= h.open && hour < h.close
}

// BookedSpan is the slice of ledger state availability needs: where an active
// booking starts and how long it runs.
type BookedSpan struct {
	Start    booking.StartHour
	Duration booking.Duration
}

// AvailableStartTimes returns, in ascending order, every start hour on day at
// which a booking of the requested duration would fit. now must already be in
// the business timezone: when day is today, hours at or before now's hour are
// withheld, so the current partial hour is never offered.
//
// Occupancy uses the same inclusive [start, start+duration] convention the
// commit path enforces; the two must not drift apart or availability would
// offer slots the ledger rejects.
func AvailableStartTimes(
	hours Hours,
	day booking.Day,
	duration booking.Duration,
	now time.Time,
	booked []BookedSpan,
) []booking.StartHour {
	occupied := make(map[int]bool)
	for _, span := range booked {
		r := booking.OccupiedRange(span.Start, span.Duration)
		for h := r.First(); h <= r.Last(); h++ {
			occupied[h] = true
		}
	}

	var available []booking.StartHour
	for h := hours.open; h < hours.close; h++ {
		if day.Matches(now) && h <= now.Hour() {
			continue
		}
		if !fits(hours, occupied, h, duration.Hours()) {
			continue
		}
		start, err := booking.NewStartHour(h)
		if err != nil {
			continue
		}
		available = append(available, start)
	}
	return available
}

// fits checks that every hour the booking would run through is free and
// strictly before closing. The booking's own inclusive end hour must be free
// as well: it would block that hour once committed, so two bookings may not
// meet end-to-start. The end hour may coincide with closing, since nothing
// can start there anyway.
func fits(hours Hours, occupied map[int]bool, start, durationHours int) bool {
	for i := 0; i < durationHours; i++ {
		h := start + i
		if h >= hours.close || occupied[h] {
			return false
		}
	}
	return !occupied[start+durationHours]
}
