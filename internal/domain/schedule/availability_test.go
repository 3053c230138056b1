//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T, open, close int) schedule.Hours {
	t.Helper()
	h, err := schedule.NewHours(open, close)
	require.NoError(t, err)
	return h
}

func mustDay(t *testing.T, s string) booking.Day {
	t.Helper()
	d, err := booking.ParseDay(s)
	require.NoError(t, err)
	return d
}

func span(t *testing.T, startHour, durationHours int) schedule.BookedSpan {
	t.Helper()
	start, err := booking.NewStartHour(startHour)
	require.NoError(t, err)
	d, err := booking.NewDuration(durationHours)
	require.NoError(t, err)
	return schedule.BookedSpan{Start: start, Duration: d}
}

func startStrings(starts []booking.StartHour) []string {
	out := make([]string, len(starts))
	for i, s := range starts {
		out[i] = s.String()
	}
	return out
}

func hourStrings(hours ...int) []string {
	out := make([]string, len(hours))
	for i, h := range hours {
		s, _ := booking.NewStartHour(h)
		out[i] = s.String()
	}
	return out
}

func TestNewHours(t *testing.T) {
	_, err := schedule.NewHours(-1, 22)
	assert.ErrorIs(t, err, schedule.ErrInvalidHours)
	_, err = schedule.NewHours(9, 25)
	assert.ErrorIs(t, err, schedule.ErrInvalidHours)
	_, err = schedule.NewHours(22, 9)
	assert.ErrorIs(t, err, schedule.ErrInvalidHours)
	_, err = schedule.NewHours(9, 9)
	assert.ErrorIs(t, err, schedule.ErrInvalidHours)

	h, err := schedule.NewHours(9, 22)
	require.NoError(t, err)
	assert.Equal(t, 9, h.Open())
	assert.Equal(t, 22, h.Close())
}

func TestHoursContainsStart(t *testing.T) {
	h := mustHours(t, 9, 22)

	assert.False(t, h.ContainsStart(8))
	assert.True(t, h.ContainsStart(9))
	assert.True(t, h.ContainsStart(21))
	assert.False(t, h.ContainsStart(22), "the close hour is never a valid start")
	assert.False(t, h.ContainsStart(23))
}

func TestAvailableStartTimes(t *testing.T) {
	hours := mustHours(t, 9, 22)
	day := mustDay(t, "2026-03-14")
	dur := func(h int) booking.Duration {
		d, err := booking.NewDuration(h)
		require.NoError(t, err)
		return d
	}
	// now on a different day: same-day filtering stays out of the way
	otherDayNow := time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC)

	t.Run("empty day offers every start the duration fits in", func(t *testing.T) {
		sameDayMorning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
		got := schedule.AvailableStartTimes(hours, day, dur(2), sameDayMorning, nil)

		want := hourStrings(9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)
		if diff := cmp.Diff(want, startStrings(got)); diff != "" {
			t.Errorf("available start times mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("a booking blocks its inclusive range and end-adjacent starts", func(t *testing.T) {
		booked := []schedule.BookedSpan{span(t, 10, 2)} // occupies 10,11,12

		got := startStrings(schedule.AvailableStartTimes(hours, day, dur(1), otherDayNow, booked))

		// 09:00 would end at 10:00, colliding with the booking's start
		assert.NotContains(t, got, "09:00")
		assert.NotContains(t, got, "10:00")
		assert.NotContains(t, got, "11:00")
		assert.NotContains(t, got, "12:00")
		assert.Contains(t, got, "13:00")
	})

	t.Run("same-day requests withhold the current and past hours", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 14, 30, 0, 0, time.UTC)

		got := startStrings(schedule.AvailableStartTimes(hours, day, dur(1), now, nil))

		want := hourStrings(15, 16, 17, 18, 19, 20, 21)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("available start times mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("other-day requests ignore the clock", func(t *testing.T) {
		lateNow := time.Date(2026, 3, 13, 23, 0, 0, 0, time.UTC)

		got := schedule.AvailableStartTimes(hours, day, dur(1), lateNow, nil)
		require.NotEmpty(t, got)
		assert.Equal(t, "09:00", got[0].String())
	})

	t.Run("bookings may not run past closing", func(t *testing.T) {
		got := startStrings(schedule.AvailableStartTimes(hours, day, dur(3), otherDayNow, nil))

		assert.Contains(t, got, "19:00") // runs 19,20,21
		assert.NotContains(t, got, "20:00")
		assert.NotContains(t, got, "21:00")
	})

	t.Run("duration longer than the whole day yields empty, not error", func(t *testing.T) {
		got := schedule.AvailableStartTimes(hours, day, dur(14), otherDayNow, nil)
		assert.Empty(t, got)
	})

	t.Run("fully booked day yields empty", func(t *testing.T) {
		booked := []schedule.BookedSpan{span(t, 9, 13)} // occupies 9..22

		got := schedule.AvailableStartTimes(hours, day, dur(1), otherDayNow, booked)
		assert.Empty(t, got)
	})

	t.Run("two bookings leave only the gap between their buffers", func(t *testing.T) {
		// occupies 9,10 and 14,15,16
		booked := []schedule.BookedSpan{span(t, 9, 1), span(t, 14, 2)}

		got := startStrings(schedule.AvailableStartTimes(hours, day, dur(1), otherDayNow, booked))

		want := hourStrings(11, 12, 17, 18, 19, 20, 21)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("available start times mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("result is stable for identical inputs", func(t *testing.T) {
		booked := []schedule.BookedSpan{span(t, 12, 2)}

		first := schedule.AvailableStartTimes(hours, day, dur(2), otherDayNow, booked)
		second := schedule.AvailableStartTimes(hours, day, dur(2), otherDayNow, booked)

		if diff := cmp.Diff(startStrings(first), startStrings(second)); diff != "" {
			t.Errorf("same inputs produced different answers (-first +second):\n%s", diff)
		}
	})

	t.Run("multi-hour candidate collides through its own end hour", func(t *testing.T) {
		booked := []schedule.BookedSpan{span(t, 12, 2)} // occupies 12,13,14

		got := startStrings(schedule.AvailableStartTimes(hours, day, dur(2), otherDayNow, booked))

		assert.Contains(t, got, "09:00") // runs 9,10, ends at 11
		assert.NotContains(t, got, "10:00", "would end at 12:00, colliding with the booking")
		assert.NotContains(t, got, "11:00")
		assert.Contains(t, got, "15:00")
	})
}
