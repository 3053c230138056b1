//go:build unit

package booking_test

import (
	"testing"
	"time"

	"barber-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	t.Run("valid date round-trips", func(t *testing.T) {
		day, err := booking.ParseDay("2026-03-14")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-14", day.String())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{name: "empty", input: ""},
			{name: "wrong separator", input: "2026/03/14"},
			{name: "not a date", input: "not-a-date"},
			{name: "month out of range", input: "2026-13-01"},
			{name: "day out of range", input: "2026-02-30"},
			{name: "datetime instead of date", input: "2026-03-14T10:00:00"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.ParseDay(tc.input)
				assert.ErrorIs(t, err, booking.ErrInvalidDate)
			})
		}
	})

	t.Run("Matches compares calendar day only", func(t *testing.T) {
		day, err := booking.ParseDay("2026-03-14")
		require.NoError(t, err)

		assert.True(t, day.Matches(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
		assert.True(t, day.Matches(time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)))
		assert.False(t, day.Matches(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("DayOf formats the given instant", func(t *testing.T) {
		day := booking.DayOf(time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC))
		assert.Equal(t, "2026-03-14", day.String())
		assert.False(t, day.IsZero())
	})
}

func TestParseStartHour(t *testing.T) {
	t.Run("whole hours parse", func(t *testing.T) {
		start, err := booking.ParseStartHour("09:00")
		require.NoError(t, err)
		assert.Equal(t, 9, start.Hour())
		assert.Equal(t, "09:00", start.String())

		start, err = booking.ParseStartHour("21:00")
		require.NoError(t, err)
		assert.Equal(t, 21, start.Hour())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{name: "empty", input: ""},
			{name: "minutes not zero", input: "10:30"},
			{name: "hour out of range", input: "25:00"},
			{name: "missing minutes", input: "10"},
			{name: "garbage", input: "ten o'clock"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.ParseStartHour(tc.input)
				assert.ErrorIs(t, err, booking.ErrInvalidStartTime)
			})
		}
	})

	t.Run("NewStartHour bounds", func(t *testing.T) {
		_, err := booking.NewStartHour(-1)
		assert.ErrorIs(t, err, booking.ErrInvalidStartTime)
		_, err = booking.NewStartHour(24)
		assert.ErrorIs(t, err, booking.ErrInvalidStartTime)

		start, err := booking.NewStartHour(0)
		require.NoError(t, err)
		assert.Equal(t, "00:00", start.String())
	})
}

func TestNewDuration(t *testing.T) {
	_, err := booking.NewDuration(0)
	assert.ErrorIs(t, err, booking.ErrInvalidDuration)
	_, err = booking.NewDuration(-2)
	assert.ErrorIs(t, err, booking.ErrInvalidDuration)

	d, err := booking.NewDuration(1)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Hours())
}

func TestOccupiedRange(t *testing.T) {
	mustStart := func(h int) booking.StartHour {
		s, err := booking.NewStartHour(h)
		require.NoError(t, err)
		return s
	}
	mustDuration := func(h int) booking.Duration {
		d, err := booking.NewDuration(h)
		require.NoError(t, err)
		return d
	}

	t.Run("range includes the end hour", func(t *testing.T) {
		r := booking.OccupiedRange(mustStart(10), mustDuration(2))
		assert.Equal(t, 10, r.First())
		assert.Equal(t, 12, r.Last())
		assert.True(t, r.Contains(10))
		assert.True(t, r.Contains(11))
		assert.True(t, r.Contains(12))
		assert.False(t, r.Contains(9))
		assert.False(t, r.Contains(13))
	})

	t.Run("overlap detection", func(t *testing.T) {
		base := booking.OccupiedRange(mustStart(10), mustDuration(2)) // [10,12]

		cases := []struct {
			name     string
			start    int
			duration int
			overlaps bool
		}{
			{name: "identical slot", start: 10, duration: 2, overlaps: true},
			{name: "starts inside", start: 11, duration: 1, overlaps: true},
			{name: "ends at other's start", start: 9, duration: 1, overlaps: true},
			{name: "starts at other's end hour", start: 12, duration: 1, overlaps: true},
			{name: "one hour after end", start: 13, duration: 1, overlaps: false},
			{name: "well before", start: 7, duration: 2, overlaps: true},
			{name: "clear before", start: 7, duration: 1, overlaps: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				other := booking.OccupiedRange(mustStart(tc.start), mustDuration(tc.duration))
				assert.Equal(t, tc.overlaps, base.Overlaps(other))
				assert.Equal(t, tc.overlaps, other.Overlaps(base))
			})
		}
	})
}

func TestNewMoney(t *testing.T) {
	_, err := booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativePrice)

	m, err := booking.NewMoney(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.Cents())

	m, err = booking.NewMoney(5000000)
	require.NoError(t, err)
	assert.Equal(t, int64(5000000), m.Cents())
}

func TestNewLineItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := booking.NewLineItem("Haircut", "haircut", 5000000, 1)
		require.NoError(t, err)
		assert.Equal(t, "Haircut", item.ServiceName())
		assert.Equal(t, "haircut", item.ServiceCode())
		assert.Equal(t, int64(5000000), item.UnitPrice().Cents())
		assert.Equal(t, 1, item.DurationHours())
	})

	t.Run("service code is optional", func(t *testing.T) {
		_, err := booking.NewLineItem("Beard trim", "", 2000000, 1)
		assert.NoError(t, err)
	})

	t.Run("invalid items", func(t *testing.T) {
		_, err := booking.NewLineItem("", "haircut", 5000000, 1)
		assert.ErrorIs(t, err, booking.ErrInvalidLineItem)

		_, err = booking.NewLineItem("Haircut", "haircut", 5000000, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidLineItem)

		_, err = booking.NewLineItem("Haircut", "haircut", -1, 1)
		assert.ErrorIs(t, err, booking.ErrInvalidLineItem)
	})
}
