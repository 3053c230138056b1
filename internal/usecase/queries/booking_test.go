//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/usecase/queries"
	"barber-booking/tests/common/builder"
	queriesmock "barber-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockBookingReadStore
	clock     *clock.FrozenClock
	queries   queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)

	// 2026-03-14 03:00 UTC is 08:00 in Asia/Tashkent (UTC+5)
	s.clock = clock.NewFrozenClock(time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC))

	hours, err := schedule.NewHours(9, 22)
	require.NoError(s.T(), err)
	loc, err := time.LoadLocation("Asia/Tashkent")
	require.NoError(s.T(), err)

	s.queries = queries.NewBookingQueries(s.mockStore, s.clock, hours, loc)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) day(date string) booking.Day {
	d, err := booking.ParseDay(date)
	require.NoError(s.T(), err)
	return d
}

func (s *BookingQueriesTestSuite) TestAvailableTimes() {
	ctx := context.Background()

	s.Run("success: free future day offers full business hours", func() {
		s.mockStore.EXPECT().OccupiedSpansByDay(gomock.Any(), s.day("2026-03-20")).
			Return(nil, nil).Times(1)

		result, err := s.queries.AvailableTimes(ctx, "2026-03-20", 1)
		require.NoError(s.T(), err)

		s.Equal("2026-03-20", result.Date)
		s.Equal(1, result.Duration)
		s.Len(result.StartTimes, 13)
		s.Equal("09:00", result.StartTimes[0])
		s.Equal("21:00", result.StartTimes[12])
	})

	s.Run("success: occupied spans carve out their inclusive ranges", func() {
		spans := []queries.OccupiedSpan{{StartHour: 10, DurationHours: 2}}
		s.mockStore.EXPECT().OccupiedSpansByDay(gomock.Any(), s.day("2026-03-20")).
			Return(spans, nil).Times(1)

		result, err := s.queries.AvailableTimes(ctx, "2026-03-20", 1)
		require.NoError(s.T(), err)

		want := []string{"13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00"}
		if diff := cmp.Diff(want, result.StartTimes); diff != "" {
			s.T().Errorf("start times mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: empty date defaults to today in the business timezone", func() {
		// 2026-03-14 03:00 UTC is 08:00 in Tashkent, so today is still the 14th
		s.mockStore.EXPECT().OccupiedSpansByDay(gomock.Any(), s.day("2026-03-14")).
			Return(nil, nil).Times(1)

		result, err := s.queries.AvailableTimes(ctx, "", 1)
		require.NoError(s.T(), err)
		s.Equal("2026-03-14", result.Date)
	})

	s.Run("success: today's past hours are withheld", func() {
		// move to 14:30 Tashkent time on the 14th
		s.clock.Set(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))

		s.mockStore.EXPECT().OccupiedSpansByDay(gomock.Any(), s.day("2026-03-14")).
			Return(nil, nil).Times(1)

		result, err := s.queries.AvailableTimes(ctx, "2026-03-14", 1)
		require.NoError(s.T(), err)

		require.NotEmpty(s.T(), result.StartTimes)
		s.Equal("15:00", result.StartTimes[0])
	})

	s.Run("success: fully booked day is an empty answer, not an error", func() {
		spans := []queries.OccupiedSpan{{StartHour: 9, DurationHours: 13}}
		s.mockStore.EXPECT().OccupiedSpansByDay(gomock.Any(), s.day("2026-03-20")).
			Return(spans, nil).Times(1)

		result, err := s.queries.AvailableTimes(ctx, "2026-03-20", 1)
		require.NoError(s.T(), err)
		s.Empty(result.StartTimes)
	})

	s.Run("error: malformed date", func() {
		_, err := s.queries.AvailableTimes(ctx, "14-03-2026", 1)
		assert.ErrorIs(s.T(), err, queries.ErrInvalidDate)
	})

	s.Run("error: non-positive duration", func() {
		_, err := s.queries.AvailableTimes(ctx, "2026-03-20", 0)
		assert.ErrorIs(s.T(), err, queries.ErrInvalidDuration)
	})

	s.Run("error: store failure is wrapped", func() {
		s.mockStore.EXPECT().OccupiedSpansByDay(gomock.Any(), s.day("2026-03-20")).
			Return(nil, assert.AnError).Times(1)

		_, err := s.queries.AvailableTimes(ctx, "2026-03-20", 1)
		assert.ErrorIs(s.T(), err, queries.ErrDatabaseOperationFailed)
	})
}

func (s *BookingQueriesTestSuite) TestListByDate() {
	ctx := context.Background()

	s.Run("success: passes through the read model", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithStartTime("09:00").BuildView(),
			builder.NewBookingBuilder().WithStartTime("12:00").BuildView(),
		}
		s.mockStore.EXPECT().ListActiveByDay(gomock.Any(), s.day("2026-03-14")).
			Return(views, nil).Times(1)

		got, err := s.queries.ListByDate(ctx, "2026-03-14")
		require.NoError(s.T(), err)
		s.Len(got, 2)
		s.Equal("09:00", got[0].StartTime)
	})

	s.Run("error: malformed date", func() {
		_, err := s.queries.ListByDate(ctx, "tomorrow")
		assert.ErrorIs(s.T(), err, queries.ErrInvalidDate)
	})

	s.Run("error: store failure is wrapped", func() {
		s.mockStore.EXPECT().ListActiveByDay(gomock.Any(), s.day("2026-03-14")).
			Return(nil, assert.AnError).Times(1)

		_, err := s.queries.ListByDate(ctx, "2026-03-14")
		assert.ErrorIs(s.T(), err, queries.ErrDatabaseOperationFailed)
	})
}
