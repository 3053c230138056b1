//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/usecase/commands"
	"barber-booking/tests/common/builder"
	commandsmock "barber-booking/tests/mock/commands"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Validation runs entirely before the store is touched, so these tests use a
// nil pool and expect no repository calls. The transactional path, including
// conflict arbitration, is exercised by the e2e suite against real Postgres.
type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockBookingRepo      *commandsmock.MockBookingRepository
	mockCustomerRepo     *commandsmock.MockCustomerRepository
	mockNotificationRepo *commandsmock.MockNotificationRepository
	commands             commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockCustomerRepo = commandsmock.NewMockCustomerRepository(s.mockCtrl)
	s.mockNotificationRepo = commandsmock.NewMockNotificationRepository(s.mockCtrl)

	hours, err := schedule.NewHours(9, 22)
	require.NoError(s.T(), err)
	clk := clock.NewFrozenClock(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC))

	s.commands = commands.NewBookingCommands(
		s.mockBookingRepo,
		s.mockCustomerRepo,
		s.mockNotificationRepo,
		nil,
		clk,
		hours,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCommitBookingValidation() {
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*commands.CommitBookingParams)
		errIs  error
	}{
		{
			name:   "malformed date",
			mutate: func(p *commands.CommitBookingParams) { p.Date = "14.03.2026" },
			errIs:  commands.ErrInvalidDate,
		},
		{
			name:   "impossible calendar date",
			mutate: func(p *commands.CommitBookingParams) { p.Date = "2026-02-30" },
			errIs:  commands.ErrInvalidDate,
		},
		{
			name:   "start time not on the hour",
			mutate: func(p *commands.CommitBookingParams) { p.StartTime = "10:30" },
			errIs:  commands.ErrInvalidStartTime,
		},
		{
			name:   "start before opening",
			mutate: func(p *commands.CommitBookingParams) { p.StartTime = "08:00" },
			errIs:  commands.ErrInvalidStartTime,
		},
		{
			name:   "start at the close hour",
			mutate: func(p *commands.CommitBookingParams) { p.StartTime = "22:00" },
			errIs:  commands.ErrInvalidStartTime,
		},
		{
			name:   "zero duration",
			mutate: func(p *commands.CommitBookingParams) { p.DurationHours = 0 },
			errIs:  commands.ErrInvalidDuration,
		},
		{
			name:   "negative duration",
			mutate: func(p *commands.CommitBookingParams) { p.DurationHours = -1 },
			errIs:  commands.ErrInvalidDuration,
		},
		{
			name:   "negative total price",
			mutate: func(p *commands.CommitBookingParams) { p.TotalPriceCents = -1 },
			errIs:  commands.ErrInvalidInput,
		},
		{
			name:   "line item without a service name",
			mutate: func(p *commands.CommitBookingParams) { p.LineItems[0].ServiceName = "" },
			errIs:  commands.ErrInvalidInput,
		},
		{
			name:   "line item with negative price",
			mutate: func(p *commands.CommitBookingParams) { p.LineItems[0].UnitPriceCents = -100 },
			errIs:  commands.ErrInvalidInput,
		},
		{
			name:   "missing customer reference",
			mutate: func(p *commands.CommitBookingParams) { p.CustomerRef = "" },
			errIs:  commands.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			params := builder.NewBookingBuilder().BuildCommitParams()
			tc.mutate(&params)

			_, err := s.commands.CommitBooking(ctx, params)
			s.ErrorIs(err, tc.errIs)
		})
	}
}

func (s *BookingCommandsTestSuite) TestCommitBookingValidationOrder() {
	s.Run("date is checked before start time", func() {
		b := builder.NewBookingBuilder().WithDate("bad").WithStartTime("bad")

		_, err := s.commands.CommitBooking(context.Background(), b.BuildCommitParams())
		s.ErrorIs(err, commands.ErrInvalidDate)
	})
}
