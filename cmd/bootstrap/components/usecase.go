package components

import (
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/usecase/commands"
	"barber-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewBookingCommands,
		queries.NewBookingQueries,
	),
)
