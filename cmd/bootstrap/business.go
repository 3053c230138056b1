package bootstrap

import (
	"time"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// BusinessModule turns the shop configuration into the domain values the
// core needs: validated business hours and the fixed local timezone.
var BusinessModule = fx.Module("business",
	fx.Provide(
		NewBusinessHours,
		NewBusinessLocation,
	),
)

func NewBusinessHours(cfg config.Config) (schedule.Hours, error) {
	return schedule.NewHours(cfg.Business.OpenHour, cfg.Business.CloseHour)
}

func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Business.Location()
}
