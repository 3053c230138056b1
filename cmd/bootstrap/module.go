package bootstrap

import (
	"barber-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	BusinessModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
