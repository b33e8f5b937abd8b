package bootstrap

import (
	"unihub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	TicketModule,
	UniversityModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
