package components

import (
	"unihub/internal/pkg/clock"
	"unihub/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSettingsCommands,
		commands.NewOpenDayCommands,
		commands.NewInquiryCommands,
		commands.NewEventCommands,
	),
)
