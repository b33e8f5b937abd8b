package components

import (
	"unihub/internal/handler"
	"unihub/internal/handler/api"
	"unihub/internal/handler/middleware"
	"unihub/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSettingsHandler,
		api.NewAdmissionsHandler,
		api.NewEventsHandler,
		func(cfg config.Config) *middleware.SignedPayloadGate {
			return middleware.NewSignedPayloadGate(cfg.Auth)
		},
	),
	fx.Invoke(handler.NewRouter),
)
