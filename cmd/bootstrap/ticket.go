package bootstrap

import (
	"unihub/internal/pkg/config"
	"unihub/internal/pkg/ticket"
	"unihub/internal/usecase/commands"

	"go.uber.org/fx"
)

var TicketModule = fx.Module("ticket",
	fx.Provide(
		fx.Annotate(
			NewTicketIssuer,
			fx.As(new(commands.TicketIssuer)),
		),
	),
)

func NewTicketIssuer(cfg config.Config) *ticket.Issuer {
	return ticket.NewIssuer(cfg.Ticket.SigningKey, cfg.Ticket.TTL)
}
