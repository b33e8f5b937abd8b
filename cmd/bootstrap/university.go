package bootstrap

import (
	"unihub/internal/infra/university"
	"unihub/internal/pkg/config"
	"unihub/internal/usecase/commands"

	"go.uber.org/fx"
)

var UniversityModule = fx.Module("university",
	fx.Provide(
		fx.Annotate(
			NewUniversityDirectory,
			fx.As(new(commands.Directory)),
		),
	),
)

func NewUniversityDirectory(cfg config.Config) (*university.Directory, error) {
	return university.NewDirectory(cfg.University.FixturesPath)
}
