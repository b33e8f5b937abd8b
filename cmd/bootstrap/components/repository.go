package components

import (
	"unihub/internal/infra/readstore"
	repo_impl "unihub/internal/infra/repository"
	"unihub/internal/usecase/commands"
	"unihub/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(commands.ProfileRepository)),
		),
		fx.Annotate(
			repo_impl.NewOpenDayRepository,
			fx.As(new(commands.OpenDayRepository)),
		),
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			repo_impl.NewInquiryRepository,
			fx.As(new(commands.InquiryRepository)),
		),
		fx.Annotate(
			repo_impl.NewAuditRepository,
			fx.As(new(commands.AuditWriter)),
		),
		// Commands resolve catalog rows through the read side
		fx.Annotate(
			readstore.NewUniversityReadStore,
			fx.As(new(commands.UniversityFinder)),
		),
		fx.Annotate(
			readstore.NewProgramReadStore,
			fx.As(new(commands.ProgramFinder)),
		),
		queries.NewAdmissionsQueries,
		queries.NewEventQueries,
	),
)
