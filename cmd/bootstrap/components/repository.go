package components

import (
	repo_impl "arenaos/internal/infra/repository"
	"arenaos/internal/usecase/commands"
	"arenaos/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadRepo)),
		),
		fx.Annotate(
			repo_impl.NewResourceRepository,
			fx.As(new(commands.ResourceRepository)),
			fx.As(new(queries.ResourceReadRepo)),
		),
		fx.Annotate(
			repo_impl.NewTransactionRepository,
			fx.As(new(commands.TransactionRepository)),
			fx.As(new(queries.TransactionReadRepo)),
		),
		fx.Annotate(
			repo_impl.NewRateCardRepository,
			fx.As(new(commands.RateCardRepository)),
		),
		fx.Annotate(
			repo_impl.NewPolicyRepository,
			fx.As(new(commands.PolicyRepository)),
			fx.As(new(queries.PolicyReadRepo)),
		),
		fx.Annotate(
			repo_impl.NewTenantRepository,
			fx.As(new(commands.TenantRepository)),
			fx.As(new(queries.TenantReadRepo)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)
