package bootstrap

import (
	"context"
	"log/slog"

	"arenaos/internal/infra/repository"
	"arenaos/internal/infra/seed"
	"arenaos/internal/infra/store"
	"arenaos/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		store.New,
	),
	fx.Invoke(seedStore),
	fx.Invoke(watchChanges),
)

// watchChanges keeps an audit tail on booking and ledger mutations for
// the lifetime of the process.
func watchChanges(lc fx.Lifecycle, s *store.Store) {
	var detach func()
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			detach = repository.WatchChanges(s)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if detach != nil {
				detach()
			}
			return nil
		},
	})
}

// seedStore loads the demo venue before the server accepts traffic. The
// store starts empty on every boot; without seed data the catalog and
// the role-picker login have nothing to serve.
func seedStore(lc fx.Lifecycle, s *store.Store, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			repos := seed.Repositories{
				Tenants:   repository.NewTenantRepository(s),
				Policies:  repository.NewPolicyRepository(s),
				RateCards: repository.NewRateCardRepository(s),
				Resources: repository.NewResourceRepository(s),
				Users:     repository.NewUserRepository(s),
			}
			if err := seed.Load(ctx, cfg.Venue, repos); err != nil {
				return err
			}
			slog.Info("demo venue seeded", "tenant", cfg.Venue.TenantName)
			return nil
		},
	})
}
