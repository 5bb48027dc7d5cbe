package bootstrap

import (
	"context"
	"log/slog"

	"arenaos/internal/pkg/config"
	"arenaos/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(startExpirySweeper),
)

// startExpirySweeper runs the payment-hold sweeper on the configured
// interval. A zero TTL disables expiry and no scheduler is created at
// all.
func startExpirySweeper(lc fx.Lifecycle, cfg config.Config, bookingCommands commands.BookingCommands) error {
	ttl := cfg.Booking.PaymentHoldTTL
	if ttl <= 0 {
		slog.Info("payment hold expiry disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Booking.ExpirySweepInterval),
		gocron.NewTask(func() {
			released, sweepErr := bookingCommands.ReleaseExpiredHolds(context.Background(), ttl)
			if sweepErr != nil {
				slog.Error("expiry sweep failed", "error", sweepErr)
				return
			}
			if released > 0 {
				slog.Info("released expired payment holds", "count", released)
			}
		}),
		gocron.WithName("payment-hold-sweeper"),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			slog.Info("expiry sweeper started", "ttl", ttl, "interval", cfg.Booking.ExpirySweepInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Shutdown()
		},
	})
	return nil
}
