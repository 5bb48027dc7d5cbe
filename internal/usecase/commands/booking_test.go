//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/ledger"
	"arenaos/internal/usecase/commands"
	"arenaos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	t.Run("expands a multi-hour request into per-hour pending bookings", func(t *testing.T) {
		env := newCommandEnv(t)
		ctx := context.Background()

		result := env.create(t, env.court, 17, 2, 1)

		require.Len(t, result.Bookings, 2)
		assert.NotEmpty(t, result.BatchRef)

		// Hour 17 is off-peak, hour 18 is peak on the seeded card.
		assert.Equal(t, 17, result.Bookings[0].StartHour)
		assert.Equal(t, int64(5000), result.Bookings[0].TotalAmountCents)
		assert.Equal(t, 18, result.Bookings[1].StartHour)
		assert.Equal(t, int64(7500), result.Bookings[1].TotalAmountCents)

		for _, view := range result.Bookings {
			assert.Equal(t, booking.StatusPendingPayment.String(), view.Status)
			assert.Equal(t, result.BatchRef, view.BatchRef)

			txs, err := env.transactions.ListByBooking(ctx, view.ID)
			require.NoError(t, err)
			require.Len(t, txs, 1)
			assert.Equal(t, ledger.KindPayment, txs[0].Kind())
			assert.Equal(t, ledger.StatusPending, txs[0].Status())
			assert.Equal(t, view.TotalAmountCents, txs[0].Amount().Cents())
		}
	})

	t.Run("stored price survives later rate card changes", func(t *testing.T) {
		env := newCommandEnv(t)
		ctx := context.Background()

		result := env.create(t, env.court, 17, 1, 1)
		bookingID := result.Bookings[0].ID

		_, err := env.admin.AddRateCard(ctx, commands.AddRateCardParams{
			Name:            "Basketball Promo",
			ResourceType:    "Basketball",
			BaseRateCents:   100,
			PeakRateCents:   100,
			WeekendModifier: 1.0,
		})
		require.NoError(t, err)

		bk, err := env.bookings.FindByID(ctx, bookingID)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), bk.TotalAmount().Cents())
	})

	t.Run("unknown resource", func(t *testing.T) {
		env := newCommandEnv(t)

		_, err := env.booking.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: uuid.New(),
			UserID:     uuid.New(),
			Date:       builder.BaseTime,
			StartHour:  10,
			Duration:   1,
			Quantity:   1,
		})
		assert.ErrorIs(t, err, commands.ErrResourceNotFound)
	})

	t.Run("quantity above one on an exclusive court", func(t *testing.T) {
		env := newCommandEnv(t)

		_, err := env.booking.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: env.court.ID(),
			UserID:     uuid.New(),
			Date:       builder.BaseTime,
			StartHour:  10,
			Duration:   1,
			Quantity:   2,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidBookingRequest)
	})

	t.Run("exclusive court rejects a second booking on the same slot", func(t *testing.T) {
		env := newCommandEnv(t)

		env.create(t, env.court, 10, 1, 1)

		_, err := env.booking.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: env.court.ID(),
			UserID:     uuid.New(),
			Date:       builder.BaseTime,
			StartHour:  10,
			Duration:   1,
			Quantity:   1,
		})
		assert.ErrorIs(t, err, commands.ErrSlotUnavailable)
	})

	t.Run("shared lane fills up to capacity and no further", func(t *testing.T) {
		env := newCommandEnv(t)

		env.create(t, env.lane, 9, 1, 3)
		env.create(t, env.lane, 9, 1, 3)
		env.create(t, env.lane, 9, 1, 2)

		_, err := env.booking.Create(context.Background(), commands.CreateBookingParams{
			ResourceID: env.lane.ID(),
			UserID:     uuid.New(),
			Date:       builder.BaseTime,
			StartHour:  9,
			Duration:   1,
			Quantity:   1,
		})
		assert.ErrorIs(t, err, commands.ErrSlotUnavailable)

		// A neighbouring hour is untouched.
		env.create(t, env.lane, 10, 1, 1)
	})

	t.Run("cancelled bookings free their capacity", func(t *testing.T) {
		env := newCommandEnv(t)
		ctx := context.Background()

		full := env.create(t, env.lane, 9, 1, 8)
		_, err := env.booking.Cancel(ctx, full.Bookings[0].ID)
		require.NoError(t, err)

		env.create(t, env.lane, 9, 1, 8)
	})

	t.Run("concurrent requests never oversell the last unit", func(t *testing.T) {
		env := newCommandEnv(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		successes := make(chan struct{}, 16)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := env.booking.Create(ctx, commands.CreateBookingParams{
					ResourceID: env.court.ID(),
					UserID:     uuid.New(),
					Date:       builder.BaseTime,
					StartHour:  14,
					Duration:   1,
					Quantity:   1,
				})
				if err == nil {
					successes <- struct{}{}
				} else {
					assert.ErrorIs(t, err, commands.ErrSlotUnavailable)
				}
			}()
		}
		wg.Wait()
		close(successes)

		won := 0
		for range successes {
			won++
		}
		assert.Equal(t, 1, won)
	})
}

func TestConfirmPayment(t *testing.T) {
	env := newCommandEnv(t)
	ctx := context.Background()

	result := env.create(t, env.court, 10, 1, 1)
	bookingID := result.Bookings[0].ID

	require.NoError(t, env.booking.ConfirmPayment(ctx, bookingID))

	bk, err := env.bookings.FindByID(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, bk.Status())

	txs, err := env.transactions.ListByBooking(ctx, bookingID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, ledger.StatusCompleted, txs[0].Status())

	t.Run("unknown booking", func(t *testing.T) {
		err := env.booking.ConfirmPayment(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestCancelBooking(t *testing.T) {
	env := newCommandEnv(t)
	ctx := context.Background()

	result := env.create(t, env.court, 10, 1, 1)
	bookingID := result.Bookings[0].ID
	require.NoError(t, env.booking.ConfirmPayment(ctx, bookingID))

	cancel, err := env.booking.Cancel(ctx, bookingID)
	require.NoError(t, err)

	// Seeded policy refunds 80% of the 5000 cent off-peak hour.
	assert.Equal(t, int64(4000), cancel.RefundCents)

	bk, err := env.bookings.FindByID(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, bk.Status())

	txs, err := env.transactions.ListByBooking(ctx, bookingID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, ledger.KindRefund, txs[1].Kind())
	assert.Equal(t, ledger.StatusCompleted, txs[1].Status())
	assert.Equal(t, int64(4000), txs[1].Amount().Cents())

	t.Run("cancelling twice", func(t *testing.T) {
		_, err := env.booking.Cancel(ctx, bookingID)
		assert.ErrorIs(t, err, commands.ErrInvalidStateTransition)

		txs, listErr := env.transactions.ListByBooking(ctx, bookingID)
		require.NoError(t, listErr)
		assert.Len(t, txs, 2)
	})
}

func TestCompleteBooking(t *testing.T) {
	env := newCommandEnv(t)
	ctx := context.Background()

	result := env.create(t, env.court, 10, 1, 1)
	bookingID := result.Bookings[0].ID
	require.NoError(t, env.booking.ConfirmPayment(ctx, bookingID))
	require.NoError(t, env.booking.Complete(ctx, bookingID))

	bk, err := env.bookings.FindByID(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCompleted, bk.Status())

	t.Run("pending bookings cannot be closed out", func(t *testing.T) {
		pending := env.create(t, env.court, 12, 1, 1)
		err := env.booking.Complete(ctx, pending.Bookings[0].ID)
		assert.ErrorIs(t, err, commands.ErrInvalidStateTransition)
	})
}

func TestReleaseExpiredHolds(t *testing.T) {
	env := newCommandEnv(t)
	ctx := context.Background()

	stale := env.create(t, env.court, 10, 1, 1)
	env.clock.Add(45 * time.Minute)
	fresh := env.create(t, env.court, 12, 1, 1)
	env.clock.Add(10 * time.Minute)

	released, err := env.booking.ReleaseExpiredHolds(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	bk, err := env.bookings.FindByID(ctx, stale.Bookings[0].ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, bk.Status())

	txs, err := env.transactions.ListByBooking(ctx, stale.Bookings[0].ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, ledger.StatusFailed, txs[0].Status())

	kept, err := env.bookings.FindByID(ctx, fresh.Bookings[0].ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPendingPayment, kept.Status())

	t.Run("disabled when the TTL is zero", func(t *testing.T) {
		released, err := env.booking.ReleaseExpiredHolds(ctx, 0)
		require.NoError(t, err)
		assert.Zero(t, released)
	})
}
