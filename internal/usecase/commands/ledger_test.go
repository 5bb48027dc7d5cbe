//go:build unit

package commands_test

import (
	"context"
	"testing"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/ledger"
	"arenaos/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyTransaction(t *testing.T) {
	t.Run("settles a pending payment and confirms the booking", func(t *testing.T) {
		env := newCommandEnv(t)
		ctx := context.Background()

		created := env.create(t, env.court, 10, 1, 1)
		bookingID := created.Bookings[0].ID
		txs, err := env.transactions.ListByBooking(ctx, bookingID)
		require.NoError(t, err)
		require.Len(t, txs, 1)

		result, err := env.ledger.Verify(ctx, txs[0].ID())
		require.NoError(t, err)
		assert.Equal(t, txs[0].ID(), result.TransactionID)
		assert.Equal(t, bookingID, result.BookingID)
		assert.Equal(t, ledger.StatusCompleted.String(), result.Status)
		assert.False(t, result.AlreadyCompleted)

		bk, err := env.bookings.FindByID(ctx, bookingID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, bk.Status())

		t.Run("a second scan is a no-op", func(t *testing.T) {
			again, err := env.ledger.Verify(ctx, txs[0].ID())
			require.NoError(t, err)
			assert.True(t, again.AlreadyCompleted)
			assert.Equal(t, ledger.StatusCompleted.String(), again.Status)
		})
	})

	t.Run("refund entries are not verifiable", func(t *testing.T) {
		env := newCommandEnv(t)
		ctx := context.Background()

		created := env.create(t, env.court, 10, 1, 1)
		bookingID := created.Bookings[0].ID
		require.NoError(t, env.booking.ConfirmPayment(ctx, bookingID))
		_, err := env.booking.Cancel(ctx, bookingID)
		require.NoError(t, err)

		txs, err := env.transactions.ListByBooking(ctx, bookingID)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		require.Equal(t, ledger.KindRefund, txs[1].Kind())

		_, err = env.ledger.Verify(ctx, txs[1].ID())
		assert.ErrorIs(t, err, commands.ErrNotVerifiable)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		env := newCommandEnv(t)
		_, err := env.ledger.Verify(context.Background(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrTransactionNotFound)
	})
}
