//go:build unit

package booking_test

import (
	"testing"
	"time"

	"arenaos/internal/domain/booking"
	"arenaos/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingLifecycle(t *testing.T) {
	at := builder.BaseTime.Add(time.Hour)

	t.Run("full happy path", func(t *testing.T) {
		bk := builder.NewBookingBuilder().BuildDomain()

		require.NoError(t, bk.ConfirmPayment(at))
		assert.Equal(t, booking.StatusConfirmed, bk.Status())

		require.NoError(t, bk.CheckIn(at))
		assert.Equal(t, booking.StatusCheckedIn, bk.Status())
		require.NotNil(t, bk.CheckInAt())
		assert.Equal(t, at, *bk.CheckInAt())

		require.NoError(t, bk.Complete(at))
		assert.Equal(t, booking.StatusCompleted, bk.Status())
		assert.True(t, bk.IsTerminal())
	})

	t.Run("check-in requires confirmed", func(t *testing.T) {
		bk := builder.NewBookingBuilder().BuildDomain()
		require.ErrorIs(t, bk.CheckIn(at), booking.ErrInvalidTransition)
		assert.Nil(t, bk.CheckInAt())
	})

	t.Run("no-show closeout from confirmed", func(t *testing.T) {
		bk := builder.NewBookingBuilder().Confirmed().BuildDomain()
		require.NoError(t, bk.Complete(at))
		assert.Equal(t, booking.StatusCompleted, bk.Status())
	})

	t.Run("cancel is terminal and single-shot", func(t *testing.T) {
		bk := builder.NewBookingBuilder().Confirmed().BuildDomain()
		require.NoError(t, bk.Cancel(at))
		assert.Equal(t, booking.StatusCancelled, bk.Status())

		require.ErrorIs(t, bk.Cancel(at), booking.ErrInvalidTransition)
	})

	t.Run("cancel after completion rejected", func(t *testing.T) {
		bk := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCompleted
		}).BuildDomain()
		require.ErrorIs(t, bk.Cancel(at), booking.ErrInvalidTransition)
	})

	t.Run("transition stamps updatedAt", func(t *testing.T) {
		bk := builder.NewBookingBuilder().BuildDomain()
		before := bk.UpdatedAt()
		require.NoError(t, bk.ConfirmPayment(at))
		assert.True(t, bk.UpdatedAt().After(before))
	})
}

func TestHeldQuantity(t *testing.T) {
	t.Run("active booking holds its quantity", func(t *testing.T) {
		bk := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Quantity = 3
		}).BuildDomain()
		assert.Equal(t, 3, bk.HeldQuantity())
	})

	t.Run("cancelled booking releases capacity", func(t *testing.T) {
		bk := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Quantity = 3
			b.Status = booking.StatusCancelled
		}).BuildDomain()
		assert.Equal(t, 0, bk.HeldQuantity())
	})

	t.Run("completed booking still counts", func(t *testing.T) {
		bk := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Status = booking.StatusCompleted
		}).BuildDomain()
		assert.Equal(t, 1, bk.HeldQuantity())
	})
}
