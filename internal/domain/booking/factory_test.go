//go:build unit

package booking_test

import (
	"testing"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/money"
	"arenaos/internal/domain/resource"
	"arenaos/internal/pkg/clock"
	"arenaos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatPricer charges a fixed amount per hour regardless of resource.
type flatPricer struct {
	cents int64
}

func (p flatPricer) Price(_ *resource.Resource, _, duration, quantity int) money.Money {
	return money.New(p.cents).Mul(int64(duration)).Mul(int64(quantity))
}

func newFactory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(builder.BaseTime))
}

func mustSlot(t *testing.T, hour int) booking.Slot {
	t.Helper()
	slot, err := booking.NewSlot(builder.BaseTime, hour)
	require.NoError(t, err)
	return slot
}

func TestCreateBatch(t *testing.T) {
	res := builder.NewResourceBuilder().BuildDomain()
	userID := uuid.New()

	t.Run("multi-hour request expands per hour", func(t *testing.T) {
		batch, err := newFactory().CreateBatch(flatPricer{cents: 5000}, res, userID, mustSlot(t, 10), 3, 1)
		require.NoError(t, err)
		require.Len(t, batch.Bookings, 3)
		require.Len(t, batch.Transactions, 3)

		for i, bk := range batch.Bookings {
			assert.Equal(t, 10+i, bk.Slot().Hour())
			assert.Equal(t, booking.StatusPendingPayment, bk.Status())
			assert.Equal(t, int64(5000), bk.TotalAmount().Cents())
			assert.Equal(t, batch.Ref(), bk.BatchRef())

			tx := batch.Transactions[i]
			assert.Equal(t, bk.ID(), tx.BookingID())
			assert.Equal(t, bk.TotalAmount(), tx.Amount())
			assert.Equal(t, bk.PaymentRef().String(), tx.Reference())
			assert.True(t, tx.IsPending())
		}
	})

	t.Run("entry passes are unique per booking", func(t *testing.T) {
		batch, err := newFactory().CreateBatch(flatPricer{cents: 100}, res, userID, mustSlot(t, 10), 2, 1)
		require.NoError(t, err)
		assert.NotEqual(t, batch.Bookings[0].EntryPass(), batch.Bookings[1].EntryPass())
		assert.NotEqual(t, batch.Bookings[0].PaymentRef(), batch.Bookings[1].PaymentRef())
	})

	t.Run("duration below one hour", func(t *testing.T) {
		_, err := newFactory().CreateBatch(flatPricer{cents: 100}, res, userID, mustSlot(t, 10), 0, 1)
		require.ErrorIs(t, err, booking.ErrInvalidDuration)
	})

	t.Run("quantity below one", func(t *testing.T) {
		_, err := newFactory().CreateBatch(flatPricer{cents: 100}, res, userID, mustSlot(t, 10), 1, 0)
		require.ErrorIs(t, err, booking.ErrInvalidQuantity)
	})

	t.Run("exclusive resource rejects partial quantity", func(t *testing.T) {
		_, err := newFactory().CreateBatch(flatPricer{cents: 100}, res, userID, mustSlot(t, 10), 1, 2)
		require.ErrorIs(t, err, booking.ErrQuantityOnExclusive)
	})

	t.Run("quantity above shared capacity", func(t *testing.T) {
		lane := builder.NewResourceBuilder().Shared().BuildDomain()

		_, err := newFactory().CreateBatch(flatPricer{cents: 100}, lane, userID, mustSlot(t, 10), 1, 9)
		require.ErrorIs(t, err, booking.ErrQuantityOverCapacity)
	})

	t.Run("request spilling past midnight", func(t *testing.T) {
		_, err := newFactory().CreateBatch(flatPricer{cents: 100}, res, userID, mustSlot(t, 23), 2, 1)
		require.ErrorIs(t, err, booking.ErrInvalidHour)
	})
}

func TestRemainingCapacity(t *testing.T) {
	lane := builder.NewResourceBuilder().Shared().BuildDomain()

	hold := func(qty int, status booking.Status) *booking.Booking {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ResourceID = lane.ID()
			b.Quantity = qty
			b.Status = status
		}).BuildDomain()
	}

	t.Run("empty slot", func(t *testing.T) {
		assert.Equal(t, 8, booking.RemainingCapacity(lane, nil))
		assert.True(t, booking.IsBookable(lane, nil, 8))
		assert.False(t, booking.IsBookable(lane, nil, 9))
	})

	t.Run("held quantities accumulate", func(t *testing.T) {
		existing := []*booking.Booking{
			hold(3, booking.StatusConfirmed),
			hold(3, booking.StatusPendingPayment),
		}
		assert.Equal(t, 2, booking.RemainingCapacity(lane, existing))
		assert.True(t, booking.IsBookable(lane, existing, 2))
		assert.False(t, booking.IsBookable(lane, existing, 3))
	})

	t.Run("cancelled bookings free their units", func(t *testing.T) {
		existing := []*booking.Booking{
			hold(8, booking.StatusCancelled),
		}
		assert.Equal(t, 8, booking.RemainingCapacity(lane, existing))
	})

	t.Run("oversold slot clamps to zero", func(t *testing.T) {
		existing := []*booking.Booking{
			hold(8, booking.StatusConfirmed),
			hold(4, booking.StatusConfirmed),
		}
		assert.Equal(t, 0, booking.RemainingCapacity(lane, existing))
	})

	t.Run("zero quantity is never bookable", func(t *testing.T) {
		assert.False(t, booking.IsBookable(lane, nil, 0))
	})
}
