//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"arenaos/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	t.Run("date normalized to start of day UTC", func(t *testing.T) {
		late := time.Date(2026, 3, 14, 22, 45, 12, 0, time.UTC)
		slot, err := booking.NewSlot(late, 9)
		require.NoError(t, err)

		assert.Equal(t, "2026-03-14", slot.DateString())
		assert.Equal(t, 9, slot.Hour())
		assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), slot.StartAt())
	})

	t.Run("same day different timestamps compare equal", func(t *testing.T) {
		a, err := booking.NewSlot(time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC), 10)
		require.NoError(t, err)
		b, err := booking.NewSlot(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC), 10)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("hour bounds", func(t *testing.T) {
		day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

		_, err := booking.NewSlot(day, -1)
		require.ErrorIs(t, err, booking.ErrInvalidHour)

		_, err = booking.NewSlot(day, 24)
		require.ErrorIs(t, err, booking.ErrInvalidHour)

		_, err = booking.NewSlot(day, 0)
		require.NoError(t, err)

		_, err = booking.NewSlot(day, 23)
		require.NoError(t, err)
	})

	t.Run("zero date rejected", func(t *testing.T) {
		_, err := booking.NewSlot(time.Time{}, 10)
		require.ErrorIs(t, err, booking.ErrZeroDate)
	})

	t.Run("shift stays on the same day", func(t *testing.T) {
		day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		slot, err := booking.NewSlot(day, 22)
		require.NoError(t, err)

		next, err := slot.Shift(1)
		require.NoError(t, err)
		assert.Equal(t, 23, next.Hour())
		assert.Equal(t, slot.Date(), next.Date())

		_, err = slot.Shift(2)
		require.ErrorIs(t, err, booking.ErrInvalidHour)
	})
}

func TestPassCodes(t *testing.T) {
	entry := booking.NewEntryPass()
	pay := booking.NewPaymentRef()
	batch := booking.NewBatchRef()

	assert.True(t, strings.HasPrefix(entry.String(), "ENTRY-"))
	assert.True(t, strings.HasPrefix(pay.String(), "PAY-"))
	assert.True(t, strings.HasPrefix(batch.String(), "BATCH-"))

	assert.NotEqual(t, booking.NewEntryPass(), booking.NewEntryPass())
}
