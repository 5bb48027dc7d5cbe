//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"arenaos/internal/domain/ledger"
	"arenaos/internal/domain/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryAt = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

func newPayment() *ledger.Transaction {
	return ledger.NewPayment(uuid.New(), uuid.New(), uuid.New(), money.New(5000), ledger.MethodQR, "PAY-TEST", entryAt)
}

func TestPaymentSettlement(t *testing.T) {
	t.Run("payment opens pending", func(t *testing.T) {
		tx := newPayment()
		assert.Equal(t, ledger.KindPayment, tx.Kind())
		assert.True(t, tx.IsPending())
		assert.False(t, tx.IsCompleted())
	})

	t.Run("complete settles once", func(t *testing.T) {
		tx := newPayment()
		require.NoError(t, tx.Complete())
		assert.True(t, tx.IsCompleted())
	})

	t.Run("second completion reports already completed", func(t *testing.T) {
		tx := newPayment()
		require.NoError(t, tx.Complete())
		require.ErrorIs(t, tx.Complete(), ledger.ErrAlreadyCompleted)
		assert.True(t, tx.IsCompleted())
	})

	t.Run("fail abandons a pending entry", func(t *testing.T) {
		tx := newPayment()
		require.NoError(t, tx.Fail())
		assert.Equal(t, ledger.StatusFailed, tx.Status())
	})

	t.Run("failed entry cannot complete", func(t *testing.T) {
		tx := newPayment()
		require.NoError(t, tx.Fail())
		require.ErrorIs(t, tx.Complete(), ledger.ErrNotPending)
	})

	t.Run("completed entry cannot fail", func(t *testing.T) {
		tx := newPayment()
		require.NoError(t, tx.Complete())
		require.ErrorIs(t, tx.Fail(), ledger.ErrNotPending)
	})
}

func TestRefundBornCompleted(t *testing.T) {
	tx := ledger.NewRefund(uuid.New(), uuid.New(), uuid.New(), money.New(4000), ledger.MethodQR, "REFUND-TEST", entryAt)

	assert.Equal(t, ledger.KindRefund, tx.Kind())
	assert.True(t, tx.IsCompleted())
	require.ErrorIs(t, tx.Complete(), ledger.ErrAlreadyCompleted)
}
