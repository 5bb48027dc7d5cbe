//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"arenaos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("slot unavailable")
	cause := errs.New("capacity exhausted")

	t.Run("marker is visible to errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("cause stays in the chain", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil cause degenerates to the marker", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("marker survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "cancelling booking")
		assert.ErrorIs(t, err, sentinel)
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "loading resource"))
	})

	t.Run("wrapped error matches errors.Is", func(t *testing.T) {
		cause := errors.New("record missing")
		assert.ErrorIs(t, errs.Wrap(cause, "loading resource"), cause)
	})
}
