// Package money holds the cent-denominated amount type shared by
// pricing, bookings, and the ledger. Amounts are snapshotted at booking
// time, so this type is deliberately plain: integer cents, no FX.
package money

import "errors"

var ErrNegativeAmount = errors.New("money cannot be negative")

type Money struct {
	cents int64
}

func New(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Mul(factor int64) Money {
	return Money{cents: m.cents * factor}
}

// Percent returns the given percentage of the amount, truncated to a
// whole cent. Percentages outside [0,100] are clamped.
func (m Money) Percent(pct int) Money {
	if pct <= 0 {
		return Money{}
	}
	if pct > 100 {
		pct = 100
	}
	return Money{cents: m.cents * int64(pct) / 100}
}
