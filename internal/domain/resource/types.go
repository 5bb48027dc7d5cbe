package resource

import "errors"

var ErrInvalidMode = errors.New("invalid resource mode")

// Mode describes how a resource's capacity is consumed.
//
// EXCLUSIVE: one party uses the whole unit; capacity is fixed at 1.
// SHARED: independent bookings coexist, one unit of capacity each.
// QUANTITY: a booking consumes an explicit sub-quantity of capacity.
type Mode string

const (
	ModeExclusive Mode = "EXCLUSIVE"
	ModeShared    Mode = "SHARED"
	ModeQuantity  Mode = "QUANTITY"
)

func NewMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeExclusive, ModeShared, ModeQuantity:
		return Mode(s), nil
	default:
		return "", ErrInvalidMode
	}
}

func (m Mode) String() string {
	return string(m)
}
