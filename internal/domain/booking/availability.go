package booking

import "arenaos/internal/domain/resource"

// RemainingCapacity computes how much of a resource's capacity is left
// at one slot given every booking recorded there. Cancelled bookings
// hold nothing; all other statuses count in full.
//
// Exclusive resources need no special case: their capacity is 1, so a
// single live booking exhausts the slot.
func RemainingCapacity(res *resource.Resource, existing []*Booking) int {
	held := 0
	for _, b := range existing {
		held += b.HeldQuantity()
	}
	remaining := res.Capacity() - held
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// IsBookable reports whether a request for quantity units fits at the
// slot.
func IsBookable(res *resource.Resource, existing []*Booking, quantity int) bool {
	return quantity >= 1 && RemainingCapacity(res, existing) >= quantity
}
