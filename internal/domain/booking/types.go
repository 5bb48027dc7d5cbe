package booking

import "errors"

var ErrUnknownStatus = errors.New("unknown booking status")

type Status string

const (
	StatusDraft          Status = "DRAFT"
	StatusHold           Status = "HOLD"
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusConfirmed      Status = "CONFIRMED"
	StatusCheckedIn      Status = "CHECKED_IN"
	StatusCompleted      Status = "COMPLETED"
	StatusCancelled      Status = "CANCELLED"
)

// transitions is the full lifecycle graph. DRAFT and HOLD are advisory
// pre-commit states; a direct create lands on PENDING_PAYMENT. COMPLETED
// is reachable from CONFIRMED to let staff close out a no-show.
var transitions = map[Status]map[Status]struct{}{
	StatusDraft: {
		StatusHold:           {},
		StatusPendingPayment: {},
	},
	StatusHold: {
		StatusPendingPayment: {},
		StatusCancelled:      {},
	},
	StatusPendingPayment: {
		StatusConfirmed: {},
		StatusCancelled: {},
	},
	StatusConfirmed: {
		StatusCheckedIn: {},
		StatusCompleted: {},
		StatusCancelled: {},
	},
	StatusCheckedIn: {
		StatusCompleted: {},
		StatusCancelled: {},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

func NewStatus(s string) (Status, error) {
	if _, ok := transitions[Status(s)]; !ok {
		return "", ErrUnknownStatus
	}
	return Status(s), nil
}

func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the lifecycle graph permits moving
// from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	_, ok = allowed[next]
	return ok
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CountsAgainstCapacity reports whether a booking in this status still
// occupies its slot. Only cancellation releases capacity.
func (s Status) CountsAgainstCapacity() bool {
	return s != StatusCancelled
}
