// Package ledger models the append-only financial trail. Transactions
// are never edited once terminal and never deleted; corrections happen
// by appending a compensating entry (a REFUND against a PAYMENT).
package ledger

import (
	"errors"
	"time"

	"arenaos/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNotPending       = errors.New("transaction is not pending")
	ErrAlreadyCompleted = errors.New("transaction already completed")
)

// Transaction is one ledger entry settling part of a booking's
// financial trail.
type Transaction struct {
	id        uuid.UUID
	bookingID uuid.UUID
	userID    uuid.UUID
	amount    money.Money
	date      time.Time
	kind      Kind
	status    Status
	method    Method
	reference string
}

// NewPayment opens a PENDING payment entry for a freshly created
// booking. It completes when the external payment signal arrives or
// staff verify it manually.
func NewPayment(id, bookingID, userID uuid.UUID, amount money.Money, method Method, reference string, at time.Time) *Transaction {
	return &Transaction{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		amount:    amount,
		date:      at,
		kind:      KindPayment,
		status:    StatusPending,
		method:    method,
		reference: reference,
	}
}

// NewRefund records a completed refund against a cancelled booking.
// Refunds are born COMPLETED; there is no pending refund state in this
// design.
func NewRefund(id, bookingID, userID uuid.UUID, amount money.Money, method Method, reference string, at time.Time) *Transaction {
	return &Transaction{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		amount:    amount,
		date:      at,
		kind:      KindRefund,
		status:    StatusCompleted,
		method:    method,
		reference: reference,
	}
}

func Reconstruct(
	id, bookingID, userID uuid.UUID,
	amount money.Money,
	date time.Time,
	kind Kind,
	status Status,
	method Method,
	reference string,
) *Transaction {
	return &Transaction{
		id:        id,
		bookingID: bookingID,
		userID:    userID,
		amount:    amount,
		date:      date,
		kind:      kind,
		status:    status,
		method:    method,
		reference: reference,
	}
}

// Complete marks a pending entry as settled. Completing an already
// completed entry returns ErrAlreadyCompleted so callers can treat the
// second attempt as a no-op rather than a double settlement.
func (t *Transaction) Complete() error {
	switch t.status {
	case StatusPending:
		t.status = StatusCompleted
		return nil
	case StatusCompleted:
		return ErrAlreadyCompleted
	default:
		return ErrNotPending
	}
}

// Fail abandons a pending entry, used when an unpaid hold expires.
func (t *Transaction) Fail() error {
	if t.status != StatusPending {
		return ErrNotPending
	}
	t.status = StatusFailed
	return nil
}

func (t *Transaction) IsPending() bool   { return t.status == StatusPending }
func (t *Transaction) IsCompleted() bool { return t.status == StatusCompleted }

func (t *Transaction) ID() uuid.UUID        { return t.id }
func (t *Transaction) BookingID() uuid.UUID { return t.bookingID }
func (t *Transaction) UserID() uuid.UUID    { return t.userID }
func (t *Transaction) Amount() money.Money  { return t.amount }
func (t *Transaction) Date() time.Time      { return t.date }
func (t *Transaction) Kind() Kind           { return t.kind }
func (t *Transaction) Status() Status       { return t.status }
func (t *Transaction) Method() Method       { return t.method }
func (t *Transaction) Reference() string    { return t.reference }
