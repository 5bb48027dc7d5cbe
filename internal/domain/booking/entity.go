package booking

import (
	"errors"
	"time"

	"arenaos/internal/domain/money"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid booking state transition")

// Booking reserves one resource for one hour-slot. The total amount is
// snapshotted when the booking is created and never recomputed; rate
// card edits do not drift already-sold prices.
type Booking struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	resourceID  uuid.UUID
	userID      uuid.UUID
	slot        Slot
	duration    int
	quantity    int
	status      Status
	totalAmount money.Money
	entryPass   PassCode
	paymentRef  PassCode
	batchRef    PassCode
	checkInAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func newBooking(
	id, tenantID, resourceID, userID uuid.UUID,
	slot Slot,
	quantity int,
	total money.Money,
	entryPass, paymentRef, batchRef PassCode,
	at time.Time,
) (*Booking, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	return &Booking{
		id:          id,
		tenantID:    tenantID,
		resourceID:  resourceID,
		userID:      userID,
		slot:        slot,
		duration:    1,
		quantity:    quantity,
		status:      StatusPendingPayment,
		totalAmount: total,
		entryPass:   entryPass,
		paymentRef:  paymentRef,
		batchRef:    batchRef,
		createdAt:   at,
		updatedAt:   at,
	}, nil
}

func Reconstruct(
	id, tenantID, resourceID, userID uuid.UUID,
	slot Slot,
	duration, quantity int,
	status Status,
	total money.Money,
	entryPass, paymentRef, batchRef PassCode,
	checkInAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		tenantID:    tenantID,
		resourceID:  resourceID,
		userID:      userID,
		slot:        slot,
		duration:    duration,
		quantity:    quantity,
		status:      status,
		totalAmount: total,
		entryPass:   entryPass,
		paymentRef:  paymentRef,
		batchRef:    batchRef,
		checkInAt:   checkInAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) transitionTo(next Status, at time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = at
	return nil
}

// ConfirmPayment moves the booking out of PENDING_PAYMENT once its
// payment transaction settles.
func (b *Booking) ConfirmPayment(at time.Time) error {
	return b.transitionTo(StatusConfirmed, at)
}

// CheckIn records physical arrival. Only CONFIRMED bookings can check
// in; the authorizer validates window and location before calling this.
func (b *Booking) CheckIn(at time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	if err := b.transitionTo(StatusCheckedIn, at); err != nil {
		return err
	}
	t := at
	b.checkInAt = &t
	return nil
}

// Complete closes the session, from CHECKED_IN normally or straight
// from CONFIRMED when staff record a no-show completion.
func (b *Booking) Complete(at time.Time) error {
	return b.transitionTo(StatusCompleted, at)
}

// Cancel is terminal and legal from any non-terminal committed state.
// Cancelling twice fails the transition check, which is what makes
// cancellation idempotent at the ledger level: no second refund can be
// emitted for an already-cancelled booking.
func (b *Booking) Cancel(at time.Time) error {
	return b.transitionTo(StatusCancelled, at)
}

func (b *Booking) IsTerminal() bool {
	return b.status.IsTerminal()
}

// HeldQuantity is the capacity this booking still occupies at its slot.
func (b *Booking) HeldQuantity() int {
	if !b.status.CountsAgainstCapacity() {
		return 0
	}
	return b.quantity
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) TenantID() uuid.UUID      { return b.tenantID }
func (b *Booking) ResourceID() uuid.UUID    { return b.resourceID }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) Slot() Slot               { return b.slot }
func (b *Booking) Duration() int            { return b.duration }
func (b *Booking) Quantity() int            { return b.quantity }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) TotalAmount() money.Money { return b.totalAmount }
func (b *Booking) EntryPass() PassCode      { return b.entryPass }
func (b *Booking) PaymentRef() PassCode     { return b.paymentRef }
func (b *Booking) BatchRef() PassCode       { return b.batchRef }
func (b *Booking) CheckInAt() *time.Time    { return b.checkInAt }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
