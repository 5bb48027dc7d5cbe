package booking

import (
	"errors"

	"arenaos/internal/domain/ledger"
	"arenaos/internal/domain/money"
	"arenaos/internal/domain/resource"
	"arenaos/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration      = errors.New("duration must be at least 1 hour")
	ErrQuantityOnExclusive  = errors.New("exclusive resources are booked whole")
	ErrQuantityOverCapacity = errors.New("quantity exceeds resource capacity")
)

// Pricer is the rate engine seen from the factory: a pure mapping from
// a resource and a single hour to a price.
type Pricer interface {
	Price(res *resource.Resource, startHour, duration, quantity int) money.Money
}

// Batch is the output of one booking request: the per-hour bookings and
// their pending payment entries, linked pairwise by index.
type Batch struct {
	Bookings     []*Booking
	Transactions []*ledger.Transaction
}

// Ref returns the shared batch reference.
func (b Batch) Ref() PassCode {
	if len(b.Bookings) == 0 {
		return ""
	}
	return b.Bookings[0].BatchRef()
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

// CreateBatch expands one request into single-hour bookings, each with
// its price snapshotted through the pricer and a PENDING payment entry
// of the same amount. Availability is the caller's concern: the command
// layer holds the slot lock and has already rechecked capacity.
func (f *Factory) CreateBatch(
	pricer Pricer,
	res *resource.Resource,
	userID uuid.UUID,
	start Slot,
	hours, quantity int,
) (Batch, error) {
	if hours < 1 {
		return Batch{}, ErrInvalidDuration
	}
	if quantity < 1 {
		return Batch{}, ErrInvalidQuantity
	}
	if res.Mode() == resource.ModeExclusive && quantity != 1 {
		return Batch{}, ErrQuantityOnExclusive
	}
	if quantity > res.Capacity() {
		return Batch{}, ErrQuantityOverCapacity
	}

	now := f.clock.Now()
	batchRef := NewBatchRef()

	out := Batch{
		Bookings:     make([]*Booking, 0, hours),
		Transactions: make([]*ledger.Transaction, 0, hours),
	}

	for i := 0; i < hours; i++ {
		slot, err := start.Shift(i)
		if err != nil {
			return Batch{}, err
		}

		total := pricer.Price(res, slot.Hour(), 1, quantity)
		paymentRef := NewPaymentRef()

		bk, err := newBooking(
			uuid.New(),
			res.TenantID(),
			res.ID(),
			userID,
			slot,
			quantity,
			total,
			NewEntryPass(),
			paymentRef,
			batchRef,
			now,
		)
		if err != nil {
			return Batch{}, err
		}

		tx := ledger.NewPayment(
			uuid.New(),
			bk.ID(),
			userID,
			total,
			ledger.MethodQR,
			paymentRef.String(),
			now,
		)

		out.Bookings = append(out.Bookings, bk)
		out.Transactions = append(out.Transactions, tx)
	}

	return out, nil
}
