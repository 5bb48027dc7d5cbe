//go:build unit

package builder

import (
	"time"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/money"
	"arenaos/internal/usecase/queries"

	"github.com/google/uuid"
)

// BaseTime anchors every built booking so clock-sensitive assertions
// stay deterministic. 2026-03-14 is a Saturday.
var BaseTime = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	ResourceID       uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	StartHour        int
	Quantity         int
	Status           booking.Status
	TotalAmountCents int64
	CheckInAt        *time.Time
	CreatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:               uuid.New(),
		TenantID:         uuid.New(),
		ResourceID:       uuid.New(),
		UserID:           uuid.New(),
		Date:             BaseTime,
		StartHour:        10,
		Quantity:         1,
		Status:           booking.StatusPendingPayment,
		TotalAmountCents: 5000,
		CreatedAt:        BaseTime,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Confirmed() *BookingBuilder {
	b.Status = booking.StatusConfirmed
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	slot, err := booking.NewSlot(b.Date, b.StartHour)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(
		b.ID, b.TenantID, b.ResourceID, b.UserID,
		slot,
		1, b.Quantity,
		b.Status,
		money.New(b.TotalAmountCents),
		booking.NewEntryPass(), booking.NewPaymentRef(), booking.NewBatchRef(),
		b.CheckInAt,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	bk := b.BuildDomain()
	return &queries.BookingView{
		ID:               bk.ID(),
		TenantID:         bk.TenantID(),
		ResourceID:       bk.ResourceID(),
		ResourceName:     "Center Court",
		UserID:           bk.UserID(),
		Date:             bk.Slot().DateString(),
		StartHour:        bk.Slot().Hour(),
		Duration:         bk.Duration(),
		Quantity:         bk.Quantity(),
		Status:           bk.Status().String(),
		TotalAmountCents: bk.TotalAmount().Cents(),
		EntryPass:        bk.EntryPass().String(),
		PaymentRef:       bk.PaymentRef().String(),
		BatchRef:         bk.BatchRef().String(),
		CheckInAt:        bk.CheckInAt(),
		CreatedAt:        bk.CreatedAt(),
		UpdatedAt:        bk.UpdatedAt(),
	}
}
