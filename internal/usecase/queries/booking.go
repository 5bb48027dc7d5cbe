package queries

import (
	"context"
	"time"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/resource"
	"arenaos/internal/infra"
	"arenaos/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
	ListBySlot(ctx context.Context, resourceID uuid.UUID, slot booking.Slot) ([]*booking.Booking, error)
}

type ResourceReadRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	List(ctx context.Context) ([]*resource.Resource, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	Availability(ctx context.Context, resourceID uuid.UUID, date time.Time) (*AvailabilityView, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadRepo
	resources ResourceReadRepo
}

func NewBookingQueries(bookings BookingReadRepo, resources ResourceReadRepo) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, resources: resources}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	bk, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}

	name := ""
	if res, resErr := q.resources.FindByID(ctx, bk.ResourceID()); resErr == nil {
		name = res.Name()
	}
	return viewFromBooking(bk, name), nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	bks, err := q.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}

	names := q.resourceNames(ctx)
	out := make([]*BookingView, len(bks))
	for i, bk := range bks {
		out[i] = viewFromBooking(bk, names[bk.ResourceID()])
	}
	return out, nil
}

// Availability renders the read-path capacity grid for one resource
// and day. The figures can be momentarily stale under concurrent
// writes; the write path re-derives them under the slot lock before
// committing.
func (q *bookingQueriesImpl) Availability(ctx context.Context, resourceID uuid.UUID, date time.Time) (*AvailabilityView, error) {
	res, err := q.resources.FindByID(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}

	view := &AvailabilityView{
		ResourceID: resourceID,
		Hours:      make([]HourAvailability, 0, 24),
	}
	for hour := 0; hour < 24; hour++ {
		slot, slotErr := booking.NewSlot(date, hour)
		if slotErr != nil {
			return nil, errs.Mark(slotErr, errs.ErrInvalidSlot)
		}
		view.Date = slot.DateString()

		existing, listErr := q.bookings.ListBySlot(ctx, resourceID, slot)
		if listErr != nil {
			return nil, errs.Mark(listErr, errs.ErrPersistenceUnavailable)
		}
		view.Hours = append(view.Hours, HourAvailability{
			Hour:      hour,
			Remaining: booking.RemainingCapacity(res, existing),
		})
	}
	return view, nil
}

func (q *bookingQueriesImpl) resourceNames(ctx context.Context) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string)
	resources, err := q.resources.List(ctx)
	if err != nil {
		return names
	}
	for _, res := range resources {
		names[res.ID()] = res.Name()
	}
	return names
}

func viewFromBooking(bk *booking.Booking, resourceName string) *BookingView {
	return &BookingView{
		ID:               bk.ID(),
		TenantID:         bk.TenantID(),
		ResourceID:       bk.ResourceID(),
		ResourceName:     resourceName,
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
