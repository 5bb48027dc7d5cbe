package repository

import (
	"context"
	"errors"
	"time"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/money"
	"arenaos/internal/infra"
	"arenaos/internal/infra/store"

	"github.com/google/uuid"
)

type BookingRepository struct {
	store *store.Store
}

func NewBookingRepository(s *store.Store) *BookingRepository {
	return &BookingRepository{store: s}
}

func (r *BookingRepository) Create(_ context.Context, bk *booking.Booking) error {
	if err := r.store.Insert(tableBookings, bookingToRecord(bk)); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return infra.WrapRepoErr("booking already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// Save writes back lifecycle changes: status, check-in timestamp, and
// updated-at. All other fields are immutable after create.
func (r *BookingRepository) Save(_ context.Context, bk *booking.Booking) error {
	patch := store.Record{
		"status":     bk.Status().String(),
		"updated_at": bk.UpdatedAt(),
	}
	if t := bk.CheckInAt(); t != nil {
		patch["check_in_at"] = *t
	}
	if _, err := r.store.Update(tableBookings, bk.ID().String(), patch); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to save booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	rec, err := r.store.Get(tableBookings, id.String())
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return recordToBooking(rec)
}

// ListBySlot returns every booking at one (resource, date, hour) cell,
// cancelled ones included; availability math filters on status.
func (r *BookingRepository) ListBySlot(_ context.Context, resourceID uuid.UUID, slot booking.Slot) ([]*booking.Booking, error) {
	recs, err := r.store.List(tableBookings, store.Filter{
		"resource_id": resourceID.String(),
		"date":        slot.DateString(),
		"start_hour":  slot.Hour(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by slot", err)
	}
	return recordsToBookings(recs)
}

func (r *BookingRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	recs, err := r.store.List(tableBookings, store.Filter{"user_id": userID.String()})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return recordsToBookings(recs)
}

func (r *BookingRepository) ListByStatus(_ context.Context, status booking.Status) ([]*booking.Booking, error) {
	recs, err := r.store.List(tableBookings, store.Filter{"status": status.String()})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by status", err)
	}
	return recordsToBookings(recs)
}

func (r *BookingRepository) ListAll(_ context.Context) ([]*booking.Booking, error) {
	recs, err := r.store.List(tableBookings, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return recordsToBookings(recs)
}

func recordsToBookings(recs []store.Record) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(recs))
	for _, rec := range recs {
		bk, err := recordToBooking(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, bk)
	}
	return out, nil
}

func bookingToRecord(bk *booking.Booking) store.Record {
	rec := store.Record{
		"id":                 bk.ID().String(),
		"tenant_id":          bk.TenantID().String(),
		"resource_id":        bk.ResourceID().String(),
		"user_id":            bk.UserID().String(),
		"date":               bk.Slot().DateString(),
		"start_hour":         bk.Slot().Hour(),
		"duration":           bk.Duration(),
		"quantity":           bk.Quantity(),
		"status":             bk.Status().String(),
		"total_amount_cents": bk.TotalAmount().Cents(),
		"entry_pass":         bk.EntryPass().String(),
		"payment_ref":        bk.PaymentRef().String(),
		"batch_ref":          bk.BatchRef().String(),
		"created_at":         bk.CreatedAt(),
		"updated_at":         bk.UpdatedAt(),
	}
	if t := bk.CheckInAt(); t != nil {
		rec["check_in_at"] = *t
	}
	return rec
}

func recordToBooking(rec store.Record) (*booking.Booking, error) {
	id, err := uuid.Parse(asString(rec, "id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed booking id", err)
	}
	tenantID, err := uuid.Parse(asString(rec, "tenant_id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed tenant id", err)
	}
	resourceID, err := uuid.Parse(asString(rec, "resource_id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed resource id", err)
	}
	userID, err := uuid.Parse(asString(rec, "user_id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed user id", err)
	}

	date, err := time.Parse("2006-01-02", asString(rec, "date"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed booking date", err)
	}
	slot, err := booking.NewSlot(date, asInt(rec, "start_hour"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed booking slot", err)
	}
	status, err := booking.NewStatus(asString(rec, "status"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed booking status", err)
	}

	return booking.Reconstruct(
		id,
		tenantID,
		resourceID,
		userID,
		slot,
		asInt(rec, "duration"),
		asInt(rec, "quantity"),
		status,
		money.New(asInt64(rec, "total_amount_cents")),
		booking.PassCode(asString(rec, "entry_pass")),
		booking.PassCode(asString(rec, "payment_ref")),
		booking.PassCode(asString(rec, "batch_ref")),
		asTimePtr(rec, "check_in_at"),
		asTime(rec, "created_at"),
		asTime(rec, "updated_at"),
	), nil
}
