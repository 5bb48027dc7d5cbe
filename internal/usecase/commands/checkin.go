package commands

import (
	"context"
	"time"

	"arenaos/internal/domain/booking"
	"arenaos/internal/pkg/clock"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/pkg/geo"

	"github.com/google/uuid"
)

var ErrCheckInRejected = errs.New("check-in rejected")

// Rejection reasons surfaced to the gate.
const (
	ReasonNotConfirmed  = "booking not confirmed"
	ReasonOutsideWindow = "outside check-in window"
	ReasonTooFar        = "too far from venue"
)

type CheckInParams struct {
	BookingID uuid.UUID
	// Location is the caller's observed position. Nil skips the
	// geofence entirely: the manual desk path, where staff vouch for
	// the player in person. The transport decides who may omit it.
	Location *geo.Point
}

type CheckInResult struct {
	Accepted       bool       `json:"accepted"`
	Reason         string     `json:"reason,omitempty"`
	DistanceMeters *float64   `json:"distance_meters,omitempty"`
	CheckInAt      *time.Time `json:"check_in_at,omitempty"`
}

type CheckInCommands interface {
	Authorize(ctx context.Context, params CheckInParams) (*CheckInResult, error)
}

type checkInCommandsImpl struct {
	bookings BookingRepository
	policies PolicyRepository
	tenants  TenantRepository
	clock    clock.Clock
}

func NewCheckInCommands(
	bookings BookingRepository,
	policies PolicyRepository,
	tenants TenantRepository,
	clk clock.Clock,
) CheckInCommands {
	return &checkInCommandsImpl{
		bookings: bookings,
		policies: policies,
		tenants:  tenants,
		clock:    clk,
	}
}

// Authorize runs the gate checks in order: state, time window, then
// geofence. The first failing check decides the reason; a rejected
// result carries ErrCheckInRejected so the transport can map it without
// inspecting the payload.
func (c *checkInCommandsImpl) Authorize(ctx context.Context, params CheckInParams) (*CheckInResult, error) {
	bk, err := c.loadBooking(ctx, params.BookingID)
	if err != nil {
		return nil, err
	}

	if bk.Status() != booking.StatusConfirmed {
		return reject(ReasonNotConfirmed, nil)
	}

	pol, err := c.policies.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	now := c.clock.Now()
	if window := pol.CheckInWindowMins(); window > 0 {
		delta := time.Duration(window) * time.Minute
		start := bk.Slot().StartAt()
		if now.Before(start.Add(-delta)) || now.After(start.Add(delta)) {
			return reject(ReasonOutsideWindow, nil)
		}
	}

	if params.Location != nil {
		ten, tenErr := c.tenants.Get(ctx)
		if tenErr != nil {
			return nil, errs.Mark(tenErr, ErrPersistenceFailed)
		}
		distance := ten.DistanceMeters(*params.Location)
		if distance > float64(pol.GPSRadiusMeters()) {
			return reject(ReasonTooFar, &distance)
		}
	}

	if err := bk.CheckIn(now); err != nil {
		return nil, errs.Mark(err, ErrInvalidStateTransition)
	}
	if err := c.bookings.Save(ctx, bk); err != nil {
		return nil, errs.Mark(err, ErrPersistenceFailed)
	}

	at := now
	return &CheckInResult{Accepted: true, CheckInAt: &at}, nil
}

func (c *checkInCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return loadBooking(ctx, c.bookings, id)
}

func reject(reason string, distance *float64) (*CheckInResult, error) {
	return &CheckInResult{Accepted: false, Reason: reason, DistanceMeters: distance}, ErrCheckInRejected
}
