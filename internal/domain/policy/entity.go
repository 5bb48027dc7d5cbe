package policy

import (
	"errors"

	"arenaos/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidRefundPercentage = errors.New("refund percentage must be between 0 and 100")
	ErrNegativeWindow          = errors.New("policy windows cannot be negative")
	ErrNegativeRadius          = errors.New("gps radius cannot be negative")
)

// Policy holds the tenant-wide operational rules: how refunds are
// computed, how close a player must be to check in, and how tight the
// check-in window is. One policy per tenant.
//
// The cancellation window is recorded for staff visibility but does not
// block cancellation or scale the refund; only the refund percentage
// applies.
type Policy struct {
	id                uuid.UUID
	cancelWindowHrs   int
	refundPercentage  int
	gpsRadiusMeters   int
	checkInWindowMins int
	noShowPenalty     money.Money
}

func NewPolicy(
	id uuid.UUID,
	cancelWindowHrs, refundPercentage, gpsRadiusMeters, checkInWindowMins int,
	noShowPenalty money.Money,
) (*Policy, error) {
	if refundPercentage < 0 || refundPercentage > 100 {
		return nil, ErrInvalidRefundPercentage
	}
	if cancelWindowHrs < 0 || checkInWindowMins < 0 {
		return nil, ErrNegativeWindow
	}
	if gpsRadiusMeters < 0 {
		return nil, ErrNegativeRadius
	}

	return &Policy{
		id:                id,
		cancelWindowHrs:   cancelWindowHrs,
		refundPercentage:  refundPercentage,
		gpsRadiusMeters:   gpsRadiusMeters,
		checkInWindowMins: checkInWindowMins,
		noShowPenalty:     noShowPenalty,
	}, nil
}

// RefundFor computes the refund owed when a booking of the given total
// is cancelled. Applied unconditionally from any cancellable state.
func (p *Policy) RefundFor(total money.Money) money.Money {
	return total.Percent(p.refundPercentage)
}

func (p *Policy) ID() uuid.UUID              { return p.id }
func (p *Policy) CancelWindowHrs() int       { return p.cancelWindowHrs }
func (p *Policy) RefundPercentage() int      { return p.refundPercentage }
func (p *Policy) GPSRadiusMeters() int       { return p.gpsRadiusMeters }
func (p *Policy) CheckInWindowMins() int     { return p.checkInWindowMins }
func (p *Policy) NoShowPenalty() money.Money { return p.noShowPenalty }
