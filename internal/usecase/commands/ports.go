package commands

import (
	"context"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/ledger"
	"arenaos/internal/domain/policy"
	"arenaos/internal/domain/pricing"
	"arenaos/internal/domain/resource"
	"arenaos/internal/domain/tenant"

	"github.com/google/uuid"
)

// Ports the command side needs from the persistence collaborator. The
// infra repositories satisfy these; tests substitute mocks.

type BookingRepository interface {
	Create(ctx context.Context, bk *booking.Booking) error
	Save(ctx context.Context, bk *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListBySlot(ctx context.Context, resourceID uuid.UUID, slot booking.Slot) ([]*booking.Booking, error)
	ListByStatus(ctx context.Context, status booking.Status) ([]*booking.Booking, error)
}

type ResourceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	Create(ctx context.Context, res *resource.Resource) error
}

type TransactionRepository interface {
	Append(ctx context.Context, tx *ledger.Transaction) error
	SaveStatus(ctx context.Context, tx *ledger.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*ledger.Transaction, error)
}

type RateCardRepository interface {
	List(ctx context.Context) ([]*pricing.RateCard, error)
	Create(ctx context.Context, card *pricing.RateCard) error
}

type PolicyRepository interface {
	Get(ctx context.Context) (*policy.Policy, error)
	Save(ctx context.Context, p *policy.Policy) error
}

type TenantRepository interface {
	Get(ctx context.Context) (*tenant.Tenant, error)
	Save(ctx context.Context, t *tenant.Tenant) error
}
