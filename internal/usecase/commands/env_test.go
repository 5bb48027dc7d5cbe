//go:build unit

package commands_test

import (
	"context"
	"testing"

	"arenaos/internal/domain/booking"
	"arenaos/internal/domain/money"
	"arenaos/internal/domain/policy"
	"arenaos/internal/domain/pricing"
	"arenaos/internal/domain/resource"
	"arenaos/internal/domain/tenant"
	"arenaos/internal/infra/repository"
	"arenaos/internal/infra/store"
	"arenaos/internal/pkg/clock"
	"arenaos/internal/pkg/geo"
	"arenaos/internal/usecase/commands"
	"arenaos/internal/usecase/shared"
	"arenaos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// commandEnv wires the command layer over a live in-memory store, the
// same topology the bootstrap assembles, with a settable clock.
type commandEnv struct {
	clock        *clock.MockClock
	bookings     *repository.BookingRepository
	resources    *repository.ResourceRepository
	transactions *repository.TransactionRepository
	rateCards    *repository.RateCardRepository
	policies     *repository.PolicyRepository
	tenants      *repository.TenantRepository

	booking commands.BookingCommands
	checkIn commands.CheckInCommands
	ledger  commands.LedgerCommands
	admin   commands.AdminCommands

	court *resource.Resource
	lane  *resource.Resource
}

func newCommandEnv(t *testing.T) *commandEnv {
	t.Helper()
	ctx := context.Background()

	s := store.New()
	env := &commandEnv{
		clock:        clock.NewMockClock(builder.BaseTime),
		bookings:     repository.NewBookingRepository(s),
		resources:    repository.NewResourceRepository(s),
		transactions: repository.NewTransactionRepository(s),
		rateCards:    repository.NewRateCardRepository(s),
		policies:     repository.NewPolicyRepository(s),
		tenants:      repository.NewTenantRepository(s),
	}

	ten, err := tenant.NewTenant(uuid.New(), "Test Arena", "USD", geo.Point{Lat: 34.0522, Lng: -118.2437}, "123 Sport Ave")
	require.NoError(t, err)
	require.NoError(t, env.tenants.Create(ctx, ten))

	pol, err := policy.NewPolicy(uuid.New(), 24, 80, 200, 15, money.New(1000))
	require.NoError(t, err)
	require.NoError(t, env.policies.Create(ctx, pol))

	card, err := pricing.NewRateCard(
		uuid.New(),
		"Basketball Standard", "Basketball",
		money.New(5000), money.New(7500),
		[]int{18, 19, 20, 21},
		1.1,
	)
	require.NoError(t, err)
	require.NoError(t, env.rateCards.Create(ctx, card))

	env.court, err = resource.NewResource(
		uuid.New(), ten.ID(),
		"Center Court", "Basketball",
		resource.ModeExclusive, 1,
		money.New(5000), "",
	)
	require.NoError(t, err)
	require.NoError(t, env.resources.Create(ctx, env.court))

	env.lane, err = resource.NewResource(
		uuid.New(), ten.ID(),
		"Olympic Lane 1", "Swimming",
		resource.ModeShared, 8,
		money.New(1500), "",
	)
	require.NoError(t, err)
	require.NoError(t, env.resources.Create(ctx, env.lane))

	env.booking = commands.NewBookingCommands(
		env.bookings,
		env.resources,
		env.transactions,
		env.rateCards,
		env.policies,
		booking.NewFactory(env.clock),
		shared.NewSlotLocker(),
		env.clock,
	)
	env.checkIn = commands.NewCheckInCommands(env.bookings, env.policies, env.tenants, env.clock)
	env.ledger = commands.NewLedgerCommands(env.transactions, env.bookings, env.clock)
	env.admin = commands.NewAdminCommands(env.resources, env.rateCards, env.policies, env.tenants)

	return env
}

func (e *commandEnv) create(t *testing.T, res *resource.Resource, startHour, duration, quantity int) *commands.CreateBookingResult {
	t.Helper()
	result, err := e.booking.Create(context.Background(), commands.CreateBookingParams{
		ResourceID: res.ID(),
		UserID:     uuid.New(),
		Date:       builder.BaseTime,
		StartHour:  startHour,
		Duration:   duration,
		Quantity:   quantity,
	})
	require.NoError(t, err)
	return result
}
