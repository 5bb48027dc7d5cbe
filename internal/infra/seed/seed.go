// Package seed loads the demo dataset: one tenant, its policy, rate
// cards, resources, and a user per role. The store starts empty; every
// environment seeds itself at boot the way the original demo shipped
// with mock fixtures.
package seed

import (
	"context"

	"arenaos/internal/domain/money"
	"arenaos/internal/domain/policy"
	"arenaos/internal/domain/pricing"
	"arenaos/internal/domain/resource"
	"arenaos/internal/domain/tenant"
	"arenaos/internal/domain/user"
	"arenaos/internal/infra/repository"
	"arenaos/internal/pkg/config"
	"arenaos/internal/pkg/errs"
	"arenaos/internal/pkg/geo"

	"github.com/google/uuid"
)

type Repositories struct {
	Tenants   *repository.TenantRepository
	Policies  *repository.PolicyRepository
	RateCards *repository.RateCardRepository
	Resources *repository.ResourceRepository
	Users     *repository.UserRepository
}

func Load(ctx context.Context, cfg config.VenueConfig, repos Repositories) error {
	tenantID := uuid.New()

	t, err := tenant.NewTenant(
		tenantID,
		cfg.TenantName,
		cfg.Currency,
		geo.Point{Lat: cfg.Lat, Lng: cfg.Lng},
		cfg.Address,
	)
	if err != nil {
		return errs.Wrap(err, "seed tenant")
	}
	t.UpdateBranding(tenant.Branding{PrimaryColor: "#4f46e5", SecondaryColor: "#ec4899"})
	if err := repos.Tenants.Create(ctx, t); err != nil {
		return errs.Wrap(err, "seed tenant")
	}

	p, err := policy.NewPolicy(uuid.New(), 24, 80, 200, 15, money.New(1000))
	if err != nil {
		return errs.Wrap(err, "seed policy")
	}
	if err := repos.Policies.Create(ctx, p); err != nil {
		return errs.Wrap(err, "seed policy")
	}

	cards := []struct {
		name     string
		kind     string
		base     int64
		peak     int64
		hours    []int
		weekend  float64
	}{
		{"Standard Court Pricing", "Basketball", 5000, 7500, []int{18, 19, 20, 21}, 1.1},
		{"Pool Access", "Swimming", 1500, 2000, []int{7, 8, 17, 18}, 1.2},
	}
	for _, c := range cards {
		card, cardErr := pricing.NewRateCard(uuid.New(), c.name, c.kind,
			money.New(c.base), money.New(c.peak), c.hours, c.weekend)
		if cardErr != nil {
			return errs.Wrap(cardErr, "seed rate card")
		}
		if createErr := repos.RateCards.Create(ctx, card); createErr != nil {
			return errs.Wrap(createErr, "seed rate card")
		}
	}

	resources := []struct {
		name     string
		kind     string
		mode     resource.Mode
		capacity int
		rate     int64
	}{
		{"Center Court", "Basketball", resource.ModeExclusive, 1, 5000},
		{"Futsal Pitch A", "Futsal", resource.ModeExclusive, 1, 8000},
		{"Olympic Lane 1", "Swimming", resource.ModeShared, 8, 1500},
		{"Pro Cricket Net", "Cricket", resource.ModeExclusive, 1, 3000},
	}
	for _, rr := range resources {
		res, resErr := resource.NewResource(uuid.New(), tenantID, rr.name, rr.kind,
			rr.mode, rr.capacity, money.New(rr.rate), "")
		if resErr != nil {
			return errs.Wrap(resErr, "seed resource")
		}
		if createErr := repos.Resources.Create(ctx, res); createErr != nil {
			return errs.Wrap(createErr, "seed resource")
		}
	}

	users := []struct {
		name  string
		email string
		role  user.Role
	}{
		{"Alex Player", "alex@demo.com", user.RolePlayer},
		{"Sarah Staff", "sarah@demo.com", user.RoleStaff},
		{"Mike Admin", "mike@demo.com", user.RoleAdmin},
		{"Coach Carter", "coach@demo.com", user.RoleTrainer},
	}
	for _, uu := range users {
		u, userErr := user.NewUser(uuid.New(), uu.name, uu.email, uu.role)
		if userErr != nil {
			return errs.Wrap(userErr, "seed user")
		}
		if createErr := repos.Users.Create(ctx, u); createErr != nil {
			return errs.Wrap(createErr, "seed user")
		}
	}

	return nil
}
