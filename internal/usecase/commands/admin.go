package commands

import (
	"context"

	"arenaos/internal/domain/money"
	"arenaos/internal/domain/policy"
	"arenaos/internal/domain/pricing"
	"arenaos/internal/domain/resource"
	"arenaos/internal/domain/tenant"
	"arenaos/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidAdminInput = errs.New("invalid admin input")

type AddResourceParams struct {
	Name            string
	Type            string
	Mode            string
	Capacity        int
	HourlyRateCents int64
	ImageURL        string
}

type AddRateCardParams struct {
	Name            string
	ResourceType    string
	BaseRateCents   int64
	PeakRateCents   int64
	PeakHours       []int
	WeekendModifier float64
}

type UpdatePolicyParams struct {
	CancelWindowHrs    int
	RefundPercentage   int
	GPSRadiusMeters    int
	CheckInWindowMins  int
	NoShowPenaltyCents int64
}

type UpdateBrandingParams struct {
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
	BackgroundURL  string
}

type UpdateIntegrationParams struct {
	APIKey     string
	WebhookURL string
}

type AdminCommands interface {
	AddResource(ctx context.Context, params AddResourceParams) (uuid.UUID, error)
	AddRateCard(ctx context.Context, params AddRateCardParams) (uuid.UUID, error)
	UpdatePolicy(ctx context.Context, params UpdatePolicyParams) error
	UpdateBranding(ctx context.Context, params UpdateBrandingParams) error
	UpdateIntegration(ctx context.Context, params UpdateIntegrationParams) error
}

type adminCommandsImpl struct {
	resources ResourceRepository
	rateCards RateCardRepository
	policies  PolicyRepository
	tenants   TenantRepository
}

func NewAdminCommands(
	resources ResourceRepository,
	rateCards RateCardRepository,
	policies PolicyRepository,
	tenants TenantRepository,
) AdminCommands {
	return &adminCommandsImpl{
		resources: resources,
		rateCards: rateCards,
		policies:  policies,
		tenants:   tenants,
	}
}

func (c *adminCommandsImpl) AddResource(ctx context.Context, params AddResourceParams) (uuid.UUID, error) {
	ten, err := c.tenants.Get(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPersistenceFailed)
	}

	mode, err := resource.NewMode(params.Mode)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAdminInput)
	}
	rate, err := money.NewNonNegative(params.HourlyRateCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAdminInput)
	}

	res, err := resource.NewResource(
		uuid.New(), ten.ID(),
		params.Name, params.Type,
		mode, params.Capacity, rate, params.ImageURL,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAdminInput)
	}

	if err := c.resources.Create(ctx, res); err != nil {
		return uuid.Nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return res.ID(), nil
}

func (c *adminCommandsImpl) AddRateCard(ctx context.Context, params AddRateCardParams) (uuid.UUID, error) {
	base, err := money.NewNonNegative(params.BaseRateCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAdminInput)
	}
	peak, err := money.NewNonNegative(params.PeakRateCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAdminInput)
	}

	card, err := pricing.NewRateCard(
		uuid.New(),
		params.Name, params.ResourceType,
		base, peak,
		params.PeakHours, params.WeekendModifier,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAdminInput)
	}

	if err := c.rateCards.Create(ctx, card); err != nil {
		return uuid.Nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return card.ID(), nil
}

// UpdatePolicy replaces the whole policy. Already-created bookings keep
// their snapshotted totals; only future refunds and check-ins see the
// new values.
func (c *adminCommandsImpl) UpdatePolicy(ctx context.Context, params UpdatePolicyParams) error {
	current, err := c.policies.Get(ctx)
	if err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}

	penalty, err := money.NewNonNegative(params.NoShowPenaltyCents)
	if err != nil {
		return errs.Mark(err, ErrInvalidAdminInput)
	}

	next, err := policy.NewPolicy(
		current.ID(),
		params.CancelWindowHrs,
		params.RefundPercentage,
		params.GPSRadiusMeters,
		params.CheckInWindowMins,
		penalty,
	)
	if err != nil {
		return errs.Mark(err, ErrInvalidAdminInput)
	}

	if err := c.policies.Save(ctx, next); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	return nil
}

func (c *adminCommandsImpl) UpdateBranding(ctx context.Context, params UpdateBrandingParams) error {
	ten, err := c.tenants.Get(ctx)
	if err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}

	ten.UpdateBranding(tenant.Branding{
		PrimaryColor:   params.PrimaryColor,
		SecondaryColor: params.SecondaryColor,
		LogoURL:        params.LogoURL,
		BackgroundURL:  params.BackgroundURL,
	})

	if err := c.tenants.Save(ctx, ten); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	return nil
}

func (c *adminCommandsImpl) UpdateIntegration(ctx context.Context, params UpdateIntegrationParams) error {
	ten, err := c.tenants.Get(ctx)
	if err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}

	ten.UpdateIntegration(tenant.Integration{
		APIKey:     params.APIKey,
		WebhookURL: params.WebhookURL,
	})

	if err := c.tenants.Save(ctx, ten); err != nil {
		return errs.Mark(err, ErrPersistenceFailed)
	}
	return nil
}
