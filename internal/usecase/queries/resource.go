package queries

import (
	"context"

	"arenaos/internal/domain/policy"
	"arenaos/internal/domain/resource"
	"arenaos/internal/domain/tenant"
	"arenaos/internal/infra"
	"arenaos/internal/pkg/errs"

	"github.com/google/uuid"
)

type PolicyReadRepo interface {
	Get(ctx context.Context) (*policy.Policy, error)
}

type TenantReadRepo interface {
	Get(ctx context.Context) (*tenant.Tenant, error)
}

type VenueQueries interface {
	ListResources(ctx context.Context) ([]*ResourceView, error)
	GetResource(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	GetPolicy(ctx context.Context) (*PolicyView, error)
	GetTenant(ctx context.Context) (*TenantView, error)
}

type venueQueriesImpl struct {
	resources ResourceReadRepo
	policies  PolicyReadRepo
	tenants   TenantReadRepo
}

func NewVenueQueries(resources ResourceReadRepo, policies PolicyReadRepo, tenants TenantReadRepo) VenueQueries {
	return &venueQueriesImpl{resources: resources, policies: policies, tenants: tenants}
}

func (q *venueQueriesImpl) ListResources(ctx context.Context) ([]*ResourceView, error) {
	resources, err := q.resources.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}
	out := make([]*ResourceView, len(resources))
	for i, res := range resources {
		out[i] = viewFromResource(res)
	}
	return out, nil
}

func (q *venueQueriesImpl) GetResource(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	res, err := q.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrResourceNotFound
		}
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}
	return viewFromResource(res), nil
}

func (q *venueQueriesImpl) GetPolicy(ctx context.Context) (*PolicyView, error) {
	p, err := q.policies.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}
	return &PolicyView{
		ID:                 p.ID(),
		CancelWindowHrs:    p.CancelWindowHrs(),
		RefundPercentage:   p.RefundPercentage(),
		GPSRadiusMeters:    p.GPSRadiusMeters(),
		CheckInWindowMins:  p.CheckInWindowMins(),
		NoShowPenaltyCents: p.NoShowPenalty().Cents(),
	}, nil
}

func (q *venueQueriesImpl) GetTenant(ctx context.Context) (*TenantView, error) {
	t, err := q.tenants.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistenceUnavailable)
	}
	return &TenantView{
		ID:             t.ID(),
		Name:           t.Name(),
		Currency:       t.Currency(),
		Lat:            t.Location().Lat,
		Lng:            t.Location().Lng,
		Address:        t.Address(),
		PrimaryColor:   t.Branding().PrimaryColor,
		SecondaryColor: t.Branding().SecondaryColor,
		LogoURL:        t.Branding().LogoURL,
		BackgroundURL:  t.Branding().BackgroundURL,
	}, nil
}

func viewFromResource(res *resource.Resource) *ResourceView {
	return &ResourceView{
		ID:              res.ID(),
		TenantID:        res.TenantID(),
		Name:            res.Name(),
		Type:            res.Kind(),
		Mode:            res.Mode().String(),
		Capacity:        res.Capacity(),
		HourlyRateCents: res.HourlyRate().Cents(),
		ImageURL:        res.ImageURL(),
	}
}
