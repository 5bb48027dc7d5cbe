package repository

import (
	"context"
	"errors"

	"arenaos/internal/domain/tenant"
	"arenaos/internal/infra"
	"arenaos/internal/infra/store"
	"arenaos/internal/pkg/geo"

	"github.com/google/uuid"
)

type TenantRepository struct {
	store *store.Store
}

func NewTenantRepository(s *store.Store) *TenantRepository {
	return &TenantRepository{store: s}
}

func (r *TenantRepository) Get(_ context.Context) (*tenant.Tenant, error) {
	recs, err := r.store.List(tableTenants, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load tenant", err)
	}
	if len(recs) == 0 {
		return nil, infra.WrapRepoErr("tenant not configured", store.ErrRecordNotFound, infra.KindNotFound)
	}
	return recordToTenant(recs[0])
}

func (r *TenantRepository) Create(_ context.Context, t *tenant.Tenant) error {
	if err := r.store.Insert(tableTenants, tenantToRecord(t)); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return infra.WrapRepoErr("tenant already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create tenant", err)
	}
	return nil
}

func (r *TenantRepository) Save(_ context.Context, t *tenant.Tenant) error {
	if _, err := r.store.Update(tableTenants, t.ID().String(), tenantToRecord(t)); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to save tenant", err)
	}
	return nil
}

func tenantToRecord(t *tenant.Tenant) store.Record {
	return store.Record{
		"id":              t.ID().String(),
		"name":            t.Name(),
		"currency":        t.Currency(),
		"lat":             t.Location().Lat,
		"lng":             t.Location().Lng,
		"address":         t.Address(),
		"primary_color":   t.Branding().PrimaryColor,
		"secondary_color": t.Branding().SecondaryColor,
		"logo_url":        t.Branding().LogoURL,
		"background_url":  t.Branding().BackgroundURL,
		"api_key":         t.Integration().APIKey,
		"webhook_url":     t.Integration().WebhookURL,
	}
}

func recordToTenant(rec store.Record) (*tenant.Tenant, error) {
	id, err := uuid.Parse(asString(rec, "id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed tenant id", err)
	}

	t, err := tenant.NewTenant(
		id,
		asString(rec, "name"),
		asString(rec, "currency"),
		geo.Point{Lat: asFloat(rec, "lat"), Lng: asFloat(rec, "lng")},
		asString(rec, "address"),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed tenant record", err)
	}
	t.UpdateBranding(tenant.Branding{
		PrimaryColor:   asString(rec, "primary_color"),
		SecondaryColor: asString(rec, "secondary_color"),
		LogoURL:        asString(rec, "logo_url"),
		BackgroundURL:  asString(rec, "background_url"),
	})
	t.UpdateIntegration(tenant.Integration{
		APIKey:     asString(rec, "api_key"),
		WebhookURL: asString(rec, "webhook_url"),
	})
	return t, nil
}
