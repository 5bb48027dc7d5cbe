package repository

import (
	"context"
	"errors"

	"arenaos/internal/domain/money"
	"arenaos/internal/domain/resource"
	"arenaos/internal/infra"
	"arenaos/internal/infra/store"

	"github.com/google/uuid"
)

type ResourceRepository struct {
	store *store.Store
}

func NewResourceRepository(s *store.Store) *ResourceRepository {
	return &ResourceRepository{store: s}
}

func (r *ResourceRepository) FindByID(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	rec, err := r.store.Get(tableResources, id.String())
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}
	return recordToResource(rec)
}

func (r *ResourceRepository) List(_ context.Context) ([]*resource.Resource, error) {
	recs, err := r.store.List(tableResources, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	out := make([]*resource.Resource, 0, len(recs))
	for _, rec := range recs {
		res, convErr := recordToResource(rec)
		if convErr != nil {
			return nil, convErr
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ResourceRepository) Create(_ context.Context, res *resource.Resource) error {
	if err := r.store.Insert(tableResources, resourceToRecord(res)); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return infra.WrapRepoErr("resource already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create resource", err)
	}
	return nil
}

func resourceToRecord(res *resource.Resource) store.Record {
	return store.Record{
		"id":                res.ID().String(),
		"tenant_id":         res.TenantID().String(),
		"name":              res.Name(),
		"type":              res.Kind(),
		"mode":              res.Mode().String(),
		"capacity":          res.Capacity(),
		"hourly_rate_cents": res.HourlyRate().Cents(),
		"image_url":         res.ImageURL(),
	}
}

func recordToResource(rec store.Record) (*resource.Resource, error) {
	id, err := uuid.Parse(asString(rec, "id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed resource id", err)
	}
	tenantID, err := uuid.Parse(asString(rec, "tenant_id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed tenant id", err)
	}
	mode, err := resource.NewMode(asString(rec, "mode"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed resource mode", err)
	}

	res, err := resource.NewResource(
		id,
		tenantID,
		asString(rec, "name"),
		asString(rec, "type"),
		mode,
		asInt(rec, "capacity"),
		money.New(asInt64(rec, "hourly_rate_cents")),
		asString(rec, "image_url"),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed resource record", err)
	}
	return res, nil
}
