package repository

import (
	"context"
	"errors"

	"arenaos/internal/domain/money"
	"arenaos/internal/domain/policy"
	"arenaos/internal/infra"
	"arenaos/internal/infra/store"

	"github.com/google/uuid"
)

type PolicyRepository struct {
	store *store.Store
}

func NewPolicyRepository(s *store.Store) *PolicyRepository {
	return &PolicyRepository{store: s}
}

// Get returns the tenant's policy. There is exactly one per tenant in
// this design; the first record wins.
func (r *PolicyRepository) Get(_ context.Context) (*policy.Policy, error) {
	recs, err := r.store.List(tablePolicies, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load policy", err)
	}
	if len(recs) == 0 {
		return nil, infra.WrapRepoErr("policy not configured", store.ErrRecordNotFound, infra.KindNotFound)
	}
	return recordToPolicy(recs[0])
}

func (r *PolicyRepository) Create(_ context.Context, p *policy.Policy) error {
	if err := r.store.Insert(tablePolicies, policyToRecord(p)); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return infra.WrapRepoErr("policy already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create policy", err)
	}
	return nil
}

func (r *PolicyRepository) Save(_ context.Context, p *policy.Policy) error {
	rec := policyToRecord(p)
	if _, err := r.store.Update(tablePolicies, p.ID().String(), rec); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return infra.WrapRepoErr("policy not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to save policy", err)
	}
	return nil
}

func policyToRecord(p *policy.Policy) store.Record {
	return store.Record{
		"id":                    p.ID().String(),
		"cancel_window_hrs":     p.CancelWindowHrs(),
		"refund_percentage":     p.RefundPercentage(),
		"gps_radius_meters":     p.GPSRadiusMeters(),
		"check_in_window_mins":  p.CheckInWindowMins(),
		"no_show_penalty_cents": p.NoShowPenalty().Cents(),
	}
}

func recordToPolicy(rec store.Record) (*policy.Policy, error) {
	id, err := uuid.Parse(asString(rec, "id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed policy id", err)
	}

	p, err := policy.NewPolicy(
		id,
		asInt(rec, "cancel_window_hrs"),
		asInt(rec, "refund_percentage"),
		asInt(rec, "gps_radius_meters"),
		asInt(rec, "check_in_window_mins"),
		money.New(asInt64(rec, "no_show_penalty_cents")),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed policy record", err)
	}
	return p, nil
}
