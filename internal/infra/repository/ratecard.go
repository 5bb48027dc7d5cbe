package repository

import (
	"context"
	"errors"

	"arenaos/internal/domain/money"
	"arenaos/internal/domain/pricing"
	"arenaos/internal/infra"
	"arenaos/internal/infra/store"

	"github.com/google/uuid"
)

type RateCardRepository struct {
	store *store.Store
}

func NewRateCardRepository(s *store.Store) *RateCardRepository {
	return &RateCardRepository{store: s}
}

// List returns all cards in insertion order. The rate engine resolves
// the first card per resource type, so order is the priority rule.
func (r *RateCardRepository) List(_ context.Context) ([]*pricing.RateCard, error) {
	recs, err := r.store.List(tableRateCards, nil)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate cards", err)
	}
	out := make([]*pricing.RateCard, 0, len(recs))
	for _, rec := range recs {
		card, convErr := recordToRateCard(rec)
		if convErr != nil {
			return nil, convErr
		}
		out = append(out, card)
	}
	return out, nil
}

func (r *RateCardRepository) Create(_ context.Context, card *pricing.RateCard) error {
	if err := r.store.Insert(tableRateCards, rateCardToRecord(card)); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return infra.WrapRepoErr("rate card already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create rate card", err)
	}
	return nil
}

func rateCardToRecord(card *pricing.RateCard) store.Record {
	return store.Record{
		"id":               card.ID().String(),
		"name":             card.Name(),
		"resource_type":    card.ResourceType(),
		"base_rate_cents":  card.BaseRate().Cents(),
		"peak_rate_cents":  card.PeakRate().Cents(),
		"peak_hours":       card.PeakHours(),
		"weekend_modifier": card.WeekendModifier(),
	}
}

func recordToRateCard(rec store.Record) (*pricing.RateCard, error) {
	id, err := uuid.Parse(asString(rec, "id"))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed rate card id", err)
	}

	card, err := pricing.NewRateCard(
		id,
		asString(rec, "name"),
		asString(rec, "resource_type"),
		money.New(asInt64(rec, "base_rate_cents")),
		money.New(asInt64(rec, "peak_rate_cents")),
		asIntSlice(rec, "peak_hours"),
		asFloat(rec, "weekend_modifier"),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("malformed rate card record", err)
	}
	return card, nil
}
