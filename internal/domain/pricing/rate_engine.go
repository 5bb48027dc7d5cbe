package pricing

import (
	"arenaos/internal/domain/money"
	"arenaos/internal/domain/resource"
)

// CardLookup resolves the rate card for a resource type. At most one
// card per type is ever consulted; returning nil means no override and
// the resource's own hourly rate applies.
type CardLookup interface {
	CardForType(resourceType string) *RateCard
}

// RateEngine prices a booking request. It is a pure calculation: no
// persistence, no error paths. An unmatched resource type falls back to
// the resource's base rate by policy, not by failure.
type RateEngine struct {
	cards CardLookup
}

func NewRateEngine(cards CardLookup) *RateEngine {
	return &RateEngine{cards: cards}
}

// Price sums the per-hour unit rate over [startHour, startHour+duration)
// and multiplies by quantity. The weekend modifier on rate cards is
// intentionally not applied here; it is reserved for a future pricing
// revision and only edited through the admin surface today.
func (e *RateEngine) Price(res *resource.Resource, startHour, duration, quantity int) money.Money {
	if duration < 1 {
		duration = 1
	}
	if quantity < 1 {
		quantity = 1
	}

	var card *RateCard
	if e.cards != nil {
		card = e.cards.CardForType(res.Kind())
	}

	total := money.New(0)
	for h := startHour; h < startHour+duration; h++ {
		rate := res.HourlyRate()
		if card != nil {
			rate = card.RateFor(h % 24)
		}
		total = total.Add(rate)
	}

	return total.Mul(int64(quantity))
}

// StaticCardSet is a CardLookup over a fixed slice, resolving the first
// card whose resource type matches. Repositories hand freshly-loaded
// cards to the engine through this adapter.
type StaticCardSet []*RateCard

func (s StaticCardSet) CardForType(resourceType string) *RateCard {
	for _, c := range s {
		if c.ResourceType() == resourceType {
			return c
		}
	}
	return nil
}
