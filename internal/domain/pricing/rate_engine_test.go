//go:build unit

package pricing_test

import (
	"testing"

	"arenaos/internal/domain/money"
	"arenaos/internal/domain/pricing"
	"arenaos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func basketballCard(t *testing.T) *pricing.RateCard {
	t.Helper()
	card, err := pricing.NewRateCard(
		uuid.New(),
		"Basketball Standard", "Basketball",
		money.New(5000), money.New(7500),
		[]int{18, 19, 20, 21},
		1.1,
	)
	require.NoError(t, err)
	return card
}

func TestRateEnginePrice(t *testing.T) {
	res := builder.NewResourceBuilder().BuildDomain()

	engine := pricing.NewRateEngine(pricing.StaticCardSet{basketballCard(t)})

	cases := []struct {
		name      string
		startHour int
		duration  int
		quantity  int
		wantCents int64
	}{
		{"off-peak hour", 10, 1, 1, 5000},
		{"peak hour", 19, 1, 1, 7500},
		{"off-peak into peak", 17, 2, 1, 12500},
		{"all peak block", 18, 4, 1, 30000},
		{"quantity multiplies", 10, 1, 3, 15000},
		{"two hours two units", 17, 2, 2, 25000},
		{"degenerate duration treated as one hour", 10, 0, 1, 5000},
		{"degenerate quantity treated as one unit", 10, 1, 0, 5000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := engine.Price(res, c.startHour, c.duration, c.quantity)
			require.Equal(t, c.wantCents, got.Cents())
		})
	}
}

func TestRateEngineFallsBackToResourceRate(t *testing.T) {
	res := builder.NewResourceBuilder().With(func(b *builder.ResourceBuilder) {
		b.Type = "Cricket"
		b.HourlyRateCents = 2500
	}).BuildDomain()

	t.Run("no card for type", func(t *testing.T) {
		engine := pricing.NewRateEngine(pricing.StaticCardSet{basketballCard(t)})
		require.Equal(t, int64(5000), engine.Price(res, 19, 2, 1).Cents())
	})

	t.Run("nil lookup", func(t *testing.T) {
		engine := pricing.NewRateEngine(nil)
		require.Equal(t, int64(2500), engine.Price(res, 10, 1, 1).Cents())
	})
}

func TestRateCardRateFor(t *testing.T) {
	card := basketballCard(t)

	require.Equal(t, int64(5000), card.RateFor(9).Cents())
	require.Equal(t, int64(7500), card.RateFor(18).Cents())
	require.Equal(t, int64(7500), card.RateFor(21).Cents())
	require.Equal(t, int64(5000), card.RateFor(22).Cents())
}

func TestNewRateCardValidation(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*pricing.RateCard, error)
		errIs error
	}{
		{
			name: "empty name",
			build: func() (*pricing.RateCard, error) {
				return pricing.NewRateCard(uuid.New(), "  ", "Basketball", money.New(1), money.New(2), nil, 1.0)
			},
			errIs: pricing.ErrEmptyCardName,
		},
		{
			name: "empty resource type",
			build: func() (*pricing.RateCard, error) {
				return pricing.NewRateCard(uuid.New(), "Card", "", money.New(1), money.New(2), nil, 1.0)
			},
			errIs: pricing.ErrEmptyCardType,
		},
		{
			name: "negative rate",
			build: func() (*pricing.RateCard, error) {
				return pricing.NewRateCard(uuid.New(), "Card", "Basketball", money.New(-1), money.New(2), nil, 1.0)
			},
			errIs: pricing.ErrNegativeCardRate,
		},
		{
			name: "peak hour out of range",
			build: func() (*pricing.RateCard, error) {
				return pricing.NewRateCard(uuid.New(), "Card", "Basketball", money.New(1), money.New(2), []int{24}, 1.0)
			},
			errIs: pricing.ErrInvalidPeakHour,
		},
		{
			name: "non-positive weekend modifier",
			build: func() (*pricing.RateCard, error) {
				return pricing.NewRateCard(uuid.New(), "Card", "Basketball", money.New(1), money.New(2), nil, 0)
			},
			errIs: pricing.ErrInvalidWeekendRate,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			card, err := c.build()
			require.Nil(t, card)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
