//go:build unit

package commands_test

import (
	"context"
	"testing"

	"arenaos/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddResource(t *testing.T) {
	env := newCommandEnv(t)
	ctx := context.Background()

	id, err := env.admin.AddResource(ctx, commands.AddResourceParams{
		Name:            "Court 2",
		Type:            "Tennis",
		Mode:            "EXCLUSIVE",
		Capacity:        1,
		HourlyRateCents: 3000,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	res, err := env.resources.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Court 2", res.Name())
	assert.Equal(t, int64(3000), res.HourlyRate().Cents())

	cases := map[string]commands.AddResourceParams{
		"unknown mode":              {Name: "X", Type: "Tennis", Mode: "POOLED", Capacity: 1, HourlyRateCents: 100},
		"negative rate":             {Name: "X", Type: "Tennis", Mode: "EXCLUSIVE", Capacity: 1, HourlyRateCents: -1},
		"empty name":                {Name: "  ", Type: "Tennis", Mode: "EXCLUSIVE", Capacity: 1, HourlyRateCents: 100},
		"exclusive with capacity 4": {Name: "X", Type: "Tennis", Mode: "EXCLUSIVE", Capacity: 4, HourlyRateCents: 100},
		"shared with zero capacity": {Name: "X", Type: "Swimming", Mode: "SHARED", Capacity: 0, HourlyRateCents: 100},
	}
	for name, params := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.admin.AddResource(ctx, params)
			assert.ErrorIs(t, err, commands.ErrInvalidAdminInput)
		})
	}
}

func TestAddRateCard(t *testing.T) {
	env := newCommandEnv(t)
	ctx := context.Background()

	id, err := env.admin.AddRateCard(ctx, commands.AddRateCardParams{
		Name:            "Tennis Standard",
		ResourceType:    "Tennis",
		BaseRateCents:   3000,
		PeakRateCents:   4500,
		PeakHours:       []int{18, 19},
		WeekendModifier: 1.2,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	t.Run("peak hour out of range", func(t *testing.T) {
		_, err := env.admin.AddRateCard(ctx, commands.AddRateCardParams{
			Name:            "Broken",
			ResourceType:    "Tennis",
			BaseRateCents:   3000,
			PeakRateCents:   4500,
			PeakHours:       []int{25},
			WeekendModifier: 1.0,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidAdminInput)
	})
}

func TestUpdatePolicy(t *testing.T) {
	env := newCommandEnv(t)
	ctx := context.Background()

	err := env.admin.UpdatePolicy(ctx, commands.UpdatePolicyParams{
		CancelWindowHrs:    48,
		RefundPercentage:   50,
		GPSRadiusMeters:    500,
		CheckInWindowMins:  30,
		NoShowPenaltyCents: 2000,
	})
	require.NoError(t, err)

	pol, err := env.policies.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 48, pol.CancelWindowHrs())
	assert.Equal(t, 50, pol.RefundPercentage())
	assert.Equal(t, 500, pol.GPSRadiusMeters())
	assert.Equal(t, 30, pol.CheckInWindowMins())

	t.Run("refund percentage above 100", func(t *testing.T) {
		err := env.admin.UpdatePolicy(ctx, commands.UpdatePolicyParams{
			CancelWindowHrs:  24,
			RefundPercentage: 120,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidAdminInput)
	})
}

func TestUpdateTenantSettings(t *testing.T) {
	env := newCommandEnv(t)
	ctx := context.Background()

	require.NoError(t, env.admin.UpdateBranding(ctx, commands.UpdateBrandingParams{
		PrimaryColor:   "#1a2b3c",
		SecondaryColor: "#ffffff",
		LogoURL:        "https://cdn.example.com/logo.png",
	}))
	require.NoError(t, env.admin.UpdateIntegration(ctx, commands.UpdateIntegrationParams{
		APIKey:     "key-123",
		WebhookURL: "https://hooks.example.com/arena",
	}))

	ten, err := env.tenants.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#1a2b3c", ten.Branding().PrimaryColor)
	assert.Equal(t, "https://hooks.example.com/arena", ten.Integration().WebhookURL)
}
