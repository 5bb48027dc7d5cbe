//go:build unit

package builder

import (
	"arenaos/internal/domain/money"
	"arenaos/internal/domain/resource"
	"arenaos/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	Name            string
	Type            string
	Mode            resource.Mode
	Capacity        int
	HourlyRateCents int64
	ImageURL        string
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:              uuid.New(),
		TenantID:        uuid.New(),
		Name:            "Center Court",
		Type:            "Basketball",
		Mode:            resource.ModeExclusive,
		Capacity:        1,
		HourlyRateCents: 5000,
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

// Shared flips the builder to a capacity-8 swimming lane, the second
// seeded archetype.
func (r *ResourceBuilder) Shared() *ResourceBuilder {
	r.Name = "Olympic Lane 1"
	r.Type = "Swimming"
	r.Mode = resource.ModeShared
	r.Capacity = 8
	r.HourlyRateCents = 1500
	return r
}

func (r *ResourceBuilder) BuildDomain() *resource.Resource {
	res, err := resource.NewResource(
		r.ID, r.TenantID,
		r.Name, r.Type,
		r.Mode, r.Capacity,
		money.New(r.HourlyRateCents),
		r.ImageURL,
	)
	if err != nil {
		panic(err)
	}
	return res
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	return &queries.ResourceView{
		ID:              r.ID,
		TenantID:        r.TenantID,
		Name:            r.Name,
		Type:            r.Type,
		Mode:            r.Mode.String(),
		Capacity:        r.Capacity,
		HourlyRateCents: r.HourlyRateCents,
		ImageURL:        r.ImageURL,
	}
}
