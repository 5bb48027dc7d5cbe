package resource

import (
	"errors"
	"strings"

	"arenaos/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName     = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong   = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidCapacity       = errors.New("capacity must be at least 1")
	ErrExclusiveCapacity     = errors.New("exclusive resources must have capacity 1")
	ErrNegativeRate          = errors.New("hourly rate cannot be negative")
	ErrEmptyResourceType     = errors.New("resource type cannot be empty")
)

const MaxResourceNameLength = 255

// Resource is one bookable unit: a court, a lane, a pitch. The type
// string links it to a rate card; mode and capacity drive availability.
type Resource struct {
	id         uuid.UUID
	tenantID   uuid.UUID
	name       string
	kind       string
	mode       Mode
	capacity   int
	hourlyRate money.Money
	imageURL   string
}

func NewResource(
	id, tenantID uuid.UUID,
	name, kind string,
	mode Mode,
	capacity int,
	hourlyRate money.Money,
	imageURL string,
) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	if strings.TrimSpace(kind) == "" {
		return nil, ErrEmptyResourceType
	}
	if _, err := NewMode(mode.String()); err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if mode == ModeExclusive && capacity != 1 {
		return nil, ErrExclusiveCapacity
	}
	if hourlyRate.Cents() < 0 {
		return nil, ErrNegativeRate
	}

	return &Resource{
		id:         id,
		tenantID:   tenantID,
		name:       name,
		kind:       strings.TrimSpace(kind),
		mode:       mode,
		capacity:   capacity,
		hourlyRate: hourlyRate,
		imageURL:   imageURL,
	}, nil
}

func (r *Resource) ID() uuid.UUID           { return r.id }
func (r *Resource) TenantID() uuid.UUID     { return r.tenantID }
func (r *Resource) Name() string            { return r.name }
func (r *Resource) Kind() string            { return r.kind }
func (r *Resource) Mode() Mode              { return r.mode }
func (r *Resource) Capacity() int           { return r.capacity }
func (r *Resource) HourlyRate() money.Money { return r.hourlyRate }
func (r *Resource) ImageURL() string        { return r.imageURL }
