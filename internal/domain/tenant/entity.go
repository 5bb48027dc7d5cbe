package tenant

import (
	"errors"
	"strings"

	"arenaos/internal/pkg/geo"

	"github.com/google/uuid"
)

var (
	ErrEmptyTenantName = errors.New("tenant name cannot be empty")
	ErrEmptyCurrency   = errors.New("tenant currency cannot be empty")
)

// Branding is display metadata the admin surface may edit freely.
type Branding struct {
	PrimaryColor   string
	SecondaryColor string
	LogoURL        string
	BackgroundURL  string
}

// Integration carries the external payment collaborator's settings. The
// core never calls the gateway; it only stores where confirmations come
// from.
type Integration struct {
	APIKey     string
	WebhookURL string
}

// Tenant is the venue operator. Its location anchors geofenced
// check-in.
type Tenant struct {
	id          uuid.UUID
	name        string
	currency    string
	location    geo.Point
	address     string
	branding    Branding
	integration Integration
}

func NewTenant(id uuid.UUID, name, currency string, location geo.Point, address string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTenantName
	}
	if strings.TrimSpace(currency) == "" {
		return nil, ErrEmptyCurrency
	}
	return &Tenant{
		id:       id,
		name:     name,
		currency: currency,
		location: location,
		address:  address,
	}, nil
}

// DistanceMeters returns how far the observed point is from the venue.
func (t *Tenant) DistanceMeters(observed geo.Point) float64 {
	return geo.DistanceMeters(t.location, observed)
}

func (t *Tenant) UpdateBranding(b Branding) {
	t.branding = b
}

func (t *Tenant) UpdateIntegration(i Integration) {
	t.integration = i
}

func (t *Tenant) ID() uuid.UUID            { return t.id }
func (t *Tenant) Name() string             { return t.name }
func (t *Tenant) Currency() string         { return t.currency }
func (t *Tenant) Location() geo.Point      { return t.location }
func (t *Tenant) Address() string          { return t.address }
func (t *Tenant) Branding() Branding       { return t.branding }
func (t *Tenant) Integration() Integration { return t.integration }
