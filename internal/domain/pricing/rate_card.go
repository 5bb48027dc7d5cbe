package pricing

import (
	"errors"
	"strings"

	"arenaos/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyCardName      = errors.New("rate card name cannot be empty")
	ErrEmptyCardType      = errors.New("rate card resource type cannot be empty")
	ErrNegativeCardRate   = errors.New("rate card rates cannot be negative")
	ErrInvalidPeakHour    = errors.New("peak hours must be within 0-23")
	ErrInvalidWeekendRate = errors.New("weekend modifier must be positive")
)

// RateCard is a pricing override scoped to one resource type. Peak
// hours bill at the peak rate, every other hour at the card's base
// rate. The weekend modifier is carried for admin editing but is not
// applied when pricing; see RateEngine.
type RateCard struct {
	id              uuid.UUID
	name            string
	resourceType    string
	baseRate        money.Money
	peakRate        money.Money
	peakHours       map[int]struct{}
	weekendModifier float64
}

func NewRateCard(
	id uuid.UUID,
	name, resourceType string,
	baseRate, peakRate money.Money,
	peakHours []int,
	weekendModifier float64,
) (*RateCard, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCardName
	}
	resourceType = strings.TrimSpace(resourceType)
	if resourceType == "" {
		return nil, ErrEmptyCardType
	}
	if baseRate.Cents() < 0 || peakRate.Cents() < 0 {
		return nil, ErrNegativeCardRate
	}
	if weekendModifier <= 0 {
		return nil, ErrInvalidWeekendRate
	}

	hours := make(map[int]struct{}, len(peakHours))
	for _, h := range peakHours {
		if h < 0 || h > 23 {
			return nil, ErrInvalidPeakHour
		}
		hours[h] = struct{}{}
	}

	return &RateCard{
		id:              id,
		name:            name,
		resourceType:    resourceType,
		baseRate:        baseRate,
		peakRate:        peakRate,
		peakHours:       hours,
		weekendModifier: weekendModifier,
	}, nil
}

func (c *RateCard) ID() uuid.UUID            { return c.id }
func (c *RateCard) Name() string             { return c.name }
func (c *RateCard) ResourceType() string     { return c.resourceType }
func (c *RateCard) BaseRate() money.Money    { return c.baseRate }
func (c *RateCard) PeakRate() money.Money    { return c.peakRate }
func (c *RateCard) WeekendModifier() float64 { return c.weekendModifier }

func (c *RateCard) IsPeakHour(hour int) bool {
	_, ok := c.peakHours[hour]
	return ok
}

func (c *RateCard) PeakHours() []int {
	hours := make([]int, 0, len(c.peakHours))
	for h := range c.peakHours {
		hours = append(hours, h)
	}
	return hours
}

// RateFor returns the unit rate billed for a single hour under this card.
func (c *RateCard) RateFor(hour int) money.Money {
	if c.IsPeakHour(hour) {
		return c.peakRate
	}
	return c.baseRate
}
