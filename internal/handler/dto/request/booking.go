package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartHour  int       `json:"start_hour" binding:"min=0,max=23"`
	Duration   int       `json:"duration" binding:"required,min=1"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

// ParseDate accepts the wire date as a calendar day.
func (r CreateBookingRequest) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}

// CheckInRequest carries the caller's observed position. Desk roles may
// omit it for a manual check-in.
type CheckInRequest struct {
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

func (r CheckInRequest) HasLocation() bool {
	return r.Lat != nil && r.Lng != nil
}
