package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID               uuid.UUID  `json:"id"`
	TenantID         uuid.UUID  `json:"tenant_id"`
	ResourceID       uuid.UUID  `json:"resource_id"`
	ResourceName     string     `json:"resource_name"`
	UserID           uuid.UUID  `json:"user_id"`
	Date             string     `json:"date"`
	StartHour        int        `json:"start_hour"`
	Duration         int        `json:"duration"`
	Quantity         int        `json:"quantity"`
	Status           string     `json:"status"`
	TotalAmountCents int64      `json:"total_amount_cents"`
	EntryPass        string     `json:"entry_pass"`
	PaymentRef       string     `json:"payment_ref"`
	BatchRef         string     `json:"batch_ref"`
	CheckInAt        *time.Time `json:"check_in_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type TransactionView struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"booking_id"`
	UserID      uuid.UUID `json:"user_id"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference"`
}

type ResourceView struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Mode            string    `json:"mode"`
	Capacity        int       `json:"capacity"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	ImageURL        string    `json:"image_url,omitempty"`
}

type HourAvailability struct {
	Hour      int `json:"hour"`
	Remaining int `json:"remaining"`
}

type AvailabilityView struct {
	ResourceID uuid.UUID          `json:"resource_id"`
	Date       string             `json:"date"`
	Hours      []HourAvailability `json:"hours"`
}

type PolicyView struct {
	ID                 uuid.UUID `json:"id"`
	CancelWindowHrs    int       `json:"cancel_window_hrs"`
	RefundPercentage   int       `json:"refund_percentage"`
	GPSRadiusMeters    int       `json:"gps_radius_meters"`
	CheckInWindowMins  int       `json:"check_in_window_mins"`
	NoShowPenaltyCents int64     `json:"no_show_penalty_cents"`
}

type TenantView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Currency       string    `json:"currency"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	Address        string    `json:"address"`
	PrimaryColor   string    `json:"primary_color,omitempty"`
	SecondaryColor string    `json:"secondary_color,omitempty"`
	LogoURL        string    `json:"logo_url,omitempty"`
	BackgroundURL  string    `json:"background_url,omitempty"`
}
