package response

import (
	"time"

	"arenaos/internal/usecase/commands"
	"arenaos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               uuid.UUID  `json:"id"`
	ResourceID       uuid.UUID  `json:"resource_id"`
	ResourceName     string     `json:"resource_name"`
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

type CreateBookingResponse struct {
	BatchRef         string             `json:"batch_ref"`
	Bookings         []*BookingResponse `json:"bookings"`
	TotalAmountCents int64              `json:"total_amount_cents"`
}

type CancelBookingResponse struct {
	RefundCents int64 `json:"refund_cents"`
}

type AvailabilityResponse struct {
	ResourceID uuid.UUID          `json:"resource_id"`
	Date       string             `json:"date"`
	Hours      []HourAvailability `json:"hours"`
}

type HourAvailability struct {
	Hour      int `json:"hour"`
	Remaining int `json:"remaining"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCreateBookingResult(result *commands.CreateBookingResult) *CreateBookingResponse {
	bookings := make([]*BookingResponse, len(result.Bookings))
	var total int64
	for i, view := range result.Bookings {
		bookings[i] = FromBookingView(view)
		total += view.TotalAmountCents
	}
	return &CreateBookingResponse{
		BatchRef:         result.BatchRef,
		Bookings:         bookings,
		TotalAmountCents: total,
	}
}

func FromAvailabilityView(view *queries.AvailabilityView) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
