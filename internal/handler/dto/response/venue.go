package response

import (
	"arenaos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Mode            string    `json:"mode"`
	Capacity        int       `json:"capacity"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	ImageURL        string    `json:"image_url,omitempty"`
}

type PolicyResponse struct {
	CancelWindowHrs    int   `json:"cancel_window_hrs"`
	RefundPercentage   int   `json:"refund_percentage"`
	GPSRadiusMeters    int   `json:"gps_radius_meters"`
	CheckInWindowMins  int   `json:"check_in_window_mins"`
	NoShowPenaltyCents int64 `json:"no_show_penalty_cents"`
}

type TenantResponse struct {
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

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromResourceView(rm *queries.ResourceView) *ResourceResponse {
	var resp ResourceResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromResourceViews(rms []*queries.ResourceView) []*ResourceResponse {
	out := make([]*ResourceResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromResourceView(rm)
	}
	return out
}

func FromPolicyView(rm *queries.PolicyView) *PolicyResponse {
	var resp PolicyResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromTenantView(rm *queries.TenantView) *TenantResponse {
	var resp TenantResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
