package request

type AddResourceRequest struct {
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type" binding:"required"`
	Mode            string `json:"mode" binding:"required"`
	Capacity        int    `json:"capacity" binding:"required,min=1"`
	HourlyRateCents int64  `json:"hourly_rate_cents" binding:"min=0"`
	ImageURL        string `json:"image_url,omitempty"`
}

type AddRateCardRequest struct {
	Name            string  `json:"name" binding:"required"`
	ResourceType    string  `json:"resource_type" binding:"required"`
	BaseRateCents   int64   `json:"base_rate_cents" binding:"min=0"`
	PeakRateCents   int64   `json:"peak_rate_cents" binding:"min=0"`
	PeakHours       []int   `json:"peak_hours"`
	WeekendModifier float64 `json:"weekend_modifier" binding:"required,gt=0"`
}

type UpdatePolicyRequest struct {
	CancelWindowHrs    int   `json:"cancel_window_hrs" binding:"min=0"`
	RefundPercentage   int   `json:"refund_percentage" binding:"min=0,max=100"`
	GPSRadiusMeters    int   `json:"gps_radius_meters" binding:"min=0"`
	CheckInWindowMins  int   `json:"check_in_window_mins" binding:"min=0"`
	NoShowPenaltyCents int64 `json:"no_show_penalty_cents" binding:"min=0"`
}

type UpdateBrandingRequest struct {
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	BackgroundURL  string `json:"background_url,omitempty"`
}

type UpdateIntegrationRequest struct {
	APIKey     string `json:"api_key,omitempty"`
	WebhookURL string `json:"webhook_url,omitempty"`
}
