package domain

type SubmitReportRequest struct {
	// No "required" on coordinates: zero is inside both valid ranges
	// (equator, prime meridian) and the range rules already run on it.
	Lat         float64  `json:"lat" validate:"lat"`
	Lng         float64  `json:"lng" validate:"lng"`
	Message     string   `json:"message" validate:"omitempty,max=500"`
	IsEmergency bool     `json:"is_emergency"`
	ReporterID  string   `json:"reporter_id" validate:"required"`
	ReporterLat *float64 `json:"reporter_lat" validate:"omitempty,lat"`
	ReporterLng *float64 `json:"reporter_lng" validate:"omitempty,lng"`
}

type CreateAlertRequest struct {
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
	RadiusKM float64 `json:"radius_km" validate:"required,radius_km"`
	Message  string  `json:"message" validate:"omitempty,max=500"`
	OwnerID  string  `json:"owner_id" validate:"required"`
	Contact  string  `json:"contact" validate:"required,email"`
	UsePush  bool    `json:"use_push"`
	UseEmail bool    `json:"use_email"`
}

type RegisterSubscriptionRequest struct {
	OwnerID  string `json:"owner_id" validate:"required"`
	Endpoint string `json:"endpoint" validate:"required,url"`
}

type VerifyAlertRequest struct {
	Token string `json:"token" validate:"required"`
}

type SubmitFeedbackRequest struct {
	SenderID string `json:"sender_id" validate:"required"`
	Message  string `json:"message" validate:"required,max=2000"`
}

type ListReportsResponse struct {
	Reports []Report `json:"reports"`
	Total   int64    `json:"total"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
}

type ListAlertsResponse struct {
	Alerts []Alert `json:"alerts"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

// EmailJob is one queued outbound email, produced by the notification
// dispatcher and drained by the email courier.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
