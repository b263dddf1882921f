package request

type CreateRequest struct {
	ClientID      int64  `json:"client_id"`
	ServiceID     int64  `json:"service_id"`
	PreferredDate string `json:"preferred_date"`           // YYYY-MM-DD
	PreferredTime string `json:"preferred_time,omitempty"` // HH:MM, optional
	Notes         string `json:"notes,omitempty"`
}

// ApproveParams carries the staff member's (possibly edited) selection. Zero
// values for client/service fall back to what the request asked for; date and
// time are required because the staff UI always confirms a concrete slot.
type ApproveParams struct {
	ClientID  int64  `json:"client_id,omitempty"`
	ServiceID int64  `json:"service_id,omitempty"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
}
