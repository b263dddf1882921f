package domain

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// AppointmentRequest is a client-submitted booking preference awaiting a
// staff decision. Once the status leaves pending the request is terminal.
// The approving staff member is not stored on the row; it arrives with the
// approval call.
type AppointmentRequest struct {
	ID            int64         `json:"id"`
	ClientID      int64         `json:"client_id" validate:"required"`
	ServiceID     int64         `json:"service_id" validate:"required"`
	PreferredDate time.Time     `json:"preferred_date" validate:"required"`
	PreferredTime string        `json:"preferred_time,omitempty"` // HH:MM, optional
	Notes         string        `json:"notes,omitempty"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsDecided reports whether the request has reached a terminal status.
func (r *AppointmentRequest) IsDecided() bool {
	return r.Status != RequestPending
}
