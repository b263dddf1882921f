package appointment

import "belleza/internal/domain"

type CreateAppointmentRequest struct {
	ClientID    *int64 `json:"client_id,omitempty"`
	ClientName  string `json:"client_name,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`
	StaffID     int64  `json:"staff_id"`
	ServiceID   *int64 `json:"service_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	// Status is optional; empty defaults to pending (client self-booking).
	// Staff manual entries typically pass "confirmed".
	Status        string   `json:"status,omitempty"`
	PriceOverride *float64 `json:"price_override,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// SlotCheck is the availability checker's answer for one (staff, instant)
// pair. When the slot is taken, Conflicting identifies the blocking
// appointment.
type SlotCheck struct {
	Available   bool                `json:"available"`
	Conflicting *domain.Appointment `json:"conflicting_appointment,omitempty"`
}
