package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// Appointment binds a staff member, optionally a client and a service,
// to a single point in time. Walk-in ("sporadic") clients have no account:
// ClientID is nil and ClientName/ClientPhone carry free text instead.
// Event appointments created by staff have no service: ServiceID is nil
// and Title carries free text.
type Appointment struct {
	ID          int64             `json:"id"`
	ClientID    *int64            `json:"client_id,omitempty"`
	ClientName  string            `json:"client_name,omitempty"`
	ClientPhone string            `json:"client_phone,omitempty"`
	StaffID     int64             `json:"staff_id" validate:"required"`
	ServiceID   *int64            `json:"service_id,omitempty"`
	Title       string            `json:"title,omitempty"`
	ScheduledAt time.Time         `json:"scheduled_at" validate:"required"`
	Status      AppointmentStatus `json:"status"`
	Payment     PaymentStatus     `json:"payment_status"`
	// PriceOverride, when set, replaces the referenced service's price.
	PriceOverride *float64   `json:"price_override,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	ReminderSent  bool       `json:"reminder_sent"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

// IsActive reports whether the appointment still occupies its slot.
// Only cancelled appointments release the slot.
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentCancelled
}

func (a *Appointment) CanBeCancelled() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// IsWalkIn reports whether the appointment belongs to a sporadic client
// recorded by free-text name/phone rather than an account reference.
func (a *Appointment) IsWalkIn() bool {
	return a.ClientID == nil && a.ClientName != ""
}

// IsEvent reports whether this is a titled staff event with no service.
func (a *Appointment) IsEvent() bool {
	return a.ServiceID == nil && a.Title != ""
}

// ReminderEligibleStatuses are the statuses the reminder dispatcher selects.
var ReminderEligibleStatuses = []AppointmentStatus{
	AppointmentConfirmed,
	AppointmentPending,
}
