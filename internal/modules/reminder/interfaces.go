package reminder

import (
	"context"
	"time"

	"belleza/internal/domain"
)

type AppointmentSource interface {
	DueForReminder(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)
	// ClaimReminder returns false when another dispatcher run already owns
	// the appointment.
	ClaimReminder(ctx context.Context, id int64) (bool, error)
}

// Notifier sends the one-hour-ahead reminder for a claimed appointment.
type Notifier interface {
	AppointmentReminder(ctx context.Context, appointmentID int64) error
}
