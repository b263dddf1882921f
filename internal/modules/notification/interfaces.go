package notification

import (
	"context"

	"belleza/internal/domain"
)

type AppointmentReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

type ProfileReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}

type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type EmailSender interface {
	Send(to string, subject string, body string) error
}

type SMSSender interface {
	Send(ctx context.Context, to string, body string) error
	Configured() bool
}
