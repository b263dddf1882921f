package appointment

import (
	"context"
	"time"

	"belleza/internal/domain"
)

// AppointmentRepository defines the storage operations the module needs.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	FindAtSlot(ctx context.Context, staffID int64, at time.Time) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	ListByStaffAndDay(ctx context.Context, staffID int64, day time.Time) ([]domain.Appointment, error)
}

// ServiceCatalog resolves the referenced service when one is given.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// NotificationSender delivers the best-effort "created" notification.
type NotificationSender interface {
	AppointmentCreated(ctx context.Context, appointmentID int64) error
}
