package request

import (
	"context"

	"belleza/internal/domain"
	"belleza/internal/modules/appointment"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.AppointmentRequest) error
	GetByID(ctx context.Context, id int64) (*domain.AppointmentRequest, error)
	ListPending(ctx context.Context) ([]domain.AppointmentRequest, error)
	// Approve commits the confirmed appointment and the approved status in
	// one transaction.
	Approve(ctx context.Context, requestID int64, appt *domain.Appointment) error
	MarkRejected(ctx context.Context, requestID int64) error
}

// SlotChecker is the availability pre-flight run before approving into a slot.
type SlotChecker interface {
	CheckSlot(ctx context.Context, staffID int64, date, clock string) (*appointment.SlotCheck, error)
}
