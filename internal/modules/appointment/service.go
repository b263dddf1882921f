package appointment

import (
	"context"
	"errors"
	"time"

	"belleza/internal/domain"
	"belleza/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	appointments AppointmentRepository
	services     ServiceCatalog
	notifs       NotificationSender
	log          *zap.Logger
}

func NewService(appointments AppointmentRepository, services ServiceCatalog, notifs NotificationSender, log *zap.Logger) *Service {
	return &Service{
		appointments: appointments,
		services:     services,
		notifs:       notifs,
		log:          log,
	}
}

// CheckSlot answers whether (staff, date+time) is free to book and names the
// conflicting appointment when it is not. Storage failures are returned to
// the caller rather than reported as "unavailable": a transient outage and a
// real conflict are different answers.
func (s *Service) CheckSlot(ctx context.Context, staffID int64, date, clock string) (*SlotCheck, error) {
	if staffID <= 0 {
		return nil, ErrValidation
	}
	at, err := domain.SlotInstant(date, clock)
	if err != nil {
		return nil, ErrValidation
	}

	conflict, err := s.appointments.FindAtSlot(ctx, staffID, at)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return &SlotCheck{Available: false, Conflicting: conflict}, nil
	}
	return &SlotCheck{Available: true}, nil
}

// Create books an appointment. The slot check here is a pre-flight for fast
// feedback; the partial unique index is the real guarantee, and its violation
// surfaces as ErrSlotTaken just the same.
func (s *Service) Create(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	at, err := domain.SlotInstant(req.Date, req.Time)
	if err != nil {
		return nil, ErrValidation
	}

	status := domain.AppointmentPending
	if req.Status != "" {
		status = domain.AppointmentStatus(req.Status)
		if !validStatus(status) {
			return nil, ErrValidation
		}
	}

	if req.ServiceID != nil {
		if _, err := s.services.GetByID(ctx, *req.ServiceID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrValidation
			}
			return nil, err
		}
	}

	check, err := s.CheckSlot(ctx, req.StaffID, req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if !check.Available {
		return nil, ErrSlotTaken
	}

	a := &domain.Appointment{
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		StaffID:       req.StaffID,
		ServiceID:     req.ServiceID,
		Title:         req.Title,
		ScheduledAt:   at,
		Status:        status,
		Payment:       domain.PaymentUnpaid,
		PriceOverride: req.PriceOverride,
		Notes:         req.Notes,
	}

	if err := s.appointments.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	// Best effort: a failed notification never fails the booking.
	if s.notifs != nil {
		if err := s.notifs.AppointmentCreated(ctx, a.ID); err != nil {
			s.log.Warn("created notification failed",
				zap.Int64("appointment_id", a.ID), zap.Error(err))
		}
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ListDay(ctx context.Context, staffID int64, date string) ([]domain.Appointment, error) {
	if staffID <= 0 {
		return nil, ErrValidation
	}
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, ErrValidation
	}
	return s.appointments.ListByStaffAndDay(ctx, staffID, day.UTC())
}

// UpdateStatus sets any valid status. Transitions are deliberately not
// machine-enforced; staff and admins may move an appointment anywhere.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	st := domain.AppointmentStatus(status)
	if !validStatus(st) {
		return ErrValidation
	}
	err := s.appointments.UpdateStatus(ctx, id, st)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) UpdatePayment(ctx context.Context, id int64, status string) error {
	st := domain.PaymentStatus(status)
	if st != domain.PaymentUnpaid && st != domain.PaymentPaid && st != domain.PaymentOverdue {
		return ErrValidation
	}
	err := s.appointments.UpdatePaymentStatus(ctx, id, st)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func validateCreate(req CreateAppointmentRequest) error {
	if req.StaffID <= 0 {
		return ErrValidation
	}
	// Registered client, or a sporadic (walk-in) client by name.
	if req.ClientID == nil && req.ClientName == "" {
		return ErrValidation
	}
	// A service, or a titled event appointment.
	if req.ServiceID == nil && req.Title == "" {
		return ErrValidation
	}
	return nil
}

func validStatus(s domain.AppointmentStatus) bool {
	switch s {
	case domain.AppointmentPending, domain.AppointmentConfirmed,
		domain.AppointmentCompleted, domain.AppointmentCancelled:
		return true
	}
	return false
}
