package notification

import (
	"context"
	"errors"
	"fmt"

	"belleza/internal/domain"
	"belleza/internal/repository"

	"go.uber.org/zap"
)

type Kind string

const (
	KindCreated  Kind = "created"
	KindReminder Kind = "reminder"
)

// Service resolves an appointment into concrete email/SMS messages and
// dispatches them to the external providers. Channel selection is best
// effort: whichever of email and SMS has a recipient and a configured
// provider is attempted; the send succeeds when at least one channel does.
type Service struct {
	appointments AppointmentReader
	profiles     ProfileReader
	services     ServiceReader
	email        EmailSender
	sms          SMSSender
	log          *zap.Logger
}

func NewService(
	appointments AppointmentReader,
	profiles ProfileReader,
	services ServiceReader,
	email EmailSender,
	sms SMSSender,
	log *zap.Logger,
) *Service {
	return &Service{
		appointments: appointments,
		profiles:     profiles,
		services:     services,
		email:        email,
		sms:          sms,
		log:          log,
	}
}

func (s *Service) Send(ctx context.Context, appointmentID int64, kind Kind) error {
	if kind != KindCreated && kind != KindReminder {
		return ErrValidation
	}

	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	name, emailAddr, phone := s.resolveRecipient(ctx, appt)
	subject, body := s.compose(ctx, appt, kind, name)

	attempted, delivered := 0, 0

	if emailAddr != "" {
		attempted++
		if err := s.email.Send(emailAddr, subject, body); err != nil {
			s.log.Error("email send failed",
				zap.Int64("appointment_id", appt.ID),
				zap.String("kind", string(kind)),
				zap.Error(err))
		} else {
			delivered++
		}
	}

	if phone != "" && s.sms != nil && s.sms.Configured() {
		attempted++
		if err := s.sms.Send(ctx, phone, body); err != nil {
			s.log.Error("sms send failed",
				zap.Int64("appointment_id", appt.ID),
				zap.String("kind", string(kind)),
				zap.Error(err))
		} else {
			delivered++
		}
	}

	if attempted == 0 {
		return ErrNoRecipient
	}
	if delivered == 0 {
		return ErrSendFailed
	}
	return nil
}

// AppointmentCreated satisfies the appointment module's sender contract.
func (s *Service) AppointmentCreated(ctx context.Context, appointmentID int64) error {
	return s.Send(ctx, appointmentID, KindCreated)
}

// AppointmentReminder satisfies the reminder dispatcher's contract.
func (s *Service) AppointmentReminder(ctx context.Context, appointmentID int64) error {
	return s.Send(ctx, appointmentID, KindReminder)
}

// resolveRecipient prefers the registered client profile; sporadic (walk-in)
// clients only have the free-text name and phone on the appointment row.
func (s *Service) resolveRecipient(ctx context.Context, appt *domain.Appointment) (name, email, phone string) {
	if appt.ClientID != nil {
		client, err := s.profiles.GetByID(ctx, *appt.ClientID)
		if err != nil {
			s.log.Warn("client profile lookup failed",
				zap.Int64("appointment_id", appt.ID), zap.Error(err))
		} else {
			return client.Name, client.Email, client.Phone
		}
	}
	return appt.ClientName, "", appt.ClientPhone
}

func (s *Service) compose(ctx context.Context, appt *domain.Appointment, kind Kind, clientName string) (subject, body string) {
	what := appt.Title
	if appt.ServiceID != nil {
		if svc, err := s.services.GetByID(ctx, *appt.ServiceID); err == nil {
			what = svc.Name
		}
	}
	if what == "" {
		what = "your appointment"
	}

	staffName := ""
	if staff, err := s.profiles.GetByID(ctx, appt.StaffID); err == nil {
		staffName = staff.Name
	}

	when := appt.ScheduledAt.Format("Monday, 2 January 2006 at 15:04")

	greeting := "Hello"
	if clientName != "" {
		greeting = "Hello " + clientName
	}
	with := ""
	if staffName != "" {
		with = " with " + staffName
	}

	switch kind {
	case KindReminder:
		subject = fmt.Sprintf("Reminder: %s at %s", what, appt.ScheduledAt.Format("15:04"))
		body = fmt.Sprintf("%s,\n\nThis is a reminder that %s%s starts on %s.\n\nSee you soon!",
			greeting, what, with, when)
	default:
		subject = fmt.Sprintf("Booking confirmed: %s", what)
		body = fmt.Sprintf("%s,\n\nYour booking for %s%s on %s has been registered.\n\nThank you!",
			greeting, what, with, when)
	}
	return subject, body
}
