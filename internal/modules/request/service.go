package request

import (
	"context"
	"errors"
	"time"

	"belleza/internal/domain"
	"belleza/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	requests RequestRepository
	slots    SlotChecker
	log      *zap.Logger
}

func NewService(requests RequestRepository, slots SlotChecker, log *zap.Logger) *Service {
	return &Service{
		requests: requests,
		slots:    slots,
		log:      log,
	}
}

// CreateRequest records a client's booking preference for staff review.
func (s *Service) CreateRequest(ctx context.Context, req CreateRequest) (*domain.AppointmentRequest, error) {
	if req.ClientID <= 0 || req.ServiceID <= 0 {
		return nil, ErrValidation
	}
	date, err := time.Parse(domain.DateFormat, req.PreferredDate)
	if err != nil {
		return nil, ErrValidation
	}
	if req.PreferredTime != "" {
		if _, err := time.Parse(domain.TimeFormat, req.PreferredTime); err != nil {
			return nil, ErrValidation
		}
	}

	r := &domain.AppointmentRequest{
		ClientID:      req.ClientID,
		ServiceID:     req.ServiceID,
		PreferredDate: date.UTC(),
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
		Status:        domain.RequestPending,
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.AppointmentRequest, error) {
	return s.requests.ListPending(ctx)
}

// Approve turns a pending request into a confirmed appointment for the
// approving staff member. The slot is conflict-checked first, and the
// appointment insert plus the request status flip commit atomically; there is
// no window where one exists without the other.
func (s *Service) Approve(ctx context.Context, requestID, staffID int64, params ApproveParams) (*domain.Appointment, error) {
	if staffID <= 0 {
		return nil, ErrValidation
	}

	req, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.IsDecided() {
		return nil, ErrAlreadyDecided
	}

	at, err := domain.SlotInstant(params.Date, params.Time)
	if err != nil {
		return nil, ErrValidation
	}

	check, err := s.slots.CheckSlot(ctx, staffID, params.Date, params.Time)
	if err != nil {
		return nil, err
	}
	if !check.Available {
		return nil, ErrSlotTaken
	}

	clientID := params.ClientID
	if clientID == 0 {
		clientID = req.ClientID
	}
	serviceID := params.ServiceID
	if serviceID == 0 {
		serviceID = req.ServiceID
	}

	appt := &domain.Appointment{
		ClientID:    &clientID,
		StaffID:     staffID,
		ServiceID:   &serviceID,
		ScheduledAt: at,
		Status:      domain.AppointmentConfirmed,
		Payment:     domain.PaymentUnpaid,
		Notes:       req.Notes,
	}

	if err := s.requests.Approve(ctx, requestID, appt); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateSlot):
			// Lost the race between pre-flight and insert; the index caught it.
			return nil, ErrSlotTaken
		case errors.Is(err, repository.ErrRequestDecided):
			return nil, ErrAlreadyDecided
		}
		return nil, err
	}

	s.log.Info("request approved",
		zap.Int64("request_id", requestID),
		zap.Int64("appointment_id", appt.ID),
		zap.Int64("staff_id", staffID),
		zap.Time("scheduled_at", at),
	)
	return appt, nil
}

// Reject closes a request without creating anything. Rejecting an
// already-rejected request is a no-op success; rejecting an approved one is
// an error, approved is terminal.
func (s *Service) Reject(ctx context.Context, requestID int64) error {
	req, err := s.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}

	switch req.Status {
	case domain.RequestRejected:
		return nil
	case domain.RequestApproved:
		return ErrAlreadyDecided
	}

	if err := s.requests.MarkRejected(ctx, requestID); err != nil {
		if errors.Is(err, repository.ErrRequestDecided) {
			// Decided between our read and the update; re-read settles which way.
			cur, readErr := s.loadRequest(ctx, requestID)
			if readErr == nil && cur.Status == domain.RequestRejected {
				return nil
			}
			return ErrAlreadyDecided
		}
		return err
	}
	return nil
}

func (s *Service) loadRequest(ctx context.Context, id int64) (*domain.AppointmentRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}
