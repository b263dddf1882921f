package repository

import (
	"context"
	"errors"
	"time"

	"belleza/internal/domain"

	"gorm.io/gorm"
)

// ErrRequestDecided means the request already left pending; that state is
// terminal and the attempted transition lost the race.
var ErrRequestDecided = errors.New("request already decided")

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

type requestModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	ClientID      int64     `gorm:"column:client_id;index"`
	ServiceID     int64     `gorm:"column:service_id"`
	PreferredDate time.Time `gorm:"column:preferred_date"`
	PreferredTime *string   `gorm:"column:preferred_time"`
	Notes         *string   `gorm:"column:notes"`
	Status        string    `gorm:"column:status;index"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (requestModel) TableName() string { return "appointment_requests" }

func toDomainRequest(m requestModel) *domain.AppointmentRequest {
	r := &domain.AppointmentRequest{
		ID:            m.ID,
		ClientID:      m.ClientID,
		ServiceID:     m.ServiceID,
		PreferredDate: m.PreferredDate,
		Status:        domain.RequestStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.PreferredTime != nil {
		r.PreferredTime = *m.PreferredTime
	}
	if m.Notes != nil {
		r.Notes = *m.Notes
	}
	return r
}

func toRequestModel(r *domain.AppointmentRequest) requestModel {
	return requestModel{
		ID:            r.ID,
		ClientID:      r.ClientID,
		ServiceID:     r.ServiceID,
		PreferredDate: r.PreferredDate,
		PreferredTime: optString(r.PreferredTime),
		Notes:         optString(r.Notes),
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.AppointmentRequest) error {
	m := toRequestModel(req)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*req = *toDomainRequest(m)
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.AppointmentRequest, error) {
	var m requestModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainRequest(m), nil
}

func (r *RequestRepository) ListPending(ctx context.Context) ([]domain.AppointmentRequest, error) {
	var models []requestModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(domain.RequestPending)).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.AppointmentRequest, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainRequest(m))
	}
	return out, nil
}

// Approve inserts the confirmed appointment and marks the request approved in
// one transaction, so a failure of either step leaves no half-committed state.
// The status update is guarded on status='pending': losing that guard means
// another staff member decided the request first.
func (r *RequestRepository) Approve(ctx context.Context, requestID int64, appt *domain.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createAppointment(tx, appt); err != nil {
			return err
		}

		res := tx.Model(&requestModel{}).
			Where("id = ? AND status = ?", requestID, string(domain.RequestPending)).
			Update("status", string(domain.RequestApproved))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestDecided
		}
		return nil
	})
}

// MarkRejected moves a pending request to rejected. Zero rows affected means
// the request was already decided; the caller distinguishes the idempotent
// re-reject case.
func (r *RequestRepository) MarkRejected(ctx context.Context, requestID int64) error {
	res := r.db.WithContext(ctx).
		Model(&requestModel{}).
		Where("id = ? AND status = ?", requestID, string(domain.RequestPending)).
		Update("status", string(domain.RequestRejected))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestDecided
	}
	return nil
}
