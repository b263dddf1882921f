package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"belleza/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	ClientID      *int64     `gorm:"column:client_id;index"`
	ClientName    *string    `gorm:"column:client_name"`
	ClientPhone   *string    `gorm:"column:client_phone"`
	StaffID       int64      `gorm:"column:staff_id;index:idx_appointments_staff_time"`
	ServiceID     *int64     `gorm:"column:service_id"`
	Title         *string    `gorm:"column:title"`
	ScheduledAt   time.Time  `gorm:"column:scheduled_at;index:idx_appointments_staff_time"`
	Status        string     `gorm:"column:status;index"`
	PaymentStatus string     `gorm:"column:payment_status"`
	PriceOverride *float64   `gorm:"column:price_override"`
	Notes         *string    `gorm:"column:notes"`
	ReminderSent  bool       `gorm:"column:reminder_sent;default:false"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (appointmentModel) TableName() string { return "appointments" }

func toDomainAppointment(m appointmentModel) *domain.Appointment {
	a := &domain.Appointment{
		ID:            m.ID,
		ClientID:      m.ClientID,
		StaffID:       m.StaffID,
		ServiceID:     m.ServiceID,
		ScheduledAt:   m.ScheduledAt,
		Status:        domain.AppointmentStatus(m.Status),
		Payment:       domain.PaymentStatus(m.PaymentStatus),
		PriceOverride: m.PriceOverride,
		ReminderSent:  m.ReminderSent,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		CancelledAt:   m.CancelledAt,
	}
	if m.ClientName != nil {
		a.ClientName = *m.ClientName
	}
	if m.ClientPhone != nil {
		a.ClientPhone = *m.ClientPhone
	}
	if m.Title != nil {
		a.Title = *m.Title
	}
	if m.Notes != nil {
		a.Notes = *m.Notes
	}
	return a
}

func toAppointmentModel(a *domain.Appointment) appointmentModel {
	return appointmentModel{
		ID:            a.ID,
		ClientID:      a.ClientID,
		ClientName:    optString(a.ClientName),
		ClientPhone:   optString(a.ClientPhone),
		StaffID:       a.StaffID,
		ServiceID:     a.ServiceID,
		Title:         optString(a.Title),
		ScheduledAt:   a.ScheduledAt,
		Status:        string(a.Status),
		PaymentStatus: string(a.Payment),
		PriceOverride: a.PriceOverride,
		Notes:         optString(a.Notes),
		ReminderSent:  a.ReminderSent,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		CancelledAt:   a.CancelledAt,
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	return createAppointment(r.db.WithContext(ctx), a)
}

// createAppointment is shared with the request approval transaction.
func createAppointment(db *gorm.DB, a *domain.Appointment) error {
	m := toAppointmentModel(a)
	if err := db.Create(&m).Error; err != nil {
		if isDuplicateSlot(err) {
			return ErrDuplicateSlot
		}
		return err
	}
	*a = *toDomainAppointment(m)
	return nil
}

// isDuplicateSlot recognises the double-booking index firing on either
// backend: 23505 on PostgreSQL, the UNIQUE constraint message on SQLite.
func isDuplicateSlot(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var m appointmentModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainAppointment(m), nil
}

// FindAtSlot returns the first non-cancelled appointment occupying the exact
// (staff, instant) slot, or nil when the slot is free.
func (r *AppointmentRepository) FindAtSlot(ctx context.Context, staffID int64, at time.Time) (*domain.Appointment, error) {
	var m appointmentModel
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND scheduled_at = ? AND status <> ?",
			staffID, at, string(domain.AppointmentCancelled)).
		Order("id").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainAppointment(m), nil
}

// DueForReminder selects appointments with scheduled_at in [from, to),
// reminder not yet sent, and a reminder-eligible status.
func (r *AppointmentRepository) DueForReminder(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	statuses := make([]string, 0, len(domain.ReminderEligibleStatuses))
	for _, s := range domain.ReminderEligibleStatuses {
		statuses = append(statuses, string(s))
	}

	var models []appointmentModel
	err := r.db.WithContext(ctx).
		Where("scheduled_at >= ? AND scheduled_at < ?", from, to).
		Where("status IN ?", statuses).
		Where("reminder_sent = ?", false).
		Order("scheduled_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainAppointment(m))
	}
	return out, nil
}

// ClaimReminder atomically flips reminder_sent false->true and reports
// whether this caller won the claim. A false return with nil error means a
// concurrent dispatcher run already claimed the appointment.
func (r *AppointmentRepository) ClaimReminder(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ? AND reminder_sent = ?", id, false).
		Update("reminder_sent", true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	updates := map[string]interface{}{"status": string(status)}
	if status == domain.AppointmentCancelled {
		now := time.Now().UTC()
		updates["cancelled_at"] = &now
	}

	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&appointmentModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByStaffAndDay returns a staff member's appointments for one calendar
// day, cancelled ones included (the schedule view greys them out).
func (r *AppointmentRepository) ListByStaffAndDay(ctx context.Context, staffID int64, day time.Time) ([]domain.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var models []appointmentModel
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND scheduled_at >= ? AND scheduled_at < ?", staffID, start, end).
		Order("scheduled_at").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Appointment, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainAppointment(m))
	}
	return out, nil
}
