package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"belleza/internal/database"
	"belleza/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database and runs the full
// migration, double-booking index included.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, Models()...))
	return db
}

func newAppointment(staffID int64, at time.Time) *domain.Appointment {
	client := int64(12)
	service := int64(7)
	return &domain.Appointment{
		ClientID:    &client,
		StaffID:     staffID,
		ServiceID:   &service,
		ScheduledAt: at,
		Status:      domain.AppointmentConfirmed,
		Payment:     domain.PaymentUnpaid,
	}
}

func TestAppointmentRepository_DoubleBookingIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	first := newAppointment(3, at)
	require.NoError(t, repo.Create(ctx, first))
	assert.NotZero(t, first.ID)

	err := repo.Create(ctx, newAppointment(3, at))
	assert.ErrorIs(t, err, ErrDuplicateSlot)

	// A different staff member at the same instant is fine.
	require.NoError(t, repo.Create(ctx, newAppointment(4, at)))

	// Same staff member at a different instant is fine.
	require.NoError(t, repo.Create(ctx, newAppointment(3, at.Add(30*time.Minute))))
}

func TestAppointmentRepository_CancelledSlotIsFreedForRebooking(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	first := newAppointment(3, at)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, domain.AppointmentCancelled))

	// The partial index ignores cancelled rows, so the slot opens up again.
	require.NoError(t, repo.Create(ctx, newAppointment(3, at)))

	cancelled, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestAppointmentRepository_FindAtSlot(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	free, err := repo.FindAtSlot(ctx, 3, at)
	require.NoError(t, err)
	assert.Nil(t, free)

	appt := newAppointment(3, at)
	require.NoError(t, repo.Create(ctx, appt))

	found, err := repo.FindAtSlot(ctx, 3, at)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, appt.ID, found.ID)

	require.NoError(t, repo.UpdateStatus(ctx, appt.ID, domain.AppointmentCancelled))
	freed, err := repo.FindAtSlot(ctx, 3, at)
	require.NoError(t, err)
	assert.Nil(t, freed, "cancelled appointments do not block the slot")
}

func TestAppointmentRepository_DueForReminderWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()
	from := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	to := from.Add(5 * time.Minute)

	inWindow := newAppointment(3, from) // inclusive lower bound
	require.NoError(t, repo.Create(ctx, inWindow))

	atUpper := newAppointment(4, to) // exclusive upper bound
	require.NoError(t, repo.Create(ctx, atUpper))

	before := newAppointment(5, from.Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, before))

	done := newAppointment(6, from.Add(time.Minute))
	done.Status = domain.AppointmentCompleted
	require.NoError(t, repo.Create(ctx, done))

	alreadySent := newAppointment(7, from.Add(2*time.Minute))
	alreadySent.ReminderSent = true
	require.NoError(t, repo.Create(ctx, alreadySent))

	pendingOne := newAppointment(8, from.Add(3*time.Minute))
	pendingOne.Status = domain.AppointmentPending
	require.NoError(t, repo.Create(ctx, pendingOne))

	due, err := repo.DueForReminder(ctx, from, to)
	require.NoError(t, err)

	ids := make([]int64, 0, len(due))
	for _, a := range due {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []int64{inWindow.ID, pendingOne.ID}, ids)
}

func TestAppointmentRepository_ClaimReminderWinsOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()

	appt := newAppointment(3, time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, appt))

	won, err := repo.ClaimReminder(ctx, appt.ID)
	require.NoError(t, err)
	assert.True(t, won)

	lost, err := repo.ClaimReminder(ctx, appt.ID)
	require.NoError(t, err)
	assert.False(t, lost)
}

func TestAppointmentRepository_UpdateStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)

	err := repo.UpdateStatus(context.Background(), 999, domain.AppointmentCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentRepository_ListByStaffAndDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewAppointmentRepository(db)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	morning := newAppointment(3, day.Add(10*time.Hour))
	require.NoError(t, repo.Create(ctx, morning))
	evening := newAppointment(3, day.Add(19*time.Hour))
	require.NoError(t, repo.Create(ctx, evening))
	nextDay := newAppointment(3, day.Add(25*time.Hour))
	require.NoError(t, repo.Create(ctx, nextDay))
	otherStaff := newAppointment(4, day.Add(10*time.Hour))
	require.NoError(t, repo.Create(ctx, otherStaff))

	list, err := repo.ListByStaffAndDay(ctx, 3, day)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, morning.ID, list[0].ID)
	assert.Equal(t, evening.ID, list[1].ID)
}

func TestRequestRepository_ApproveIsAtomic(t *testing.T) {
	db := newTestDB(t)
	appts := NewAppointmentRepository(db)
	requests := NewRequestRepository(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	req := &domain.AppointmentRequest{
		ClientID:      12,
		ServiceID:     7,
		PreferredDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		PreferredTime: "14:00",
		Status:        domain.RequestPending,
	}
	require.NoError(t, requests.Create(ctx, req))

	appt := newAppointment(3, at)
	require.NoError(t, requests.Approve(ctx, req.ID, appt))
	assert.NotZero(t, appt.ID)

	stored, err := requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestApproved, stored.Status)

	// A second approval attempt fails and must not leave a second appointment.
	err = requests.Approve(ctx, req.ID, newAppointment(4, at.Add(time.Hour)))
	assert.ErrorIs(t, err, ErrRequestDecided)

	orphan, err := appts.FindAtSlot(ctx, 4, at.Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, orphan, "rolled-back approval leaves no appointment behind")
}

func TestRequestRepository_ApproveRollsBackOnSlotConflict(t *testing.T) {
	db := newTestDB(t)
	requests := NewRequestRepository(db)
	appts := NewAppointmentRepository(db)
	ctx := context.Background()
	at := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	require.NoError(t, appts.Create(ctx, newAppointment(3, at)))

	req := &domain.AppointmentRequest{
		ClientID:      12,
		ServiceID:     7,
		PreferredDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        domain.RequestPending,
	}
	require.NoError(t, requests.Create(ctx, req))

	err := requests.Approve(ctx, req.ID, newAppointment(3, at))
	assert.ErrorIs(t, err, ErrDuplicateSlot)

	// The request must still be pending after the rollback.
	stored, getErr := requests.GetByID(ctx, req.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.RequestPending, stored.Status)
}

func TestRequestRepository_MarkRejected(t *testing.T) {
	db := newTestDB(t)
	requests := NewRequestRepository(db)
	ctx := context.Background()

	req := &domain.AppointmentRequest{
		ClientID:      12,
		ServiceID:     7,
		PreferredDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:        domain.RequestPending,
	}
	require.NoError(t, requests.Create(ctx, req))

	require.NoError(t, requests.MarkRejected(ctx, req.ID))
	assert.ErrorIs(t, requests.MarkRejected(ctx, req.ID), ErrRequestDecided)

	stored, err := requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestRejected, stored.Status)
}

func TestRequestRepository_ListPendingOnly(t *testing.T) {
	db := newTestDB(t)
	requests := NewRequestRepository(db)
	ctx := context.Background()

	pending := &domain.AppointmentRequest{ClientID: 12, ServiceID: 7,
		PreferredDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Status: domain.RequestPending}
	require.NoError(t, requests.Create(ctx, pending))

	rejected := &domain.AppointmentRequest{ClientID: 13, ServiceID: 7,
		PreferredDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), Status: domain.RequestRejected}
	require.NoError(t, requests.Create(ctx, rejected))

	list, err := requests.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pending.ID, list[0].ID)
}
