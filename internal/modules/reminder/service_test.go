package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"belleza/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentSource struct {
	mu sync.Mutex

	due     []domain.Appointment
	dueErr  error
	claimed map[int64]bool

	queriedFrom time.Time
	queriedTo   time.Time
}

func (f *fakeAppointmentSource) DueForReminder(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	f.queriedFrom, f.queriedTo = from, to
	if f.dueErr != nil {
		return nil, f.dueErr
	}
	return f.due, nil
}

func (f *fakeAppointmentSource) ClaimReminder(ctx context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claimed == nil {
		f.claimed = map[int64]bool{}
	}
	if f.claimed[id] {
		return false, nil
	}
	f.claimed[id] = true
	return true, nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	sent    []int64
	failIDs map[int64]bool
}

func (f *fakeNotifier) AppointmentReminder(ctx context.Context, appointmentID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[appointmentID] {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, appointmentID)
	return nil
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestDispatch_WindowBounds(t *testing.T) {
	source := &fakeAppointmentSource{}
	service := NewService(source, &fakeNotifier{}, time.Hour, 5*time.Minute, zap.NewNop())
	base := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	service.now = fixedClock(base)

	_, err := service.Dispatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Hour), source.queriedFrom)
	assert.Equal(t, base.Add(time.Hour+5*time.Minute), source.queriedTo)
}

func TestDispatch_ClaimsThenSends(t *testing.T) {
	source := &fakeAppointmentSource{due: []domain.Appointment{{ID: 1}, {ID: 2}, {ID: 3}}}
	notifier := &fakeNotifier{}
	service := NewService(source, notifier, time.Hour, 5*time.Minute, zap.NewNop())
	service.now = fixedClock(time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC))

	n, err := service.Dispatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.ElementsMatch(t, []int64{1, 2, 3}, notifier.sent)
}

func TestDispatch_LostClaimIsSkipped(t *testing.T) {
	source := &fakeAppointmentSource{
		due:     []domain.Appointment{{ID: 1}, {ID: 2}},
		claimed: map[int64]bool{1: true}, // another run already took it
	}
	notifier := &fakeNotifier{}
	service := NewService(source, notifier, time.Hour, 5*time.Minute, zap.NewNop())
	service.now = fixedClock(time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC))

	n, err := service.Dispatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int64{2}, notifier.sent)
}

func TestDispatch_SendFailureDoesNotAbortBatch(t *testing.T) {
	source := &fakeAppointmentSource{due: []domain.Appointment{{ID: 1}, {ID: 2}}}
	notifier := &fakeNotifier{failIDs: map[int64]bool{1: true}}
	service := NewService(source, notifier, time.Hour, 5*time.Minute, zap.NewNop())
	service.now = fixedClock(time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC))

	n, err := service.Dispatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n, "a failed send still counts as claimed")
	assert.Equal(t, []int64{2}, notifier.sent)
}

func TestDispatch_SecondRunSendsNothing(t *testing.T) {
	source := &fakeAppointmentSource{due: []domain.Appointment{{ID: 1}}}
	notifier := &fakeNotifier{}
	service := NewService(source, notifier, time.Hour, 5*time.Minute, zap.NewNop())
	service.now = fixedClock(time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC))

	first, err := service.Dispatch(context.Background())
	require.NoError(t, err)
	second, err := service.Dispatch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, []int64{1}, notifier.sent)
}

func TestDispatch_SourceError(t *testing.T) {
	source := &fakeAppointmentSource{dueErr: errors.New("db down")}
	service := NewService(source, &fakeNotifier{}, time.Hour, 5*time.Minute, zap.NewNop())

	n, err := service.Dispatch(context.Background())

	assert.Error(t, err)
	assert.Zero(t, n)
}
