package reminder

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service selects appointments starting inside the reminder window and sends
// each at most one reminder. The conditional reminder_sent claim is the sole
// de-duplication gate, so overlapping dispatcher runs cannot double-send: at
// most one run wins each claim.
type Service struct {
	appointments AppointmentSource
	notifs       Notifier
	lead         time.Duration
	window       time.Duration
	log          *zap.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewService(appointments AppointmentSource, notifs Notifier, lead, window time.Duration, log *zap.Logger) *Service {
	return &Service{
		appointments: appointments,
		notifs:       notifs,
		lead:         lead,
		window:       window,
		log:          log,
		now:          time.Now,
	}
}

// Dispatch runs one reminder pass and returns how many appointments were
// claimed for sending. Claiming happens BEFORE the send: a reminder marked
// sent but lost to a transient provider failure is the accepted trade-off,
// the reverse ordering risks duplicate sends, which is worse for clients.
// Individual send failures are logged and never abort the batch.
func (s *Service) Dispatch(ctx context.Context) (int, error) {
	from := s.now().UTC().Add(s.lead)
	to := from.Add(s.window)

	due, err := s.appointments.DueForReminder(ctx, from, to)
	if err != nil {
		return 0, err
	}

	var wg sync.WaitGroup
	claimed := 0
	for _, appt := range due {
		ok, err := s.appointments.ClaimReminder(ctx, appt.ID)
		if err != nil {
			s.log.Error("reminder claim failed",
				zap.Int64("appointment_id", appt.ID), zap.Error(err))
			continue
		}
		if !ok {
			// Another run got there first.
			continue
		}
		claimed++

		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if err := s.notifs.AppointmentReminder(ctx, id); err != nil {
				s.log.Error("reminder send failed",
					zap.Int64("appointment_id", id), zap.Error(err))
			}
		}(appt.ID)
	}
	wg.Wait()

	s.log.Info("reminder pass finished",
		zap.Time("window_from", from),
		zap.Time("window_to", to),
		zap.Int("selected", len(due)),
		zap.Int("claimed", claimed),
	)
	return claimed, nil
}
