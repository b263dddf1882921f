package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotInstant(t *testing.T) {
	at, err := SlotInstant("2025-03-10", "14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC), at)
	assert.Equal(t, time.UTC, at.Location())
}

func TestSlotInstant_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		clock string
	}{
		{"empty date", "", "14:30"},
		{"empty time", "2025-03-10", ""},
		{"textual date", "next tuesday", "14:30"},
		{"twelve hour clock", "2025-03-10", "2:30pm"},
		{"seconds not allowed", "2025-03-10", "14:30:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SlotInstant(tc.date, tc.clock)
			assert.Error(t, err)
		})
	}
}

func TestAppointmentStateHelpers(t *testing.T) {
	a := Appointment{Status: AppointmentConfirmed}
	assert.True(t, a.IsActive())
	assert.True(t, a.CanBeCancelled())

	a.Status = AppointmentCancelled
	assert.False(t, a.IsActive())
	assert.False(t, a.CanBeCancelled())

	a.Status = AppointmentCompleted
	assert.True(t, a.IsActive())
	assert.False(t, a.CanBeCancelled())
}

func TestWalkInAndEventFlags(t *testing.T) {
	id := int64(12)
	registered := Appointment{ClientID: &id}
	assert.False(t, registered.IsWalkIn())

	walkIn := Appointment{ClientName: "Rosa", ClientPhone: "+34600999888"}
	assert.True(t, walkIn.IsWalkIn())

	event := Appointment{Title: "Sesión de fotos"}
	assert.True(t, event.IsEvent())
}
