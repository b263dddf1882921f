package domain

import "time"

// Service is a bookable salon service. Appointment duration derives from
// DurationMinutes; appointments themselves carry only a start instant.
type Service struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price" validate:"gte=0"`
	DurationMinutes int       `json:"duration_minutes"`
	Category        string    `json:"category,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
