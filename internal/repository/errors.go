package repository

import "errors"

var (
	// ErrNotFound hides gorm.ErrRecordNotFound from the service layer.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlot is the idx_no_double_booking unique index firing:
	// another non-cancelled appointment already occupies (staff, instant).
	ErrDuplicateSlot = errors.New("slot already booked")
)
