package appointment

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrSlotTaken  = errors.New("slot already booked")
	ErrNotFound   = errors.New("appointment not found")
)
