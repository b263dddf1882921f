package request

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("request not found")
	ErrAlreadyDecided = errors.New("request already decided")
	ErrSlotTaken      = errors.New("slot already booked")
)
