package notification

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("appointment not found")
	ErrNoRecipient = errors.New("appointment has no reachable recipient")
	ErrSendFailed  = errors.New("notification send failed")
)
