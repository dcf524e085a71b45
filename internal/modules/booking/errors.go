package booking

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid booking input")
	ErrNotFound          = errors.New("equipment not found")
	ErrConflict          = errors.New("equipment not available for selected dates")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
)
