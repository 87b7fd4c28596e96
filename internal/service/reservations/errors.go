package reservations

import "errors"

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrPositionOutOfRange = errors.New("reservation position out of range")
	ErrNotifierDisabled   = errors.New("notifications are not configured")
	ErrInternal           = errors.New("internal reservations service error")
)
