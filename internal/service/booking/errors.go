package booking

import "errors"

var (
	ErrInvalidRange   = errors.New("end date must be after start date")
	ErrMissingContact = errors.New("a contact phone is required")
	ErrDomoNotFound   = errors.New("domo not found")
	ErrSlotTaken      = errors.New("dates are not available")
)
