package admin

import (
	"errors"
)

var (
	ErrDomoNotFound        = errors.New("domo not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrHolidayNotFound     = errors.New("holiday not found")
	ErrHolidayConflict     = errors.New("holiday already exists")
	ErrBadDiscounts        = errors.New("invalid discount configuration")
)
