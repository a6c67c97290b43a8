package query

import (
	"errors"
)

var (
	ErrDomoNotFound = errors.New("domo not found")
	ErrInvalidRange = errors.New("end date must be after start date")
)
