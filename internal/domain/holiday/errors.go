package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("company holiday not found")
	ErrInvalidID       = errors.New("invalid holiday id")
	ErrInvalidRange    = errors.New("start date must be on or before end date")
)
