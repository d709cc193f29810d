package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidDateRange = errors.New("start date must be on or before end date")
	ErrInvalidID        = errors.New("invalid event id")
)
