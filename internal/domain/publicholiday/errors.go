package publicholiday

import "errors"

var (
	ErrInvalidRange  = errors.New("start date must be on or before end date")
	ErrRangeTooLarge = errors.New("date range spans too many years")
)
