package attendance

import "errors"

// Attendance domain errors
var (
	// Scan state-machine violations
	ErrDuplicateTimeIn  = errors.New("a time-in is already recorded for today")
	ErrDuplicateTimeOut = errors.New("a time-out is already recorded for today")
	ErrMissingTimeIn    = errors.New("no time-in recorded for today yet")
)
