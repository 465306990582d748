package schedule

import "errors"

var (
	ErrShiftNotFound = errors.New("schedule shift not found")
)
