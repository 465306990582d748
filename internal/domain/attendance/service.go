package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for the time clock
type AttendanceService interface {
	// ClockIn opens a new attendance record for today. Fails with
	// ErrAlreadyClockedIn while a previous record is still open.
	ClockIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// ClockOut closes the employee's open record, computing hours worked.
	ClockOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// Today returns all of today's records for the employee.
	Today(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// ListRange returns records between two dates inclusive.
	ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]AttendanceResponse, error)
}
