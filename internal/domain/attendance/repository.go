package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetRecordsForDate returns all records for one employee on one calendar day,
	// oldest first. An empty slice is not an error.
	GetRecordsForDate(ctx context.Context, employeeID string, date time.Time) ([]Attendance, error)

	// GetOpenRecord returns the employee's record with a time_in and no time_out.
	// Returns ErrAttendanceNotFound when the employee is not clocked in.
	GetOpenRecord(ctx context.Context, employeeID string) (Attendance, error)

	// Close fills time_out and hours_worked on an open record.
	Close(ctx context.Context, id string, timeOut string, hoursWorked decimal.Decimal) (Attendance, error)

	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}
