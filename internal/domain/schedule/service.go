package schedule

import (
	"context"
	"time"
)

// ScheduleService defines business logic for shift planning
type ScheduleService interface {
	// AssignShift creates a shift for an employee (admin only)
	AssignShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// ListRange returns an employee's shifts between two dates inclusive
	ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]ShiftResponse, error)

	// RemoveShift deletes a planned shift (admin only)
	RemoveShift(ctx context.Context, id string) error
}
