package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	Create(ctx context.Context, shift ScheduleShift) (ScheduleShift, error)
	GetByID(ctx context.Context, id string) (ScheduleShift, error)
	ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]ScheduleShift, error)
	Delete(ctx context.Context, id string) error
}
