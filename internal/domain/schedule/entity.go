package schedule

import "time"

// ScheduleShift is a planned work window for one employee on one day.
type ScheduleShift struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartTime  string // "HH:MM:SS"
	EndTime    string
	IsOvertime bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}
