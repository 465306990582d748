package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	TimeIn      *string // 24-hour wall-clock "HH:MM:SS"
	TimeOut     *string
	Status      Status
	HoursWorked *decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusLeave   Status = "leave"
	StatusHoliday Status = "holiday"
)

// IsOpen reports whether the record is a clock-in awaiting clock-out.
// An open record contributes nothing to payroll hour totals.
func (a Attendance) IsOpen() bool {
	return a.TimeIn != nil && a.TimeOut == nil
}
