package payroll

import "errors"

var (
	ErrPayrollItemNotFound = errors.New("payroll item not found")
	ErrNoAttendanceData    = errors.New("no attendance records for this period")
	ErrPayrollAlreadyPaid  = errors.New("payroll item already paid")
	ErrPayrollItemExists   = errors.New("payroll item already exists for this period")
)
