package payroll

import (
	"context"
	"time"
)

// PayrollService is the payroll computation engine.
type PayrollService interface {
	// ComputeOrFetch returns the cached item for (employee, period) when one
	// exists, otherwise computes from attendance, persists with status
	// "processed" and returns it. A period with zero attendance records yields
	// ErrNoAttendanceData and persists nothing.
	ComputeOrFetch(ctx context.Context, employeeID string, period PayPeriod) (PayrollItemResponse, error)

	GetItem(ctx context.Context, id string) (PayrollItemResponse, error)
	ListItems(ctx context.Context, employeeID string) ([]PayrollItemResponse, error)

	// MarkPaid advances a processed item to paid. Figures never change; a paid
	// item rejects the call with ErrPayrollAlreadyPaid.
	MarkPaid(ctx context.Context, id string) (PayrollItemResponse, error)

	// RecentPeriods lists the semi-monthly periods of the last n months,
	// newest month first, for period-selection UIs.
	RecentPeriods(ctx context.Context, referenceDate time.Time, months int) []PayPeriodResponse

	// PayslipPDF renders a payslip document for a computed item.
	PayslipPDF(ctx context.Context, id string) ([]byte, error)
}
