package payroll

import (
	"context"
	"time"
)

// PayrollRepository persists computed payroll items. At most one item exists
// per (employee_id, period_start, period_end); Create must fail with
// ErrPayrollItemExists rather than overwrite.
type PayrollRepository interface {
	Create(ctx context.Context, item PayrollItem) (PayrollItem, error)
	GetByID(ctx context.Context, id string) (PayrollItem, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (PayrollItem, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollItem, error)

	// MarkPaid advances processed -> paid. Returns ErrPayrollAlreadyPaid when
	// the item is already paid, leaving it unchanged.
	MarkPaid(ctx context.Context, id string) (PayrollItem, error)
}
