package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.period_start, p.period_end,
	p.regular_hours, p.overtime_hours, p.gross_pay,
	p.sss, p.pagibig, p.philhealth, p.tax, p.others,
	p.net_pay, p.status, p.created_at, p.updated_at, e.full_name
`

func scanPayrollItem(row pgx.Row) (payroll.PayrollItem, error) {
	var item payroll.PayrollItem
	err := row.Scan(
		&item.ID, &item.EmployeeID, &item.PeriodStart, &item.PeriodEnd,
		&item.RegularHours, &item.OvertimeHours, &item.GrossPay,
		&item.Deductions.SSS, &item.Deductions.PagIbig, &item.Deductions.PhilHealth,
		&item.Deductions.Tax, &item.Deductions.Others,
		&item.NetPay, &item.Status, &item.CreatedAt, &item.UpdatedAt, &item.EmployeeName,
	)
	return item, err
}

// Create implements payroll.PayrollRepository. The payroll_items table has a
// unique key on (employee_id, period_start, period_end); a second insert for
// the same period returns ErrPayrollItemExists and leaves the stored row
// untouched.
func (r *payrollRepository) Create(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_items (
			id, employee_id, period_start, period_end,
			regular_hours, overtime_hours, gross_pay,
			sss, pagibig, philhealth, tax, others,
			net_pay, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (employee_id, period_start, period_end) DO NOTHING
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		item.ID,
		item.EmployeeID,
		item.PeriodStart,
		item.PeriodEnd,
		item.RegularHours,
		item.OvertimeHours,
		item.GrossPay,
		item.Deductions.SSS,
		item.Deductions.PagIbig,
		item.Deductions.PhilHealth,
		item.Deductions.Tax,
		item.Deductions.Others,
		item.NetPay,
		item.Status,
	).Scan(&item.CreatedAt, &item.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemExists
		}
		return payroll.PayrollItem{}, fmt.Errorf("failed to create payroll item: %w", err)
	}

	return item, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_items p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	item, err := scanPayrollItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
		}
		return payroll.PayrollItem{}, fmt.Errorf("failed to get payroll item: %w", err)
	}

	return item, nil
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_items p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		  AND p.period_start = $2
		  AND p.period_end = $3
	`

	item, err := scanPayrollItem(q.QueryRow(ctx, query, employeeID, periodStart, periodEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
		}
		return payroll.PayrollItem{}, fmt.Errorf("failed to get payroll item for period: %w", err)
	}

	return item, nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_items p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.period_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		item, err := scanPayrollItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// MarkPaid implements payroll.PayrollRepository. The update only touches
// status; pay figures are immutable once computed.
func (r *payrollRepository) MarkPaid(ctx context.Context, id string) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_items
		SET status = 'paid', updated_at = NOW()
		WHERE id = $1
		  AND status <> 'paid'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err != pgx.ErrNoRows {
			return payroll.PayrollItem{}, fmt.Errorf("failed to mark payroll item paid: %w", err)
		}

		// Distinguish a missing item from one that is already paid.
		var status payroll.PayrollStatus
		checkErr := q.QueryRow(ctx, `SELECT status FROM payroll_items WHERE id = $1`, id).Scan(&status)
		if checkErr == pgx.ErrNoRows {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
		}
		if checkErr != nil {
			return payroll.PayrollItem{}, fmt.Errorf("failed to check payroll item status: %w", checkErr)
		}
		return payroll.PayrollItem{}, payroll.ErrPayrollAlreadyPaid
	}

	return r.GetByID(ctx, id)
}
