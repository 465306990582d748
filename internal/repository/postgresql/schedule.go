package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.date, s.start_time, s.end_time, s.is_overtime,
	s.created_at, s.updated_at, e.full_name
`

func scanShift(row pgx.Row) (schedule.ScheduleShift, error) {
	var shift schedule.ScheduleShift
	err := row.Scan(
		&shift.ID, &shift.EmployeeID, &shift.Date, &shift.StartTime, &shift.EndTime,
		&shift.IsOvertime, &shift.CreatedAt, &shift.UpdatedAt, &shift.EmployeeName,
	)
	return shift, err
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepository) Create(ctx context.Context, shift schedule.ScheduleShift) (schedule.ScheduleShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_shifts (
			id, employee_id, date, start_time, end_time, is_overtime
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.ID,
		shift.EmployeeID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.IsOvertime,
	).Scan(&shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		return schedule.ScheduleShift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetByID(ctx context.Context, id string) (schedule.ScheduleShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM schedule_shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	shift, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ScheduleShift{}, schedule.ErrShiftNotFound
		}
		return schedule.ScheduleShift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return shift, nil
}

// ListByEmployeeRange implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListByEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.ScheduleShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM schedule_shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		  AND s.date BETWEEN $2 AND $3
		ORDER BY s.date, s.start_time
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.ScheduleShift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, rows.Err()
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}
