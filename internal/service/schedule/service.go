package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/schedule"
	"github.com/google/uuid"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, employeeRepo employee.EmployeeRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ScheduleServiceImpl) AssignShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.ShiftResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return schedule.ShiftResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	shift := schedule.ScheduleShift{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		IsOvertime: req.IsOvertime,
	}

	created, err := s.scheduleRepo.Create(ctx, shift)
	if err != nil {
		return schedule.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapToShiftResponse(created), nil
}

func (s *ScheduleServiceImpl) ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]schedule.ShiftResponse, error) {
	shifts, err := s.scheduleRepo.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	result := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		result = append(result, mapToShiftResponse(shift))
	}
	return result, nil
}

func (s *ScheduleServiceImpl) RemoveShift(ctx context.Context, id string) error {
	if _, err := s.scheduleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.scheduleRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapToShiftResponse(shift schedule.ScheduleShift) schedule.ShiftResponse {
	employeeName := ""
	if shift.EmployeeName != nil {
		employeeName = *shift.EmployeeName
	}

	return schedule.ShiftResponse{
		ID:           shift.ID,
		EmployeeID:   shift.EmployeeID,
		EmployeeName: employeeName,
		Date:         shift.Date.Format("2006-01-02"),
		StartTime:    shift.StartTime,
		EndTime:      shift.EndTime,
		IsOvertime:   shift.IsOvertime,
	}
}
