package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	payrollsvc "github.com/bayanihr/payroll-backend-go/internal/service/payroll"
	"github.com/google/uuid"
)

// Clock-ins after this wall-clock time are recorded as late.
const workdayStart = "09:00:00"

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	location       *time.Location

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		location:       location,
		now:            time.Now,
	}
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	_, err := s.attendanceRepo.GetOpenRecord(ctx, employeeID)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check open attendance: %w", err)
	}

	now := s.now().In(s.location)
	timeIn := now.Format("15:04:05")

	status := attendance.StatusPresent
	if timeIn > workdayStart {
		status = attendance.StatusLate
	}

	record := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		TimeIn:     &timeIn,
		Status:     status,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapToAttendanceResponse(created), nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	open, err := s.attendanceRepo.GetOpenRecord(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to find open attendance: %w", err)
	}

	timeOut := s.now().In(s.location).Format("15:04:05")
	hours, err := payrollsvc.HoursBetween(*open.TimeIn, timeOut)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to compute hours worked: %w", err)
	}

	closed, err := s.attendanceRepo.Close(ctx, open.ID, timeOut, hours)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	return mapToAttendanceResponse(closed), nil
}

func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	records, err := s.attendanceRepo.GetRecordsForDate(ctx, employeeID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	return mapToAttendanceResponses(records), nil
}

func (s *AttendanceServiceImpl) ListRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployeeRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}

	return mapToAttendanceResponses(records), nil
}

// ========== HELPERS ==========

func mapToAttendanceResponse(record attendance.Attendance) attendance.AttendanceResponse {
	var hoursWorked *string
	if record.HoursWorked != nil {
		formatted := record.HoursWorked.StringFixed(2)
		hoursWorked = &formatted
	}

	return attendance.AttendanceResponse{
		ID:          record.ID,
		EmployeeID:  record.EmployeeID,
		Date:        record.Date.Format("2006-01-02"),
		TimeIn:      record.TimeIn,
		TimeOut:     record.TimeOut,
		Status:      string(record.Status),
		HoursWorked: hoursWorked,
	}
}

func mapToAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		result = append(result, mapToAttendanceResponse(record))
	}
	return result
}
