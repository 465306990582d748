package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/leave"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LeaveServiceImpl) Submit(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	request := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Type:       leave.LeaveType(req.Type),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapToLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return mapToLeaveResponses(requests), nil
}

func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return mapToLeaveResponses(requests), nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id string, approverID string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, approverID, leave.StatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, id string, approverID string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, approverID, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id string, approverID string, status leave.LeaveStatus) (leave.LeaveResponse, error) {
	updated, err := s.leaveRepo.UpdateStatus(ctx, id, status, approverID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapToLeaveResponse(updated), nil
}

// ========== HELPERS ==========

func mapToLeaveResponse(request leave.LeaveRequest) leave.LeaveResponse {
	employeeName := ""
	if request.EmployeeName != nil {
		employeeName = *request.EmployeeName
	}

	var approvedAt *string
	if request.ApprovedAt != nil {
		formatted := request.ApprovedAt.Format(time.RFC3339)
		approvedAt = &formatted
	}

	return leave.LeaveResponse{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		EmployeeName: employeeName,
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		Type:         string(request.Type),
		Reason:       request.Reason,
		Status:       string(request.Status),
		ApprovedBy:   request.ApprovedBy,
		ApprovedAt:   approvedAt,
	}
}

func mapToLeaveResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	result := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, mapToLeaveResponse(request))
	}
	return result
}
