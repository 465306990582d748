package leave

import "context"

// LeaveService defines business logic for leave requests
type LeaveService interface {
	Submit(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)

	// ListAll returns every employee's requests (admin only)
	ListAll(ctx context.Context) ([]LeaveResponse, error)

	Approve(ctx context.Context, id string, approverID string) (LeaveResponse, error)
	Reject(ctx context.Context, id string, approverID string) (LeaveResponse, error)
}
