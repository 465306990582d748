package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)

	// UpdateStatus moves a pending request to approved/rejected. A request
	// that is no longer pending returns ErrLeaveRequestAlreadyProcessed.
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, approverID string) (LeaveRequest, error)
}
