package leave

import (
	"context"
)

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (CreateLeaveResponse, error)
	UpdateLeaveStatus(ctx context.Context, leaveID string, req UpdateLeaveStatusRequest) (LeaveResponse, error)
	DeleteLeave(ctx context.Context, leaveID string, employeeID string) error
	ListEmployeeLeaves(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListManagerLeaves(ctx context.Context, managerID string) ([]LeaveResponse, error)
	GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
}
