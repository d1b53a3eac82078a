package leave

import (
	"context"
	"time"
)

// LeaveRepository - interface for the leaves table
type LeaveRepository interface {
	Create(ctx context.Context, lv Leave) (Leave, error)
	GetByID(ctx context.Context, leaveID string) (Leave, error)
	// ListByEmployeeID returns the employee's leaves sorted by start date
	// descending, with the approver summary joined in.
	ListByEmployeeID(ctx context.Context, employeeID string) ([]Leave, error)
	// ListByEmployeeIDs is the manager view: all leaves of the given
	// employees, start date descending, employee and approver joined.
	ListByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]Leave, error)
	// HasOverlap reports whether any non-terminal leave of the employee
	// intersects [start, end], boundaries inclusive.
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	// SumApprovedRegularHours totals TotalHours over APPROVED REGULAR leaves
	// whose start falls within the calendar year.
	SumApprovedRegularHours(ctx context.Context, employeeID string, year int) (int, error)
	UpdateStatus(ctx context.Context, leaveID string, status LeaveStatus, approverID *string) error
	Delete(ctx context.Context, leaveID string) error
	// CloseElapsed moves APPROVED leaves whose end has passed to CLOSED and
	// returns how many rows changed.
	CloseElapsed(ctx context.Context, now time.Time) (int64, error)
}

// LeaveBalanceRepository - interface for the leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) (LeaveBalance, error)
}

// SpecialLeaveUsageRepository - interface for the special_leave_usages table
type SpecialLeaveUsageRepository interface {
	GetByEmployeeYearType(ctx context.Context, employeeID string, year int, t SpecialLeaveType) (SpecialLeaveUsage, error)
	// Upsert creates the usage row with the given used/max figures, or adds
	// the used figures to an existing row. Caps are set on first insert only.
	Upsert(ctx context.Context, usage SpecialLeaveUsage) error
}
