package leave

import (
	"fmt"
	"time"
)

type LeaveStatus string

const (
	LeaveStatusRequested LeaveStatus = "REQUESTED"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
	LeaveStatusCancelled LeaveStatus = "CANCELLED"
	LeaveStatusClosed    LeaveStatus = "CLOSED"
)

// ParseLeaveStatus rejects anything outside the closed status set.
func ParseLeaveStatus(s string) (LeaveStatus, error) {
	switch LeaveStatus(s) {
	case LeaveStatusRequested, LeaveStatusApproved, LeaveStatusRejected,
		LeaveStatusCancelled, LeaveStatusClosed:
		return LeaveStatus(s), nil
	}
	return "", fmt.Errorf("invalid leave status %q", s)
}

// Terminal reports whether leaves in this status no longer occupy their
// interval; they are ignored by the overlap check.
func (s LeaveStatus) Terminal() bool {
	switch s {
	case LeaveStatusRejected, LeaveStatusCancelled, LeaveStatusClosed:
		return true
	}
	return false
}

type LeaveType string

const (
	LeaveTypeRegular LeaveType = "REGULAR"
	LeaveTypeSpecial LeaveType = "SPECIAL"
)

func ParseLeaveType(s string) (LeaveType, error) {
	switch LeaveType(s) {
	case LeaveTypeRegular, LeaveTypeSpecial:
		return LeaveType(s), nil
	}
	return "", fmt.Errorf("invalid leave type %q", s)
}

type SpecialLeaveType string

const (
	SpecialLeaveMoving       SpecialLeaveType = "MOVING"
	SpecialLeaveWedding      SpecialLeaveType = "WEDDING"
	SpecialLeaveChildBirth   SpecialLeaveType = "CHILD_BIRTH"
	SpecialLeaveParentalCare SpecialLeaveType = "PARENTAL_CARE"
)

func ParseSpecialLeaveType(s string) (SpecialLeaveType, error) {
	switch SpecialLeaveType(s) {
	case SpecialLeaveMoving, SpecialLeaveWedding, SpecialLeaveChildBirth,
		SpecialLeaveParentalCare:
		return SpecialLeaveType(s), nil
	}
	return "", fmt.Errorf("invalid special leave type %q", s)
}

// Leave entity. TotalHours is computed once at creation from the working-hours
// formula and never recalculated afterwards.
type Leave struct {
	LeaveID          string
	LeaveLabel       string
	EmployeeID       string
	StartOfLeave     time.Time
	EndOfLeave       time.Time
	ApproverID       *string
	Status           LeaveStatus
	LeaveType        LeaveType
	SpecialLeaveType *SpecialLeaveType
	TotalHours       int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined summaries (for responses)
	EmployeeName *string
	ApproverName *string
}

// LeaveBalance holds the allocation for (employee, year). Used totals are
// deliberately absent: they are recomputed from approved leaves on every read
// so a stored counter can never drift.
type LeaveBalance struct {
	ID         int64
	EmployeeID string
	Year       int
	TotalDays  int
	TotalHours int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SpecialLeaveUsage accumulates approved special-leave consumption per
// (employee, year, category) against a category cap. Increment-only: a later
// rejection or cancellation of an approved special leave does not roll the
// counters back.
type SpecialLeaveUsage struct {
	ID               int64
	EmployeeID       string
	Year             int
	SpecialLeaveType SpecialLeaveType
	UsedHours        int
	UsedDays         int
	MaxHours         int
	MaxDays          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
