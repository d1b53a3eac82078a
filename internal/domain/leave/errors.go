package leave

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLeaveNotFound         = errors.New("leave not found")
	ErrOverlappingLeave      = errors.New("overlapping leave exists")
	ErrApproverNotAuthorized = errors.New("approver not authorized for this leave")
	ErrNotLeaveOwner         = errors.New("not authorized to delete this leave")
	ErrLeaveAlreadyStarted   = errors.New("cannot delete leave that has started or passed")
	ErrLeaveApproved         = errors.New("cannot delete an approved leave")
	ErrLeaveClosed           = errors.New("cannot delete a closed leave")
	ErrBalanceNotFound       = errors.New("leave balance not found for this year")
	ErrNoCurrentYearBalance  = errors.New("leave balance not found for current year")
)

// RuleError carries the accumulated business-rule violations from the
// validator. All violations are reported at once, never just the first.
type RuleError struct {
	Violations []string
}

func (e *RuleError) Error() string {
	return "leave request violates business rules: " + strings.Join(e.Violations, "; ")
}

// InsufficientBalanceError reports a regular-leave request that exceeds the
// year's remaining balance.
type InsufficientBalanceError struct {
	Requested int
	Available int
	Total     int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance: requested %dh, available %dh of %dh",
		e.Requested, e.Available, e.Total)
}

// LimitExceededError reports a special-leave request that would push the
// year's usage past the category cap.
type LimitExceededError struct {
	SpecialLeaveType SpecialLeaveType
	MaxHours         int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("Special leave limit exceeded. Maximum %d hours allowed for %s",
		e.MaxHours, e.SpecialLeaveType)
}
