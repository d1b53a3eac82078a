package leave

import (
	"time"

	"github.com/verlof-hq/leave-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveLabel       string `json:"leave_label"`
	EmployeeID       string `json:"employee_id"`
	StartOfLeave     string `json:"start_of_leave"`
	EndOfLeave       string `json:"end_of_leave"`
	LeaveType        string `json:"leave_type,omitempty"`
	SpecialLeaveType string `json:"special_leave_type,omitempty"`
}

// Validate covers structure only: required fields, parseable timestamps and
// known enum literals. Business rules (ordering, notice, balances) live in the
// leave service.
func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveLabel) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_label",
			Message: "leave_label is required",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.StartOfLeave) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_of_leave",
			Message: "start_of_leave is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.StartOfLeave); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_of_leave",
			Message: "start_of_leave must be an ISO8601 timestamp",
		})
	}

	if validator.IsEmpty(r.EndOfLeave) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_of_leave",
			Message: "end_of_leave is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.EndOfLeave); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_of_leave",
			Message: "end_of_leave must be an ISO8601 timestamp",
		})
	}

	if r.LeaveType != "" {
		if _, err := ParseLeaveType(r.LeaveType); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type must be REGULAR or SPECIAL",
			})
		}
	}

	if r.SpecialLeaveType != "" {
		if _, err := ParseSpecialLeaveType(r.SpecialLeaveType); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "special_leave_type",
				Message: "special_leave_type must be MOVING, WEDDING, CHILD_BIRTH or PARENTAL_CARE",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ResolvedType defaults to REGULAR when leave_type is omitted.
func (r *CreateLeaveRequest) ResolvedType() LeaveType {
	if r.LeaveType == "" {
		return LeaveTypeRegular
	}
	t, _ := ParseLeaveType(r.LeaveType)
	return t
}

type UpdateLeaveStatusRequest struct {
	Status     string `json:"status"`
	ApproverID string `json:"approver_id"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if _, err := ParseLeaveStatus(r.Status); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Invalid status value",
		})
	}

	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_id",
			Message: "approver_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *DeleteLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeSummary struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
}

type LeaveResponse struct {
	LeaveID          string            `json:"leave_id"`
	LeaveLabel       string            `json:"leave_label"`
	EmployeeID       string            `json:"employee_id"`
	StartOfLeave     time.Time         `json:"start_of_leave"`
	EndOfLeave       time.Time         `json:"end_of_leave"`
	ApproverID       *string           `json:"approver_id,omitempty"`
	Status           LeaveStatus       `json:"status"`
	LeaveType        LeaveType         `json:"leave_type"`
	SpecialLeaveType *SpecialLeaveType `json:"special_leave_type,omitempty"`
	TotalHours       int               `json:"total_hours"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	Employee         *EmployeeSummary  `json:"employee,omitempty"`
	Approver         *EmployeeSummary  `json:"approver,omitempty"`
}

// CreateLeaveResponse pairs the created record with any non-blocking warnings
// (weekend start/end) for the caller to surface.
type CreateLeaveResponse struct {
	Leave    LeaveResponse `json:"leave"`
	Warnings []string      `json:"warnings,omitempty"`
}

// BalanceResponse combines the stored allocation with usage recomputed from
// approved leaves at read time.
type BalanceResponse struct {
	EmployeeID     string `json:"employee_id"`
	Year           int    `json:"year"`
	TotalDays      int    `json:"total_days"`
	TotalHours     int    `json:"total_hours"`
	UsedDays       int    `json:"used_days"`
	UsedHours      int    `json:"used_hours"`
	RemainingDays  int    `json:"remaining_days"`
	RemainingHours int    `json:"remaining_hours"`
	UsagePercent   int    `json:"usage_percent"`
}
