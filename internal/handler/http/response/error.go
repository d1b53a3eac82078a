package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/verlof-hq/leave-backend-go/internal/domain/auth"
	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var ruleErr *leave.RuleError
	if errors.As(err, &ruleErr) {
		RuleViolations(w, ruleErr.Violations)
		return
	}

	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		BadRequest(w, "Insufficient leave balance", map[string]string{
			"requested_hours": strconv.Itoa(balanceErr.Requested),
			"available_hours": strconv.Itoa(balanceErr.Available),
			"total_hours":     strconv.Itoa(balanceErr.Total),
		})
		return
	}

	var limitErr *leave.LimitExceededError
	if errors.As(err, &limitErr) {
		BadRequest(w, limitErr.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidEmployeeID):
		Unauthorized(w, "Invalid employee ID")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found for this year")
	case errors.Is(err, leave.ErrNoCurrentYearBalance):
		BadRequest(w, "Leave balance not found for current year", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Overlapping leave exists for this period")
	case errors.Is(err, leave.ErrApproverNotAuthorized):
		Forbidden(w, "Only the employee's manager can update this leave")
	case errors.Is(err, leave.ErrNotLeaveOwner):
		Forbidden(w, "Only the owner can delete this leave")
	case errors.Is(err, leave.ErrLeaveAlreadyStarted):
		BadRequest(w, "Cannot delete a leave that has already started", nil)
	case errors.Is(err, leave.ErrLeaveApproved):
		BadRequest(w, "Cannot delete an approved leave", nil)
	case errors.Is(err, leave.ErrLeaveClosed):
		BadRequest(w, "Cannot delete a closed leave", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
