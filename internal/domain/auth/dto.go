package auth

import (
	"github.com/verlof-hq/leave-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *LoginRequest) Validate() error {
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

// UserResponse is the authenticated identity: enough for a client to know who
// it is and whether the manager views apply.
type UserResponse struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	ManagerID  *string `json:"manager_id,omitempty"`
	IsManager  bool    `json:"is_manager"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
}
