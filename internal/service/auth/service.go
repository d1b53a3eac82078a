package auth

import (
	"context"
	"errors"

	"github.com/verlof-hq/leave-backend-go/internal/domain/auth"
	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService. An unknown employee ID is reported as an
// authentication failure, not a lookup miss.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidEmployeeID
		}
		return auth.LoginResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken(emp.EmployeeID, emp.IsManager)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		User: auth.UserResponse{
			EmployeeID: emp.EmployeeID,
			Name:       emp.Name,
			ManagerID:  emp.ManagerID,
			IsManager:  emp.IsManager,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
