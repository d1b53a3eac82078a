package employee

import (
	"context"
	"fmt"

	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepository}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.EmployeeResponse{
			EmployeeID:    emp.EmployeeID,
			Name:          emp.Name,
			ManagerID:     emp.ManagerID,
			ContractHours: emp.ContractHours,
			IsManager:     emp.IsManager,
			CreatedAt:     emp.CreatedAt,
			UpdatedAt:     emp.UpdatedAt,
		})
	}

	return responses, nil
}
