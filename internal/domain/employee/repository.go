package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, employeeID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListByManagerID(ctx context.Context, managerID string) ([]Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
}
