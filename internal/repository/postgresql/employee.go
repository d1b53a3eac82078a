package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, manager_id, contract_hours, is_manager, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&emp.EmployeeID,
		&emp.Name,
		&emp.ManagerID,
		&emp.ContractHours,
		&emp.IsManager,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, manager_id, contract_hours, is_manager, created_at, updated_at
		FROM employees
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.EmployeeID,
			&emp.Name,
			&emp.ManagerID,
			&emp.ContractHours,
			&emp.IsManager,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) ListByManagerID(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, name, manager_id, contract_hours, is_manager, created_at, updated_at
		FROM employees
		WHERE manager_id = $1
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.EmployeeID,
			&emp.Name,
			&emp.ManagerID,
			&emp.ContractHours,
			&emp.IsManager,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (employee_id, name, manager_id, contract_hours, is_manager, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeID, emp.Name, emp.ManagerID, emp.ContractHours, emp.IsManager,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}
