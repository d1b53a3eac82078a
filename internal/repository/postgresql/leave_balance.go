package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (employee_id, year, total_days, total_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.EmployeeID, balance.Year, balance.TotalDays, balance.TotalHours,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err != nil {
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}

func (r *leaveBalanceRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, total_days, total_hours, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
	`

	var balance leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&balance.ID,
		&balance.EmployeeID,
		&balance.Year,
		&balance.TotalDays,
		&balance.TotalHours,
		&balance.CreatedAt,
		&balance.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, err
	}

	return balance, nil
}
