package postgresql

import (
	"context"

	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
)

type specialLeaveUsageRepositoryImpl struct {
	db *database.DB
}

func NewSpecialLeaveUsageRepository(db *database.DB) leave.SpecialLeaveUsageRepository {
	return &specialLeaveUsageRepositoryImpl{db: db}
}

func (r *specialLeaveUsageRepositoryImpl) GetByEmployeeYearType(ctx context.Context, employeeID string, year int, t leave.SpecialLeaveType) (leave.SpecialLeaveUsage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, special_leave_type,
			   used_hours, used_days, max_hours, max_days,
			   created_at, updated_at
		FROM special_leave_usages
		WHERE employee_id = $1 AND year = $2 AND special_leave_type = $3
	`

	var usage leave.SpecialLeaveUsage
	err := q.QueryRow(ctx, query, employeeID, year, t).Scan(
		&usage.ID,
		&usage.EmployeeID,
		&usage.Year,
		&usage.SpecialLeaveType,
		&usage.UsedHours,
		&usage.UsedDays,
		&usage.MaxHours,
		&usage.MaxDays,
		&usage.CreatedAt,
		&usage.UpdatedAt,
	)
	if err != nil {
		return leave.SpecialLeaveUsage{}, err
	}

	return usage, nil
}

// Upsert is increment-only: on conflict the used counters grow by the given
// figures and the caps stay as they were on first insert.
func (r *specialLeaveUsageRepositoryImpl) Upsert(ctx context.Context, usage leave.SpecialLeaveUsage) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO special_leave_usages (
			employee_id, year, special_leave_type,
			used_hours, used_days, max_hours, max_days,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (employee_id, year, special_leave_type) DO UPDATE
		SET used_hours = special_leave_usages.used_hours + EXCLUDED.used_hours,
			used_days  = special_leave_usages.used_days + EXCLUDED.used_days,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		usage.EmployeeID, usage.Year, usage.SpecialLeaveType,
		usage.UsedHours, usage.UsedDays, usage.MaxHours, usage.MaxDays,
	)
	return err
}
