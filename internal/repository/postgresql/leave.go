package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	lv.LeaveID = uuid.NewString()

	query := `
		INSERT INTO leaves (
			leave_id, leave_label, employee_id,
			start_of_leave, end_of_leave, approver_id,
			status, leave_type, special_leave_type, total_hours,
			created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6,
			$7, $8, $9, $10,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lv.LeaveID, lv.LeaveLabel, lv.EmployeeID,
		lv.StartOfLeave, lv.EndOfLeave, lv.ApproverID,
		lv.Status, lv.LeaveType, lv.SpecialLeaveType, lv.TotalHours,
	).Scan(&lv.CreatedAt, &lv.UpdatedAt)
	if err != nil {
		return leave.Leave{}, err
	}

	return lv, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, leaveID string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.leave_id, l.leave_label, l.employee_id,
			   l.start_of_leave, l.end_of_leave, l.approver_id,
			   l.status, l.leave_type, l.special_leave_type, l.total_hours,
			   l.created_at, l.updated_at,
			   e.name AS employee_name,
			   a.name AS approver_name
		FROM leaves l
		JOIN employees e ON l.employee_id = e.employee_id
		LEFT JOIN employees a ON l.approver_id = a.employee_id
		WHERE l.leave_id = $1
	`

	var lv leave.Leave
	err := q.QueryRow(ctx, query, leaveID).Scan(
		&lv.LeaveID, &lv.LeaveLabel, &lv.EmployeeID,
		&lv.StartOfLeave, &lv.EndOfLeave, &lv.ApproverID,
		&lv.Status, &lv.LeaveType, &lv.SpecialLeaveType, &lv.TotalHours,
		&lv.CreatedAt, &lv.UpdatedAt,
		&lv.EmployeeName,
		&lv.ApproverName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}

	return lv, nil
}

func (r *leaveRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.leave_id, l.leave_label, l.employee_id,
			   l.start_of_leave, l.end_of_leave, l.approver_id,
			   l.status, l.leave_type, l.special_leave_type, l.total_hours,
			   l.created_at, l.updated_at,
			   e.name AS employee_name,
			   a.name AS approver_name
		FROM leaves l
		JOIN employees e ON l.employee_id = e.employee_id
		LEFT JOIN employees a ON l.approver_id = a.employee_id
		WHERE l.employee_id = $1
		ORDER BY l.start_of_leave DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaves(rows)
}

func (r *leaveRepositoryImpl) ListByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.leave_id, l.leave_label, l.employee_id,
			   l.start_of_leave, l.end_of_leave, l.approver_id,
			   l.status, l.leave_type, l.special_leave_type, l.total_hours,
			   l.created_at, l.updated_at,
			   e.name AS employee_name,
			   a.name AS approver_name
		FROM leaves l
		JOIN employees e ON l.employee_id = e.employee_id
		LEFT JOIN employees a ON l.approver_id = a.employee_id
		WHERE l.employee_id = ANY($1)
		ORDER BY l.start_of_leave DESC
	`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeaves(rows)
}

func scanLeaves(rows pgx.Rows) ([]leave.Leave, error) {
	leaves := make([]leave.Leave, 0)
	for rows.Next() {
		var lv leave.Leave
		if err := rows.Scan(
			&lv.LeaveID, &lv.LeaveLabel, &lv.EmployeeID,
			&lv.StartOfLeave, &lv.EndOfLeave, &lv.ApproverID,
			&lv.Status, &lv.LeaveType, &lv.SpecialLeaveType, &lv.TotalHours,
			&lv.CreatedAt, &lv.UpdatedAt,
			&lv.EmployeeName,
			&lv.ApproverName,
		); err != nil {
			return nil, err
		}
		leaves = append(leaves, lv)
	}

	return leaves, rows.Err()
}

// HasOverlap: [start_of_leave, end_of_leave] intersects [start, end] with
// inclusive boundaries; terminal statuses free their interval.
func (r *leaveRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leaves
			WHERE employee_id = $1
			  AND status NOT IN ('REJECTED', 'CANCELLED', 'CLOSED')
			  AND start_of_leave <= $3
			  AND end_of_leave >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *leaveRepositoryImpl) SumApprovedRegularHours(ctx context.Context, employeeID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_hours), 0)
		FROM leaves
		WHERE employee_id = $1
		  AND status = 'APPROVED'
		  AND leave_type = 'REGULAR'
		  AND start_of_leave >= $2
		  AND start_of_leave < $3
	`

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var total int
	if err := q.QueryRow(ctx, query, employeeID, yearStart, yearEnd).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, leaveID string, status leave.LeaveStatus, approverID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2, approver_id = $3, updated_at = NOW()
		WHERE leave_id = $1
	`

	commandTag, err := q.Exec(ctx, query, leaveID, status, approverID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, leaveID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leaves
		WHERE leave_id = $1
	`

	commandTag, err := q.Exec(ctx, query, leaveID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepositoryImpl) CloseElapsed(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = 'CLOSED', updated_at = NOW()
		WHERE status = 'APPROVED'
		  AND end_of_leave < $1
	`

	commandTag, err := q.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}

	return commandTag.RowsAffected(), nil
}
