package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/validator"
	"github.com/verlof-hq/leave-backend-go/internal/repository/postgresql"
)

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.CreateLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	start, _ := validator.IsValidDateTime(req.StartOfLeave)
	end, _ := validator.IsValidDateTime(req.EndOfLeave)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	leaveType := req.ResolvedType()
	var specialType *leave.SpecialLeaveType
	if req.SpecialLeaveType != "" {
		t, _ := leave.ParseSpecialLeaveType(req.SpecialLeaveType)
		specialType = &t
	}

	result := ValidateLeaveRequest(time.Now().UTC(), start, end, leaveType, specialType)
	if !result.Valid() {
		return leave.CreateLeaveResponse{}, &leave.RuleError{Violations: result.Violations}
	}

	totalHours := CalculateWorkingHours(start, end)

	var created leave.Leave
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		overlap, err := s.LeaveRepository.HasOverlap(txCtx, emp.EmployeeID, start, end)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leaves: %w", err)
		}
		if overlap {
			return leave.ErrOverlappingLeave
		}

		switch leaveType {
		case leave.LeaveTypeSpecial:
			if err := s.checkSpecialLimit(txCtx, emp, *specialType, start.Year(), totalHours); err != nil {
				return err
			}
		case leave.LeaveTypeRegular:
			if err := s.checkBalance(txCtx, emp.EmployeeID, start.Year(), totalHours); err != nil {
				return err
			}
		}

		created, err = s.LeaveRepository.Create(txCtx, leave.Leave{
			LeaveLabel:       req.LeaveLabel,
			EmployeeID:       emp.EmployeeID,
			StartOfLeave:     start,
			EndOfLeave:       end,
			ApproverID:       emp.ManagerID,
			Status:           leave.LeaveStatusRequested,
			LeaveType:        leaveType,
			SpecialLeaveType: specialType,
			TotalHours:       totalHours,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave: %w", err)
		}

		return nil
	})
	if err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	created.EmployeeName = &emp.Name
	if emp.ManagerID != nil {
		if manager, err := s.EmployeeRepository.GetByID(ctx, *emp.ManagerID); err == nil {
			created.ApproverName = &manager.Name
		}
	}

	return leave.CreateLeaveResponse{
		Leave:    toLeaveResponse(created),
		Warnings: result.Warnings,
	}, nil
}

func (s *LeaveServiceImpl) checkSpecialLimit(ctx context.Context, emp employee.Employee, t leave.SpecialLeaveType, year, requestedHours int) error {
	limit := SpecialLeaveLimit(t, emp.ContractHours)

	usedHours := 0
	usage, err := s.SpecialLeaveUsageRepository.GetByEmployeeYearType(ctx, emp.EmployeeID, year, t)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to get special leave usage: %w", err)
		}
	} else {
		usedHours = usage.UsedHours
	}

	if usedHours+requestedHours > limit.MaxHours {
		return &leave.LimitExceededError{SpecialLeaveType: t, MaxHours: limit.MaxHours}
	}

	return nil
}

func (s *LeaveServiceImpl) checkBalance(ctx context.Context, employeeID string, year, requestedHours int) error {
	balance, err := s.LeaveBalanceRepository.GetByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		if errors.Is(err, leave.ErrBalanceNotFound) {
			return leave.ErrNoCurrentYearBalance
		}
		return fmt.Errorf("failed to get leave balance: %w", err)
	}

	usedHours, err := s.LeaveRepository.SumApprovedRegularHours(ctx, employeeID, year)
	if err != nil {
		return fmt.Errorf("failed to sum approved leave hours: %w", err)
	}

	available := balance.TotalHours - usedHours
	if requestedHours > available {
		return &leave.InsufficientBalanceError{
			Requested: requestedHours,
			Available: available,
			Total:     balance.TotalHours,
		}
	}

	return nil
}

// UpdateLeaveStatus implements leave.LeaveService. Only the employee's manager
// may change the status; approving a special leave also books its hours against
// the yearly category cap.
func (s *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, leaveID string, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	newStatus, _ := leave.ParseLeaveStatus(req.Status)

	lv, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, lv.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if emp.ManagerID == nil || *emp.ManagerID != req.ApproverID {
		return leave.LeaveResponse{}, leave.ErrApproverNotAuthorized
	}

	approverID := lv.ApproverID
	if newStatus == leave.LeaveStatusApproved {
		approverID = &req.ApproverID
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := s.LeaveRepository.UpdateStatus(txCtx, leaveID, newStatus, approverID); err != nil {
			return err
		}

		if newStatus == leave.LeaveStatusApproved && lv.LeaveType == leave.LeaveTypeSpecial && lv.SpecialLeaveType != nil {
			limit := SpecialLeaveLimit(*lv.SpecialLeaveType, emp.ContractHours)
			usage := leave.SpecialLeaveUsage{
				EmployeeID:       lv.EmployeeID,
				Year:             lv.StartOfLeave.Year(),
				SpecialLeaveType: *lv.SpecialLeaveType,
				UsedHours:        lv.TotalHours,
				UsedDays:         ceilDiv(lv.TotalHours, workingDayHours),
				MaxHours:         limit.MaxHours,
				MaxDays:          limit.MaxDays,
			}
			if err := s.SpecialLeaveUsageRepository.Upsert(txCtx, usage); err != nil {
				return fmt.Errorf("failed to record special leave usage: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(updated), nil
}

// DeleteLeave implements leave.LeaveService. Only the owner may delete, only
// before the leave starts, and never once it is approved or closed.
func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, leaveID string, employeeID string) error {
	lv, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return err
	}

	if lv.EmployeeID != employeeID {
		return leave.ErrNotLeaveOwner
	}

	if !lv.StartOfLeave.After(time.Now().UTC()) {
		return leave.ErrLeaveAlreadyStarted
	}

	switch lv.Status {
	case leave.LeaveStatusApproved:
		return leave.ErrLeaveApproved
	case leave.LeaveStatusClosed:
		return leave.ErrLeaveClosed
	}

	return s.LeaveRepository.Delete(ctx, leaveID)
}

// ListEmployeeLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListEmployeeLeaves(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	return toLeaveResponses(leaves), nil
}

// ListManagerLeaves implements leave.LeaveService: every leave of the
// manager's direct reports, newest start first. A manager with no reports
// gets an empty list, not an error.
func (s *LeaveServiceImpl) ListManagerLeaves(ctx context.Context, managerID string) ([]leave.LeaveResponse, error) {
	reports, err := s.EmployeeRepository.ListByManagerID(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		return []leave.LeaveResponse{}, nil
	}

	employeeIDs := make([]string, 0, len(reports))
	for _, report := range reports {
		employeeIDs = append(employeeIDs, report.EmployeeID)
	}

	leaves, err := s.LeaveRepository.ListByEmployeeIDs(ctx, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	return toLeaveResponses(leaves), nil
}
