package leave

import (
	"context"
	"fmt"

	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
)

// GetBalance implements leave.LeaveService. Usage is recomputed from approved
// regular leaves on every call instead of trusting a stored counter.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string, year int) (leave.BalanceResponse, error) {
	balance, err := s.LeaveBalanceRepository.GetByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	usedHours, err := s.LeaveRepository.SumApprovedRegularHours(ctx, employeeID, year)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to sum approved leave hours: %w", err)
	}

	usedDays := ceilDiv(usedHours, workingDayHours)

	usagePercent := 0
	if balance.TotalHours > 0 {
		usagePercent = (usedHours*100 + balance.TotalHours/2) / balance.TotalHours
	}

	return leave.BalanceResponse{
		EmployeeID:     balance.EmployeeID,
		Year:           balance.Year,
		TotalDays:      balance.TotalDays,
		TotalHours:     balance.TotalHours,
		UsedDays:       usedDays,
		UsedHours:      usedHours,
		RemainingDays:  balance.TotalDays - usedDays,
		RemainingHours: balance.TotalHours - usedHours,
		UsagePercent:   usagePercent,
	}, nil
}
