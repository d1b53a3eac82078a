// Package fixtures holds the demo dataset loaded by cmd/seed: two managers,
// three reports and a handful of leaves in various states.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
)

func strPtr(s string) *string { return &s }

func Employees() []employee.Employee {
	return []employee.Employee{
		{
			EmployeeID:    "K000001",
			Name:          "Velthoven Jeroen-van",
			IsManager:     true,
			ContractHours: decimal.NewFromInt(40),
		},
		{
			EmployeeID:    "K000002",
			Name:          "Eszter Nasz",
			IsManager:     true,
			ContractHours: decimal.NewFromInt(40),
		},
		{
			EmployeeID:    "K012345",
			Name:          "Mohammad Farhadi",
			ManagerID:     strPtr("K000001"),
			ContractHours: decimal.NewFromInt(40),
		},
		{
			EmployeeID:    "K012346",
			Name:          "Bertold Oravecz",
			ManagerID:     strPtr("K000001"),
			ContractHours: decimal.NewFromInt(32),
		},
		{
			EmployeeID:    "K012347",
			Name:          "Carol Davis",
			ManagerID:     strPtr("K000002"),
			ContractHours: decimal.NewFromInt(40),
		},
	}
}

// Balances allocates the current-year balance for every fixture employee from
// their contract hours.
func Balances(year int) []leave.LeaveBalance {
	employees := Employees()
	balances := make([]leave.LeaveBalance, 0, len(employees))
	for _, emp := range employees {
		balances = append(balances, leave.LeaveBalance{
			EmployeeID: emp.EmployeeID,
			Year:       year,
			TotalDays:  emp.AnnualLeaveDays(),
			TotalHours: emp.AnnualLeaveHours(),
		})
	}
	return balances
}

func Leaves() []leave.Leave {
	moving := leave.SpecialLeaveMoving
	return []leave.Leave{
		{
			LeaveLabel:   "out",
			EmployeeID:   "K012345",
			StartOfLeave: time.Date(2025, time.September, 9, 7, 0, 0, 0, time.UTC),
			EndOfLeave:   time.Date(2025, time.September, 10, 15, 0, 0, 0, time.UTC),
			ApproverID:   strPtr("K000001"),
			Status:       leave.LeaveStatusApproved,
			LeaveType:    leave.LeaveTypeRegular,
			TotalHours:   16,
		},
		{
			LeaveLabel:   "Summer vacation",
			EmployeeID:   "K012345",
			StartOfLeave: time.Date(2025, time.July, 1, 11, 0, 0, 0, time.UTC),
			EndOfLeave:   time.Date(2025, time.July, 15, 19, 0, 0, 0, time.UTC),
			ApproverID:   strPtr("K000001"),
			Status:       leave.LeaveStatusApproved,
			LeaveType:    leave.LeaveTypeRegular,
			TotalHours:   88,
		},
		{
			LeaveLabel:   "Christmas break",
			EmployeeID:   "K012346",
			StartOfLeave: time.Date(2025, time.December, 23, 9, 0, 0, 0, time.UTC),
			EndOfLeave:   time.Date(2025, time.December, 30, 17, 0, 0, 0, time.UTC),
			ApproverID:   strPtr("K000001"),
			Status:       leave.LeaveStatusRequested,
			LeaveType:    leave.LeaveTypeRegular,
			TotalHours:   48,
		},
		{
			LeaveLabel:       "Moving day",
			EmployeeID:       "K012347",
			StartOfLeave:     time.Date(2025, time.November, 14, 9, 0, 0, 0, time.UTC),
			EndOfLeave:       time.Date(2025, time.November, 14, 17, 0, 0, 0, time.UTC),
			ApproverID:       strPtr("K000002"),
			Status:           leave.LeaveStatusApproved,
			LeaveType:        leave.LeaveTypeSpecial,
			SpecialLeaveType: &moving,
			TotalHours:       8,
		},
	}
}
