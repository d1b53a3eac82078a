package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the root record: leaves, balances and special-leave usage are
// all scoped to an employee via EmployeeID.
type Employee struct {
	EmployeeID    string
	Name          string
	ManagerID     *string
	ContractHours decimal.Decimal
	IsManager     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AnnualLeaveDays derives the regular-leave allocation for a year:
// round(contractHours / 40 * 25). A full-time 40h contract gets 25 days.
func (e Employee) AnnualLeaveDays() int {
	fullTime := decimal.NewFromInt(40)
	days := e.ContractHours.Div(fullTime).Mul(decimal.NewFromInt(25))
	return int(days.Round(0).IntPart())
}

// AnnualLeaveHours is the allocation in hours, always AnnualLeaveDays * 8.
func (e Employee) AnnualLeaveHours() int {
	return e.AnnualLeaveDays() * 8
}
