package leave

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
)

const (
	workingDayHours    = 8
	specialNoticeDays  = 14
	parentalCareFactor = 10
)

// ValidationResult accumulates the outcome of the business-rule checks.
// Violations block the request; warnings are returned alongside a success.
type ValidationResult struct {
	Violations []string
	Warnings   []string
}

func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

// ValidateLeaveRequest runs every rule and reports all violations at once so
// the caller can fix the whole request in one round trip.
func ValidateLeaveRequest(now, start, end time.Time, leaveType leave.LeaveType, specialType *leave.SpecialLeaveType) ValidationResult {
	var result ValidationResult

	if !start.Before(end) {
		result.Violations = append(result.Violations, "Start date must be before end date")
	}

	if !start.After(now) {
		result.Violations = append(result.Violations, "Leave cannot be scheduled in the past")
	}

	if leaveType == leave.LeaveTypeSpecial {
		if start.Before(now.AddDate(0, 0, specialNoticeDays)) {
			result.Violations = append(result.Violations, "Special leaves must be requested at least 2 weeks in advance")
		}
		if specialType == nil {
			result.Violations = append(result.Violations, "Special leave type must be specified for special leaves")
		}
	}

	if isWeekend(start) {
		result.Warnings = append(result.Warnings, "Leave starts on a weekend")
	}
	if isWeekend(end) {
		result.Warnings = append(result.Warnings, "Leave ends on a weekend")
	}

	return result
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CalculateWorkingHours counts the weekdays in the inclusive date range and
// multiplies by the 8-hour working day. Operands are normalized so the result
// does not depend on argument order.
func CalculateWorkingHours(start, end time.Time) int {
	if start.After(end) {
		start, end = end, start
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	workingDays := 0
	for !day.After(last) {
		if !isWeekend(day) {
			workingDays++
		}
		day = day.AddDate(0, 0, 1)
	}

	return workingDays * workingDayHours
}

// Limit is the yearly cap for a special-leave category.
type Limit struct {
	MaxDays  int
	MaxHours int
}

// SpecialLeaveLimit returns the cap for the category. Moving and wedding get a
// single day, child birth a full week. Parental care scales with the contract:
// ten times the weekly contract hours.
func SpecialLeaveLimit(t leave.SpecialLeaveType, contractHours decimal.Decimal) Limit {
	switch t {
	case leave.SpecialLeaveMoving, leave.SpecialLeaveWedding:
		return Limit{MaxDays: 1, MaxHours: workingDayHours}
	case leave.SpecialLeaveChildBirth:
		return Limit{MaxDays: 5, MaxHours: 5 * workingDayHours}
	case leave.SpecialLeaveParentalCare:
		maxHours := int(contractHours.Mul(decimal.NewFromInt(parentalCareFactor)).Round(0).IntPart())
		return Limit{MaxDays: maxHours / workingDayHours, MaxHours: maxHours}
	}
	return Limit{}
}

// ceilDiv rounds up, so a 4-hour half day still consumes a whole day.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
