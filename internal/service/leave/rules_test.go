package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
)

// fixed reference point: Thursday 2026-01-15 10:00 UTC
var testNow = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)

func day(dayOfMonth int) time.Time {
	return time.Date(2026, time.January, dayOfMonth, 9, 0, 0, 0, time.UTC)
}

func TestValidateLeaveRequestValid(t *testing.T) {
	// Mon 2026-02-02 to Fri 2026-02-06
	start := time.Date(2026, time.February, 2, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 6, 17, 0, 0, 0, time.UTC)

	result := ValidateLeaveRequest(testNow, start, end, leave.LeaveTypeRegular, nil)

	assert.True(t, result.Valid())
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.Warnings)
}

func TestValidateLeaveRequestStartAfterEnd(t *testing.T) {
	result := ValidateLeaveRequest(testNow, day(20), day(19), leave.LeaveTypeRegular, nil)

	assert.False(t, result.Valid())
	assert.Contains(t, result.Violations, "Start date must be before end date")

	// identical instants are invalid too
	result = ValidateLeaveRequest(testNow, day(20), day(20), leave.LeaveTypeRegular, nil)
	assert.Contains(t, result.Violations, "Start date must be before end date")
}

func TestValidateLeaveRequestInPast(t *testing.T) {
	result := ValidateLeaveRequest(testNow, day(10), day(12), leave.LeaveTypeRegular, nil)

	assert.False(t, result.Valid())
	assert.Contains(t, result.Violations, "Leave cannot be scheduled in the past")

	// starting exactly now is still "in the past"
	result = ValidateLeaveRequest(testNow, testNow, day(16), leave.LeaveTypeRegular, nil)
	assert.Contains(t, result.Violations, "Leave cannot be scheduled in the past")
}

func TestValidateLeaveRequestSpecialNeedsNotice(t *testing.T) {
	// Thu 2026-01-22 is only a week out
	moving := leave.SpecialLeaveMoving
	result := ValidateLeaveRequest(testNow, day(22), day(22).Add(8*time.Hour), leave.LeaveTypeSpecial, &moving)

	assert.False(t, result.Valid())
	assert.Contains(t, result.Violations, "Special leaves must be requested at least 2 weeks in advance")
}

func TestValidateLeaveRequestSpecialNeedsCategory(t *testing.T) {
	start := time.Date(2026, time.February, 16, 9, 0, 0, 0, time.UTC)
	result := ValidateLeaveRequest(testNow, start, start.Add(8*time.Hour), leave.LeaveTypeSpecial, nil)

	assert.False(t, result.Valid())
	assert.Contains(t, result.Violations, "Special leave type must be specified for special leaves")
}

func TestValidateLeaveRequestAccumulatesViolations(t *testing.T) {
	// past AND inverted AND special without category or notice
	result := ValidateLeaveRequest(testNow, day(12), day(10), leave.LeaveTypeSpecial, nil)

	assert.Len(t, result.Violations, 4)
}

func TestValidateLeaveRequestWeekendWarnings(t *testing.T) {
	// Sat 2026-02-07 to Sun 2026-02-08
	start := time.Date(2026, time.February, 7, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 8, 17, 0, 0, 0, time.UTC)

	result := ValidateLeaveRequest(testNow, start, end, leave.LeaveTypeRegular, nil)

	assert.True(t, result.Valid())
	assert.Contains(t, result.Warnings, "Leave starts on a weekend")
	assert.Contains(t, result.Warnings, "Leave ends on a weekend")
}

func TestCalculateWorkingHours(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "single weekday",
			start: time.Date(2026, time.January, 19, 9, 0, 0, 0, time.UTC), // Mon
			end:   time.Date(2026, time.January, 19, 17, 0, 0, 0, time.UTC),
			want:  8,
		},
		{
			name:  "full working week",
			start: time.Date(2026, time.January, 19, 9, 0, 0, 0, time.UTC), // Mon
			end:   time.Date(2026, time.January, 23, 17, 0, 0, 0, time.UTC), // Fri
			want:  40,
		},
		{
			name:  "spanning a weekend",
			start: time.Date(2026, time.January, 22, 9, 0, 0, 0, time.UTC), // Thu
			end:   time.Date(2026, time.January, 27, 17, 0, 0, 0, time.UTC), // Tue
			want:  32,
		},
		{
			name:  "weekend only",
			start: time.Date(2026, time.January, 24, 9, 0, 0, 0, time.UTC), // Sat
			end:   time.Date(2026, time.January, 25, 17, 0, 0, 0, time.UTC), // Sun
			want:  0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CalculateWorkingHours(c.start, c.end))
		})
	}
}

func TestCalculateWorkingHoursOrderIndependent(t *testing.T) {
	start := time.Date(2026, time.January, 19, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 23, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, CalculateWorkingHours(start, end), CalculateWorkingHours(end, start))
}

func TestSpecialLeaveLimit(t *testing.T) {
	fullTime := decimal.NewFromInt(40)

	cases := []struct {
		leaveType leave.SpecialLeaveType
		contract  decimal.Decimal
		want      Limit
	}{
		{leave.SpecialLeaveMoving, fullTime, Limit{MaxDays: 1, MaxHours: 8}},
		{leave.SpecialLeaveWedding, fullTime, Limit{MaxDays: 1, MaxHours: 8}},
		{leave.SpecialLeaveChildBirth, fullTime, Limit{MaxDays: 5, MaxHours: 40}},
		{leave.SpecialLeaveParentalCare, fullTime, Limit{MaxDays: 50, MaxHours: 400}},
		{leave.SpecialLeaveParentalCare, decimal.NewFromInt(32), Limit{MaxDays: 40, MaxHours: 320}},
	}

	for _, c := range cases {
		t.Run(string(c.leaveType), func(t *testing.T) {
			assert.Equal(t, c.want, SpecialLeaveLimit(c.leaveType, c.contract))
		})
	}
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 1, ceilDiv(8, 8))
	assert.Equal(t, 1, ceilDiv(4, 8))
	assert.Equal(t, 2, ceilDiv(9, 8))
	assert.Equal(t, 0, ceilDiv(0, 8))
}
