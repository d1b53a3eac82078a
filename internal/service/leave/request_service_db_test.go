package leave

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
	"github.com/verlof-hq/leave-backend-go/internal/repository/postgresql"
)

// Transactional flows need a real database; set TEST_DATABASE_URL to a
// migrated instance to run these.

var testLeaveDB *database.DB

func leaveTestInit(t *testing.T) *LeaveServiceImpl {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testLeaveDB == nil {
		var err error
		testLeaveDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}

	employeeRepo := postgresql.NewEmployeeRepository(testLeaveDB)
	leaveRepo := postgresql.NewLeaveRepository(testLeaveDB)
	balanceRepo := postgresql.NewLeaveBalanceRepository(testLeaveDB)
	usageRepo := postgresql.NewSpecialLeaveUsageRepository(testLeaveDB)

	return NewLeaveService(testLeaveDB, leaveRepo, balanceRepo, usageRepo, employeeRepo)
}

func truncateLeaveTables(t *testing.T, ctx context.Context) {
	tables := []string{"special_leave_usages", "leaves", "leave_balances", "employees"}
	for _, table := range tables {
		_, err := testLeaveDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func seedLeaveTestEmployees(t *testing.T, ctx context.Context, svc *LeaveServiceImpl, contractHours int64) {
	managerID := "K000001"
	_, err := svc.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeID:    managerID,
		Name:          "Test Manager",
		IsManager:     true,
		ContractHours: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	_, err = svc.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeID:    "K012345",
		Name:          "Test Employee",
		ManagerID:     &managerID,
		ContractHours: decimal.NewFromInt(contractHours),
	})
	require.NoError(t, err)
}

// nextMonday returns the first Monday at least the given number of days out,
// at 09:00 UTC.
func nextMonday(daysAhead int) time.Time {
	day := time.Now().UTC().AddDate(0, 0, daysAhead)
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC)
}

func seedBalance(t *testing.T, ctx context.Context, svc *LeaveServiceImpl, year, totalHours int) {
	_, err := svc.LeaveBalanceRepository.Create(ctx, leave.LeaveBalance{
		EmployeeID: "K012345",
		Year:       year,
		TotalDays:  totalHours / 8,
		TotalHours: totalHours,
	})
	require.NoError(t, err)
}

func TestCreateLeaveDB(t *testing.T) {
	svc := leaveTestInit(t)
	ctx := context.Background()
	truncateLeaveTables(t, ctx)
	seedLeaveTestEmployees(t, ctx, svc, 40)

	start := nextMonday(7)
	end := start.AddDate(0, 0, 4)
	seedBalance(t, ctx, svc, start.Year(), 200)

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		LeaveLabel:   "Summer vacation",
		EmployeeID:   "K012345",
		StartOfLeave: start.Format(time.RFC3339),
		EndOfLeave:   end.Format(time.RFC3339),
	})
	require.NoError(t, err)

	assert.Equal(t, leave.LeaveStatusRequested, created.Leave.Status)
	assert.Equal(t, leave.LeaveTypeRegular, created.Leave.LeaveType)
	assert.Equal(t, 40, created.Leave.TotalHours)
	require.NotNil(t, created.Leave.ApproverID)
	assert.Equal(t, "K000001", *created.Leave.ApproverID)
	assert.Empty(t, created.Warnings)

	// same interval again collides with the pending request
	_, err = svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		LeaveLabel:   "Double booking",
		EmployeeID:   "K012345",
		StartOfLeave: start.Format(time.RFC3339),
		EndOfLeave:   end.Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestCreateLeaveWithoutBalanceDB(t *testing.T) {
	svc := leaveTestInit(t)
	ctx := context.Background()
	truncateLeaveTables(t, ctx)
	seedLeaveTestEmployees(t, ctx, svc, 40)

	start := nextMonday(7)

	_, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		LeaveLabel:   "vacation",
		EmployeeID:   "K012345",
		StartOfLeave: start.Format(time.RFC3339),
		EndOfLeave:   start.AddDate(0, 0, 1).Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, leave.ErrNoCurrentYearBalance)
}

func TestCreateLeaveInsufficientBalanceDB(t *testing.T) {
	svc := leaveTestInit(t)
	ctx := context.Background()
	truncateLeaveTables(t, ctx)
	seedLeaveTestEmployees(t, ctx, svc, 40)

	start := nextMonday(7)
	seedBalance(t, ctx, svc, start.Year(), 40)

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		LeaveLabel:   "First week",
		EmployeeID:   "K012345",
		StartOfLeave: start.Format(time.RFC3339),
		EndOfLeave:   start.AddDate(0, 0, 2).Format(time.RFC3339),
	})
	require.NoError(t, err)

	_, err = svc.UpdateLeaveStatus(ctx, created.Leave.LeaveID, leave.UpdateLeaveStatusRequest{
		Status:     "APPROVED",
		ApproverID: "K000001",
	})
	require.NoError(t, err)

	// 24h approved of 40h total; a full week no longer fits
	nextStart := start.AddDate(0, 0, 7)
	_, err = svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		LeaveLabel:   "Second week",
		EmployeeID:   "K012345",
		StartOfLeave: nextStart.Format(time.RFC3339),
		EndOfLeave:   nextStart.AddDate(0, 0, 4).Format(time.RFC3339),
	})

	var balanceErr *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &balanceErr)
	assert.Equal(t, 40, balanceErr.Requested)
	assert.Equal(t, 16, balanceErr.Available)
	assert.Equal(t, 40, balanceErr.Total)
}

func TestApproveSpecialLeaveRecordsUsageDB(t *testing.T) {
	svc := leaveTestInit(t)
	ctx := context.Background()
	truncateLeaveTables(t, ctx)
	seedLeaveTestEmployees(t, ctx, svc, 40)

	start := nextMonday(15)

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		LeaveLabel:       "Moving day",
		EmployeeID:       "K012345",
		StartOfLeave:     start.Format(time.RFC3339),
		EndOfLeave:       start.Add(8 * time.Hour).Format(time.RFC3339),
		LeaveType:        "SPECIAL",
		SpecialLeaveType: "MOVING",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateLeaveStatus(ctx, created.Leave.LeaveID, leave.UpdateLeaveStatusRequest{
		Status:     "APPROVED",
		ApproverID: "K000001",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveStatusApproved, updated.Status)

	usage, err := svc.SpecialLeaveUsageRepository.GetByEmployeeYearType(ctx, "K012345", start.Year(), leave.SpecialLeaveMoving)
	require.NoError(t, err)
	assert.Equal(t, 8, usage.UsedHours)
	assert.Equal(t, 1, usage.UsedDays)
	assert.Equal(t, 8, usage.MaxHours)

	// the MOVING cap is exhausted for this year
	nextStart := start.AddDate(0, 0, 7)
	_, err = svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		LeaveLabel:       "Moving again",
		EmployeeID:       "K012345",
		StartOfLeave:     nextStart.Format(time.RFC3339),
		EndOfLeave:       nextStart.Add(8 * time.Hour).Format(time.RFC3339),
		LeaveType:        "SPECIAL",
		SpecialLeaveType: "MOVING",
	})

	var limitErr *leave.LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, leave.SpecialLeaveMoving, limitErr.SpecialLeaveType)
	assert.Equal(t, 8, limitErr.MaxHours)
}
