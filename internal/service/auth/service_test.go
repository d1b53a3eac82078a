package auth

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verlof-hq/leave-backend-go/internal/domain/auth"
	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, employeeID string) (employee.Employee, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByManagerID(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.EmployeeID] = emp
	return emp, nil
}

func newTestAuthService() *AuthServiceImpl {
	repo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"K012345": {
			EmployeeID:    "K012345",
			Name:          "Mohammad Farhadi",
			ContractHours: decimal.NewFromInt(40),
		},
	}}
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(repo, jwtService)
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc := newTestAuthService()

	resp, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "K012345"})
	require.NoError(t, err)

	assert.Equal(t, "K012345", resp.User.EmployeeID)
	assert.Equal(t, "Mohammad Farhadi", resp.User.Name)
	assert.False(t, resp.User.IsManager)
	assert.NotEmpty(t, resp.Token)
	assert.NotZero(t, resp.ExpiresAt)
}

func TestLoginUnknownEmployee(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{EmployeeID: "K099999"})
	assert.ErrorIs(t, err, auth.ErrInvalidEmployeeID)
}

func TestLoginMissingEmployeeID(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	require.Error(t, err)
}
