package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateLeaveRequest {
	return CreateLeaveRequest{
		LeaveLabel:   "Summer vacation",
		EmployeeID:   "K012345",
		StartOfLeave: "2026-07-06T09:00:00Z",
		EndOfLeave:   "2026-07-10T17:00:00Z",
	}
}

func TestCreateLeaveRequestValidateOK(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())

	req.LeaveType = "SPECIAL"
	req.SpecialLeaveType = "WEDDING"
	assert.NoError(t, req.Validate())
}

func TestCreateLeaveRequestValidateAccumulates(t *testing.T) {
	req := CreateLeaveRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	assert.Contains(t, fields, "leave_label")
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "start_of_leave")
	assert.Contains(t, fields, "end_of_leave")
}

func TestCreateLeaveRequestValidateBadTimestamp(t *testing.T) {
	req := validCreateRequest()
	req.StartOfLeave = "2026-07-06"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "start_of_leave")
}

func TestCreateLeaveRequestValidateBadEnums(t *testing.T) {
	req := validCreateRequest()
	req.LeaveType = "SICK"
	req.SpecialLeaveType = "HOLIDAY"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "leave_type")
	assert.Contains(t, fields, "special_leave_type")
}

func TestCreateLeaveRequestResolvedType(t *testing.T) {
	req := validCreateRequest()
	assert.Equal(t, LeaveTypeRegular, req.ResolvedType())

	req.LeaveType = "SPECIAL"
	assert.Equal(t, LeaveTypeSpecial, req.ResolvedType())
}

func TestUpdateLeaveStatusRequestValidate(t *testing.T) {
	req := UpdateLeaveStatusRequest{Status: "APPROVED", ApproverID: "K000001"}
	assert.NoError(t, req.Validate())

	req.Status = "PENDING"
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Invalid status value", errs.ToMap()["status"])
}

func TestDeleteLeaveRequestValidate(t *testing.T) {
	req := DeleteLeaveRequest{EmployeeID: "K012345"}
	assert.NoError(t, req.Validate())

	req.EmployeeID = " "
	assert.Error(t, req.Validate())
}
