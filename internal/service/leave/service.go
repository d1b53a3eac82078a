package leave

import (
	"github.com/verlof-hq/leave-backend-go/internal/domain/employee"
	"github.com/verlof-hq/leave-backend-go/internal/domain/leave"
	"github.com/verlof-hq/leave-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	leave.LeaveBalanceRepository
	leave.SpecialLeaveUsageRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	db *database.DB,
	leaveRepository leave.LeaveRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	specialLeaveUsageRepository leave.SpecialLeaveUsageRepository,
	employeeRepository employee.EmployeeRepository,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		db:                          db,
		LeaveRepository:             leaveRepository,
		LeaveBalanceRepository:      leaveBalanceRepository,
		SpecialLeaveUsageRepository: specialLeaveUsageRepository,
		EmployeeRepository:          employeeRepository,
	}
}

func toLeaveResponse(lv leave.Leave) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		LeaveID:          lv.LeaveID,
		LeaveLabel:       lv.LeaveLabel,
		EmployeeID:       lv.EmployeeID,
		StartOfLeave:     lv.StartOfLeave,
		EndOfLeave:       lv.EndOfLeave,
		ApproverID:       lv.ApproverID,
		Status:           lv.Status,
		LeaveType:        lv.LeaveType,
		SpecialLeaveType: lv.SpecialLeaveType,
		TotalHours:       lv.TotalHours,
		CreatedAt:        lv.CreatedAt,
		UpdatedAt:        lv.UpdatedAt,
	}

	if lv.EmployeeName != nil {
		resp.Employee = &leave.EmployeeSummary{
			EmployeeID: lv.EmployeeID,
			Name:       *lv.EmployeeName,
		}
	}
	if lv.ApproverID != nil && lv.ApproverName != nil {
		resp.Approver = &leave.EmployeeSummary{
			EmployeeID: *lv.ApproverID,
			Name:       *lv.ApproverName,
		}
	}

	return resp
}

func toLeaveResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		responses = append(responses, toLeaveResponse(lv))
	}
	return responses
}
