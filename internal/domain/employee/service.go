package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
}

type EmployeeResponse struct {
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	ManagerID     *string         `json:"manager_id,omitempty"`
	ContractHours decimal.Decimal `json:"contract_hours"`
	IsManager     bool            `json:"is_manager"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
