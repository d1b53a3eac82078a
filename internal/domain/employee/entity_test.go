package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnnualLeaveAllocation(t *testing.T) {
	cases := []struct {
		contractHours int64
		wantDays      int
		wantHours     int
	}{
		{40, 25, 200},
		{32, 20, 160},
		{36, 23, 184}, // 36/40*25 = 22.5, rounds up
		{20, 13, 104}, // 20/40*25 = 12.5, rounds up
		{0, 0, 0},
	}

	for _, c := range cases {
		emp := Employee{ContractHours: decimal.NewFromInt(c.contractHours)}
		assert.Equal(t, c.wantDays, emp.AnnualLeaveDays(), "days for %dh contract", c.contractHours)
		assert.Equal(t, c.wantHours, emp.AnnualLeaveHours(), "hours for %dh contract", c.contractHours)
	}
}
