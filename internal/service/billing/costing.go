package billing

import (
	"strconv"
	"strings"

	"tracktm/internal/storage"
)

// Line costing. Totals are kept unrounded; rounding happens only at
// formatting time so category rollups don't accumulate rounding error.

func MaterialTotal(item storage.MaterialLineItem) float64 {
	return item.Quantity * item.UnitPrice
}

// EquipmentTotal multiplies by the pieces count. A missing or invalid
// pieces value (< 1) counts as a single piece, including for historical
// entries saved before the field existed.
func EquipmentTotal(item storage.EquipmentLineItem) float64 {
	pieces := item.Pieces
	if pieces < 1 {
		pieces = 1
	}
	return pieces * item.Quantity * item.UnitRate
}

func LaborTotal(item storage.LaborLineItem) float64 {
	reg, ot := EffectiveRates(item.StraightRate, item.OvertimeRate, item.NightShift)
	return item.RegularHours*reg + item.OvertimeHours*ot
}

// EmployeeWageCost is the wage portion of a burdened labor line.
func EmployeeWageCost(item storage.EmployeeLaborLineItem) float64 {
	reg, ot := EffectiveRates(item.RegularRate, item.OvertimeRate, item.NightShift)
	return item.RegularHours*reg + item.OvertimeHours*ot
}

// EmployeeBenefitCost is the burden portion: every worked hour accrues
// health & welfare plus pension at the employee's union rates.
func EmployeeBenefitCost(item storage.EmployeeLaborLineItem) float64 {
	return (item.RegularHours + item.OvertimeHours) * (item.HealthWelfare + item.Pension)
}

func EmployeeLaborTotal(item storage.EmployeeLaborLineItem) float64 {
	return EmployeeWageCost(item) + EmployeeBenefitCost(item)
}

// ParseAmount parses a money or quantity field from dirty historical data.
// Currency symbols, thousands separators and whitespace are tolerated; a
// value that still fails to parse degrades to zero so one bad field cannot
// block an otherwise valid report.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
