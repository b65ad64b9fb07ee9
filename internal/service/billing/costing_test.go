package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tracktm/internal/storage"
)

func TestMaterialTotal(t *testing.T) {
	item := storage.MaterialLineItem{Quantity: 10, UnitPrice: 2.50}

	assert.InDelta(t, 25.00, MaterialTotal(item), 1e-9)
}

func TestMaterialTotal_FractionalQuantity(t *testing.T) {
	item := storage.MaterialLineItem{Quantity: 2.5, UnitPrice: 19.85}

	assert.InDelta(t, 49.625, MaterialTotal(item), 1e-9)
}

func TestEquipmentTotal(t *testing.T) {
	item := storage.EquipmentLineItem{Pieces: 2, Quantity: 3, UnitRate: 62.00}

	assert.InDelta(t, 372.00, EquipmentTotal(item), 1e-9)
}

func TestEquipmentTotal_PiecesDefaultsToOne(t *testing.T) {
	// Missing and invalid pieces both count as a single piece, including
	// historical entries saved before the field existed.
	missing := storage.EquipmentLineItem{Quantity: 4, UnitRate: 72.00}
	invalid := storage.EquipmentLineItem{Pieces: 0.5, Quantity: 4, UnitRate: 72.00}

	assert.InDelta(t, 288.00, EquipmentTotal(missing), 1e-9)
	assert.InDelta(t, 288.00, EquipmentTotal(invalid), 1e-9)
}

func TestLaborTotal_DayShift(t *testing.T) {
	item := storage.LaborLineItem{
		RegularHours: 8, OvertimeHours: 0,
		StraightRate: 20.00, OvertimeRate: 30.00,
	}

	assert.InDelta(t, 160.00, LaborTotal(item), 1e-9)
}

func TestLaborTotal_NightShift(t *testing.T) {
	item := storage.LaborLineItem{
		RegularHours: 8, OvertimeHours: 0, NightShift: true,
		StraightRate: 20.00, OvertimeRate: 30.00,
	}

	// 8 x (20 + 2)
	assert.InDelta(t, 176.00, LaborTotal(item), 1e-9)
}

func TestLaborTotal_WithOvertime(t *testing.T) {
	item := storage.LaborLineItem{
		RegularHours: 8, OvertimeHours: 2,
		StraightRate: 139.41, OvertimeRate: 180.80,
	}

	assert.InDelta(t, 8*139.41+2*180.80, LaborTotal(item), 1e-9)
}

func TestEmployeeLaborTotal_BurdenedScenario(t *testing.T) {
	// 8 reg hours at $30, H&W $5/hr, pension $3/hr, no OT, no night.
	item := storage.EmployeeLaborLineItem{
		RegularHours: 8,
		RegularRate:  30.00, OvertimeRate: 45.00,
		HealthWelfare: 5.00, Pension: 3.00,
	}

	assert.InDelta(t, 240.00, EmployeeWageCost(item), 1e-9)
	assert.InDelta(t, 64.00, EmployeeBenefitCost(item), 1e-9)
	assert.InDelta(t, 304.00, EmployeeLaborTotal(item), 1e-9)
}

func TestEmployeeBenefitCost_ImmuneToNightShift(t *testing.T) {
	day := storage.EmployeeLaborLineItem{
		RegularHours: 6, OvertimeHours: 2,
		RegularRate: 30.00, OvertimeRate: 45.00,
		HealthWelfare: 12.75, Pension: 13.33,
	}
	night := day
	night.NightShift = true

	assert.InDelta(t, EmployeeBenefitCost(day), EmployeeBenefitCost(night), 1e-9)
	assert.Greater(t, EmployeeWageCost(night), EmployeeWageCost(day))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 1234.56, ParseAmount("$1,234.56"))
	assert.Equal(t, 8.0, ParseAmount(" 8 "))
	assert.Equal(t, 0.25, ParseAmount("0.25"))
	// Malformed values degrade to zero instead of failing the report.
	assert.Equal(t, 0.0, ParseAmount("n/a"))
	assert.Equal(t, 0.0, ParseAmount(""))
}
