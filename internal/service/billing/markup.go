package billing

import (
	"strings"

	"tracktm/internal/constants"
	"tracktm/internal/storage"
)

// MarkupTotals carries the simplified daily report math: 10% overhead plus
// 10% profit on materials and equipment, no markup on labor. Dehumidifier
// rental lines are billed at cost per the rate agreement.
type MarkupTotals struct {
	MaterialsBase         float64 `json:"materials_base"`
	MaterialsBaseNoMarkup float64 `json:"materials_base_no_markup"`
	MaterialsOverhead     float64 `json:"materials_oh"`
	MaterialsProfit       float64 `json:"materials_profit"`
	MaterialsTotal        float64 `json:"materials_total"`

	EquipmentBase         float64 `json:"equipment_base"`
	EquipmentBaseNoMarkup float64 `json:"equipment_base_no_markup"`
	EquipmentOverhead     float64 `json:"equipment_oh"`
	EquipmentProfit       float64 `json:"equipment_profit"`
	EquipmentTotal        float64 `json:"equipment_total"`

	LaborTotal float64 `json:"labor_total"`
	GrandTotal float64 `json:"grand_total"`
}

// IsDehumidifierRental matches the one line item exempt from markup.
func IsDehumidifierRental(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "dehumidifier") && strings.Contains(lower, "rental")
}

// ComputeMarkupTotals collapses one daily entry with markup applied.
func ComputeMarkupTotals(entry storage.DailyEntry) MarkupTotals {
	var t MarkupTotals

	for _, item := range entry.Materials {
		if !IncludableMaterial(item) {
			continue
		}
		if IsDehumidifierRental(item.MaterialName) {
			t.MaterialsBaseNoMarkup += MaterialTotal(item)
		} else {
			t.MaterialsBase += MaterialTotal(item)
		}
	}

	for _, item := range entry.Equipment {
		if !IncludableEquipment(item) {
			continue
		}
		if IsDehumidifierRental(item.EquipmentName) {
			t.EquipmentBaseNoMarkup += EquipmentTotal(item)
		} else {
			t.EquipmentBase += EquipmentTotal(item)
		}
	}

	for _, item := range entry.Labor {
		if IncludableLabor(item.RegularHours, item.OvertimeHours) {
			t.LaborTotal += LaborTotal(item)
		}
	}
	for _, item := range entry.Employees {
		if IncludableLabor(item.RegularHours, item.OvertimeHours) {
			t.LaborTotal += EmployeeLaborTotal(item)
		}
	}

	t.MaterialsOverhead = t.MaterialsBase * constants.OverheadPercent
	t.MaterialsProfit = t.MaterialsBase * constants.ProfitPercent
	t.MaterialsTotal = t.MaterialsBase + t.MaterialsOverhead + t.MaterialsProfit + t.MaterialsBaseNoMarkup

	t.EquipmentOverhead = t.EquipmentBase * constants.OverheadPercent
	t.EquipmentProfit = t.EquipmentBase * constants.ProfitPercent
	t.EquipmentTotal = t.EquipmentBase + t.EquipmentOverhead + t.EquipmentProfit + t.EquipmentBaseNoMarkup

	t.GrandTotal = t.MaterialsTotal + t.EquipmentTotal + t.LaborTotal
	return t
}
