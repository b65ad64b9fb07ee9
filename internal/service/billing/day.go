package billing

import "tracktm/internal/storage"

// DayTotal is the collapsed result of one daily entry.
type DayTotal struct {
	MaterialsTotal float64 `json:"materials_total"`
	EquipmentTotal float64 `json:"equipment_total"`
	LaborTotal     float64 `json:"labor_total"`
	GrandTotal     float64 `json:"grand_total"`
	ItemCount      int     `json:"item_count"`
}

// Includable reports whether a line item carries any billable quantity.
// Zero-quantity lines are dropped before persistence and excluded from
// totals and item counts.

func IncludableMaterial(item storage.MaterialLineItem) bool {
	return item.Quantity > 0
}

func IncludableEquipment(item storage.EquipmentLineItem) bool {
	return item.Quantity > 0
}

func IncludableLabor(regularHours, overtimeHours float64) bool {
	return regularHours > 0 || overtimeHours > 0
}

// ComputeDayTotal collapses one daily entry into per-kind subtotals, a day
// grand total and a display item count. Labor covers both fixed-rate role
// lines and burdened employee lines.
func ComputeDayTotal(entry storage.DailyEntry) DayTotal {
	var t DayTotal

	for _, item := range entry.Materials {
		if !IncludableMaterial(item) {
			continue
		}
		t.MaterialsTotal += MaterialTotal(item)
		t.ItemCount++
	}

	for _, item := range entry.Equipment {
		if !IncludableEquipment(item) {
			continue
		}
		t.EquipmentTotal += EquipmentTotal(item)
		t.ItemCount++
	}

	for _, item := range entry.Labor {
		if !IncludableLabor(item.RegularHours, item.OvertimeHours) {
			continue
		}
		t.LaborTotal += LaborTotal(item)
		t.ItemCount++
	}

	for _, item := range entry.Employees {
		if !IncludableLabor(item.RegularHours, item.OvertimeHours) {
			continue
		}
		t.LaborTotal += EmployeeLaborTotal(item)
		t.ItemCount++
	}

	t.GrandTotal = t.MaterialsTotal + t.EquipmentTotal + t.LaborTotal
	return t
}
