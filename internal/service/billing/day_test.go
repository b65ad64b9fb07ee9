package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tracktm/internal/storage"
)

func TestComputeDayTotal_SingleMaterial(t *testing.T) {
	entry := storage.DailyEntry{
		JobNumber: "100",
		EntryDate: "2024-06-01",
		Materials: []storage.MaterialLineItem{
			{MaterialName: "Mek - 5 Gal", Quantity: 10, UnitPrice: 2.50},
		},
	}

	total := ComputeDayTotal(entry)

	assert.InDelta(t, 25.00, total.MaterialsTotal, 1e-9)
	assert.InDelta(t, 25.00, total.GrandTotal, 1e-9)
	assert.Equal(t, 1, total.ItemCount)
}

func TestComputeDayTotal_ZeroQuantityLinesExcluded(t *testing.T) {
	entry := storage.DailyEntry{
		JobNumber: "100",
		EntryDate: "2024-06-01",
		Materials: []storage.MaterialLineItem{
			{MaterialName: "Ear Plugs", Quantity: 0, UnitPrice: 0.25},
			{MaterialName: "Head Socks", Quantity: 4, UnitPrice: 1.20},
		},
		Equipment: []storage.EquipmentLineItem{
			{EquipmentName: "Power Washer", Quantity: 0, UnitRate: 72.00},
		},
		Labor: []storage.LaborLineItem{
			{RoleName: "Painter", RegularHours: 0, OvertimeHours: 0, StraightRate: 139.41},
		},
	}

	total := ComputeDayTotal(entry)

	assert.Equal(t, 1, total.ItemCount)
	assert.InDelta(t, 4.80, total.GrandTotal, 1e-9)
	assert.Zero(t, total.EquipmentTotal)
	assert.Zero(t, total.LaborTotal)
}

func TestComputeDayTotal_AllKinds(t *testing.T) {
	entry := storage.DailyEntry{
		JobNumber: "2507",
		EntryDate: "2025-11-24",
		Materials: []storage.MaterialLineItem{
			{MaterialName: "Acrolon 100 HS", Quantity: 2, UnitPrice: 100.00},
		},
		Equipment: []storage.EquipmentLineItem{
			{EquipmentName: "Honda Generator", Pieces: 1, Quantity: 1, UnitRate: 62.00},
		},
		Labor: []storage.LaborLineItem{
			{RoleName: "Supervisor", RegularHours: 10, StraightRate: 141.41, OvertimeRate: 182.80},
		},
		Employees: []storage.EmployeeLaborLineItem{
			{EmployeeName: "Tim Mladek", RegularHours: 8,
				RegularRate: 30.00, OvertimeRate: 45.00, HealthWelfare: 5.00, Pension: 3.00},
		},
	}

	total := ComputeDayTotal(entry)

	assert.InDelta(t, 200.00, total.MaterialsTotal, 1e-9)
	assert.InDelta(t, 62.00, total.EquipmentTotal, 1e-9)
	assert.InDelta(t, 10*141.41+304.00, total.LaborTotal, 1e-9)
	assert.InDelta(t, total.MaterialsTotal+total.EquipmentTotal+total.LaborTotal, total.GrandTotal, 1e-9)
	assert.Equal(t, 4, total.ItemCount)
}
