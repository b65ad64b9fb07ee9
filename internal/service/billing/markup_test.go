package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tracktm/internal/storage"
)

func TestIsDehumidifierRental(t *testing.T) {
	assert.True(t, IsDehumidifierRental("Dehumidifier Rental"))
	assert.True(t, IsDehumidifierRental("LGR 7000 dehumidifier weekly rental"))
	assert.False(t, IsDehumidifierRental("Dehumidifier"))
	assert.False(t, IsDehumidifierRental("Power Washer Rental"))
}

func TestComputeMarkupTotals_MaterialsMarkedUp(t *testing.T) {
	entry := storage.DailyEntry{
		Materials: []storage.MaterialLineItem{
			{MaterialName: "Mek - 5 Gal", Category: "MATERIALS", Quantity: 10, UnitPrice: 10.00},
		},
	}

	totals := ComputeMarkupTotals(entry)

	assert.InDelta(t, 100.00, totals.MaterialsBase, 1e-9)
	assert.InDelta(t, 10.00, totals.MaterialsOverhead, 1e-9)
	assert.InDelta(t, 10.00, totals.MaterialsProfit, 1e-9)
	assert.InDelta(t, 120.00, totals.MaterialsTotal, 1e-9)
	assert.InDelta(t, 120.00, totals.GrandTotal, 1e-9)
}

func TestComputeMarkupTotals_DehumidifierRentalExempt(t *testing.T) {
	entry := storage.DailyEntry{
		Equipment: []storage.EquipmentLineItem{
			{EquipmentName: "Dehumidifier Rental", Quantity: 1, UnitRate: 200.00},
			{EquipmentName: "Power Washer", Quantity: 1, UnitRate: 100.00},
		},
	}

	totals := ComputeMarkupTotals(entry)

	assert.InDelta(t, 100.00, totals.EquipmentBase, 1e-9)
	assert.InDelta(t, 200.00, totals.EquipmentBaseNoMarkup, 1e-9)
	// 100 + 10 + 10, plus the exempt 200 at cost.
	assert.InDelta(t, 320.00, totals.EquipmentTotal, 1e-9)
}

func TestComputeMarkupTotals_LaborUnmarked(t *testing.T) {
	entry := storage.DailyEntry{
		Labor: []storage.LaborLineItem{
			{RoleName: "Painter", RegularHours: 8, StraightRate: 20.00, OvertimeRate: 30.00},
		},
	}

	totals := ComputeMarkupTotals(entry)

	assert.InDelta(t, 160.00, totals.LaborTotal, 1e-9)
	assert.InDelta(t, 160.00, totals.GrandTotal, 1e-9)
}

func TestComputeMarkupTotals_SkipsZeroQuantityLines(t *testing.T) {
	entry := storage.DailyEntry{
		Materials: []storage.MaterialLineItem{
			{MaterialName: "Rags", Category: "CONSUMABLES", Quantity: 0, UnitPrice: 5.00},
		},
	}

	totals := ComputeMarkupTotals(entry)

	assert.Zero(t, totals.GrandTotal)
}
