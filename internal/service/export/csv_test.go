package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tracktm/internal/service/billing"
)

func TestMoneyAndQtyFormats(t *testing.T) {
	assert.Equal(t, "$0.00", money(0))
	assert.Equal(t, "$25.00", money(25))
	assert.Equal(t, "$1234.56", money(1234.555))

	assert.Equal(t, "10", qty(10))
	assert.Equal(t, "0", qty(0))
	assert.Equal(t, "2.50", qty(2.5))
}

func TestCSVFieldQuoting(t *testing.T) {
	assert.Equal(t, "plain", csvField("plain"))
	assert.Equal(t, `"a,b"`, csvField("a,b"))
	assert.Equal(t, `"say ""hi"""`, csvField(`say "hi"`))
	assert.Equal(t, "\"two\nlines\"", csvField("two\nlines"))
}

func TestWeekdayAbbrev(t *testing.T) {
	assert.Equal(t, "Sat", weekdayAbbrev("2024-06-01"))
	assert.Equal(t, "", weekdayAbbrev("06/01/2024"))
	assert.Equal(t, "", weekdayAbbrev(""))
}

func TestSummaryCSV(t *testing.T) {
	summary := &billing.ReportSummary{
		JobNumber:  "100",
		TotalDays:  2,
		GrandTotal: 75.00,
		Days: []billing.DaySummary{
			{EntryDate: "2024-06-01", ItemCount: 1, DayTotal: 25.00},
			{EntryDate: "2024-06-02", ItemCount: 2, DayTotal: 50.00},
		},
	}

	out := SummaryCSV(summary, "Tri-State Painting, LLC", "Pier 7")

	assert.Contains(t, out, `"Tri-State Painting, LLC"`)
	assert.Contains(t, out, "TIME & MATERIALS SUMMARY REPORT")
	assert.Contains(t, out, "Job Number:,100")
	assert.Contains(t, out, "Job Name:,Pier 7")
	assert.Contains(t, out, "Total Days:,2")
	assert.Contains(t, out, "Grand Total:,$75.00")
	assert.Contains(t, out, "2024-06-01,Sat,1,$25.00")
	assert.Contains(t, out, "2024-06-02,Sun,2,$50.00")
	assert.Contains(t, out, "TOTAL,,3,$75.00")
}

func TestSummaryCSV_OmitsEmptyJobName(t *testing.T) {
	summary := &billing.ReportSummary{JobNumber: "100"}

	out := SummaryCSV(summary, "Tri-State Painting, LLC", "")

	assert.NotContains(t, out, "Job Name:")
}

func TestDetailedCSV_WithLabor(t *testing.T) {
	report := &billing.DetailedReport{
		JobNumber: "100",
		TotalDays: 1,
		Categories: []billing.CategoryBlock{
			{
				Category: "MATERIALS",
				Items: []billing.ItemTotal{
					{Name: "Mek - 5 Gal", Category: "MATERIALS", Unit: "Gallon",
						UnitPrice: 19.85, Quantity: 2, Amount: 39.70},
				},
				Subtotal: 39.70,
			},
		},
		MaterialsTotal: 39.70,
		Labor: []billing.LaborGroup{
			{
				Name: "Painter", RegularHours: 8, Amount: 160.00,
				Detail: []billing.LaborDetail{
					{EmployeeName: "Tom Guy", RegularHours: 8, Amount: 160.00},
				},
			},
		},
		LaborTotal: 160.00,
		GrandTotal: 199.70,
	}

	out := DetailedCSV(report, "Tri-State Painting, LLC", "")

	assert.Contains(t, out, "MATERIALS BREAKDOWN")
	assert.Contains(t, out, "Mek - 5 Gal,Gallon,$19.85,2,$39.70")
	assert.Contains(t, out, "Subtotal:,,,,$39.70")
	assert.Contains(t, out, "Materials Grand Total:,,,,$39.70")
	assert.Contains(t, out, "LABOR BREAKDOWN")
	assert.Contains(t, out, "Tom Guy,8,0,No,$160.00")
	assert.Contains(t, out, "Labor Grand Total:,,,,$160.00")
	assert.Contains(t, out, "PROJECT TOTALS")
	assert.Contains(t, out, "GRAND TOTAL:,$199.70")
}

func TestDetailedCSV_NoLabor(t *testing.T) {
	report := &billing.DetailedReport{
		JobNumber:      "100",
		MaterialsTotal: 39.70,
		GrandTotal:     39.70,
	}

	out := DetailedCSV(report, "Tri-State Painting, LLC", "")

	assert.NotContains(t, out, "LABOR BREAKDOWN")
	assert.NotContains(t, out, "PROJECT TOTALS")
	assert.Contains(t, out, "GRAND TOTAL:,$39.70")
	// The grand total line closes the document.
	assert.True(t, strings.HasSuffix(out, "GRAND TOTAL:,$39.70\n"))
}

func TestDetailedCSV_RoleRowWithoutDetail(t *testing.T) {
	report := &billing.DetailedReport{
		JobNumber: "100",
		Labor: []billing.LaborGroup{
			{Name: "Laborer", RegularHours: 4, OvertimeHours: 2, Amount: 140.00},
		},
		LaborTotal: 140.00,
		GrandTotal: 140.00,
	}

	out := DetailedCSV(report, "Tri-State Painting, LLC", "")

	assert.Contains(t, out, "Laborer,4,2,,$140.00")
}
