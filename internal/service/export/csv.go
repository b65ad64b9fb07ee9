package export

import (
	"fmt"
	"strings"
	"time"

	"tracktm/internal/service/billing"
)

// CSV rendering of aggregated reports. Currency renders as $ plus a fixed
// two-decimal value with no thousands separators so spreadsheet imports
// parse it as a number.

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// qty renders whole quantities without decimals, fractional ones with
// exactly two.
func qty(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// csvField quotes a text field only when it needs it.
func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func row(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvField(f))
	}
	b.WriteByte('\n')
}

// weekdayAbbrev returns the three-letter weekday for an ISO date, or an
// empty string when the date does not parse.
func weekdayAbbrev(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

func header(b *strings.Builder, companyName, title, jobNumber, jobName string) {
	row(b, companyName)
	row(b, title)
	row(b, "Job Number:", jobNumber)
	if jobName != "" {
		row(b, "Job Name:", jobName)
	}
	row(b, "Generated:", time.Now().Format("2006-01-02"))
	row(b)
}

// SummaryCSV renders a report summary: header block, SUMMARY block and the
// per-day breakdown table with a totals row.
func SummaryCSV(summary *billing.ReportSummary, companyName, jobName string) string {
	var b strings.Builder

	header(&b, companyName, "TIME & MATERIALS SUMMARY REPORT", summary.JobNumber, jobName)

	row(&b, "SUMMARY")
	row(&b, "Total Days:", fmt.Sprintf("%d", summary.TotalDays))
	row(&b, "Grand Total:", money(summary.GrandTotal))
	row(&b)

	row(&b, "DAILY BREAKDOWN")
	row(&b, "Date", "Day", "Items", "Total")
	itemCount := 0
	for _, day := range summary.Days {
		row(&b, day.EntryDate, weekdayAbbrev(day.EntryDate),
			fmt.Sprintf("%d", day.ItemCount), money(day.DayTotal))
		itemCount += day.ItemCount
	}
	row(&b, "TOTAL", "", fmt.Sprintf("%d", itemCount), money(summary.GrandTotal))

	return b.String()
}

// DetailedCSV renders the category/role breakdown. When the report has no
// labor the labor section and project totals block are dropped and a plain
// grand total line is emitted instead.
func DetailedCSV(report *billing.DetailedReport, companyName, jobName string) string {
	var b strings.Builder

	header(&b, companyName, "DETAILED T&M REPORT", report.JobNumber, jobName)

	row(&b, "MATERIALS BREAKDOWN")
	for _, block := range report.Categories {
		row(&b, block.Category)
		row(&b, "Item", "Unit", "Unit Price", "Quantity", "Amount")
		for _, item := range block.Items {
			row(&b, item.Name, item.Unit, money(item.UnitPrice), qty(item.Quantity), money(item.Amount))
		}
		row(&b, "Subtotal:", "", "", "", money(block.Subtotal))
		row(&b)
	}
	row(&b, "Materials Grand Total:", "", "", "", money(report.MaterialsTotal))
	row(&b)

	if len(report.Labor) == 0 {
		row(&b, "GRAND TOTAL:", money(report.GrandTotal))
		return b.String()
	}

	row(&b, "LABOR BREAKDOWN")
	for _, group := range report.Labor {
		row(&b, group.Name)
		if len(group.Detail) > 0 {
			row(&b, "Employee", "Reg Hours", "OT Hours", "Night", "Amount")
			for _, d := range group.Detail {
				night := "No"
				if d.NightShift {
					night = "Yes"
				}
				row(&b, d.EmployeeName, qty(d.RegularHours), qty(d.OvertimeHours), night, money(d.Amount))
			}
		} else {
			row(&b, "Role", "Reg Hours", "OT Hours", "", "Amount")
			row(&b, group.Name, qty(group.RegularHours), qty(group.OvertimeHours), "", money(group.Amount))
		}
		row(&b, "Subtotal:", "", "", "", money(group.Amount))
		row(&b)
	}
	row(&b, "Labor Grand Total:", "", "", "", money(report.LaborTotal))
	row(&b)

	row(&b, "PROJECT TOTALS")
	row(&b, "Materials & Equipment:", money(report.MaterialsTotal))
	row(&b, "Labor:", money(report.LaborTotal))
	row(&b, "GRAND TOTAL:", money(report.GrandTotal))

	return b.String()
}
