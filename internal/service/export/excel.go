package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tracktm/internal/service/billing"
)

// DetailedReportXLSX renders the detailed report as a spreadsheet: one
// block per category, then the labor breakdown and project totals.
func DetailedReportXLSX(report *billing.DetailedReport, companyName, jobName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Detailed Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	sectionStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	rowNum := 1
	setRow := func(style int, values ...interface{}) {
		for i, v := range values {
			f.SetCellValue(sheet, cellName(i+1, rowNum), v)
		}
		if style != 0 && len(values) > 0 {
			f.SetCellStyle(sheet, cellName(1, rowNum), cellName(len(values), rowNum), style)
		}
		rowNum++
	}

	setRow(sectionStyle, companyName)
	setRow(sectionStyle, "DETAILED T&M REPORT")
	setRow(0, "Job Number:", report.JobNumber)
	if jobName != "" {
		setRow(0, "Job Name:", jobName)
	}
	if report.StartDate != "" || report.EndDate != "" {
		setRow(0, "Date Range:", fmt.Sprintf("%s - %s", report.StartDate, report.EndDate))
	}
	rowNum++

	for _, block := range report.Categories {
		setRow(sectionStyle, block.Category)
		setRow(headerStyle, "Item", "Unit", "Unit Price", "Quantity", "Amount")
		for _, item := range block.Items {
			setRow(0, item.Name, item.Unit, item.UnitPrice, item.Quantity, item.Amount)
		}
		setRow(sectionStyle, "Subtotal", "", "", "", block.Subtotal)
		rowNum++
	}
	setRow(sectionStyle, "Materials Grand Total", "", "", "", report.MaterialsTotal)
	rowNum++

	if len(report.Labor) > 0 {
		setRow(sectionStyle, "LABOR")
		for _, group := range report.Labor {
			setRow(sectionStyle, group.Name)
			setRow(headerStyle, "Employee", "Reg Hours", "OT Hours", "Night", "Amount")
			if len(group.Detail) > 0 {
				for _, d := range group.Detail {
					night := "No"
					if d.NightShift {
						night = "Yes"
					}
					setRow(0, d.EmployeeName, d.RegularHours, d.OvertimeHours, night, d.Amount)
				}
			} else {
				setRow(0, group.Name, group.RegularHours, group.OvertimeHours, "", group.Amount)
			}
			setRow(sectionStyle, "Subtotal", "", "", "", group.Amount)
			rowNum++
		}
		setRow(sectionStyle, "Labor Grand Total", "", "", "", report.LaborTotal)
		rowNum++
	}

	setRow(sectionStyle, "GRAND TOTAL", "", "", "", report.GrandTotal)

	f.SetColWidth(sheet, "A", "E", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
