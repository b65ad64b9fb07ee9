package export

import (
	"fmt"
	"strings"

	"tracktm/internal/constants"
	"tracktm/internal/service/billing"
	"tracktm/internal/storage"
)

// Con9CSV exports a single daily entry in the layout of the Con9 daily
// report form: labor rows with per-row amounts, the five-line labor
// summary, materials with 15% markup, equipment, and contractor totals.
// Insurance & taxes (item 4) stays a manual entry on the form.
func Con9CSV(entry storage.DailyEntry, companyName, jobName string) string {
	var b strings.Builder

	row(&b, "CON9 DAILY REPORT EXPORT")
	row(&b, "Job Number:", entry.JobNumber)
	row(&b, "Job Name:", jobName)
	row(&b, "Date:", entry.EntryDate)
	row(&b, "Contractor:", companyName)
	row(&b)

	row(&b, "LABOR SECTION")
	row(&b, "Class", "Employee", "Total Hours", "Regular Rate", "OT Rate",
		"Regular Hours", "OT Hours", "Regular Amount", "OT Amount", "Total Amount")

	var laborTotal, totalHours float64

	writeLabor := func(class, employee string, regHours, otHours, regRate, otRate float64, nightShift bool) {
		reg, ot := billing.EffectiveRates(regRate, otRate, nightShift)
		regAmount := regHours * reg
		otAmount := otHours * ot
		total := regAmount + otAmount
		hours := regHours + otHours

		laborTotal += total
		totalHours += hours

		row(&b, class, employee, qty(hours), money(reg), money(ot),
			qty(regHours), qty(otHours), money(regAmount), money(otAmount), money(total))
	}

	for _, item := range entry.Labor {
		if !billing.IncludableLabor(item.RegularHours, item.OvertimeHours) {
			continue
		}
		writeLabor(item.RoleName, item.EmployeeName, item.RegularHours, item.OvertimeHours,
			item.StraightRate, item.OvertimeRate, item.NightShift)
	}
	for _, item := range entry.Employees {
		if !billing.IncludableLabor(item.RegularHours, item.OvertimeHours) {
			continue
		}
		writeLabor(item.Union, item.EmployeeName, item.RegularHours, item.OvertimeHours,
			item.RegularRate, item.OvertimeRate, item.NightShift)
	}

	row(&b)
	row(&b, "LABOR SUMMARY")
	row(&b, "Description", "Calculation", "Amount")
	row(&b, "1. Total Labor", "", money(laborTotal))

	healthWelfare := totalHours * constants.Con9HealthWelfareRate
	row(&b, "2. Health & Welfare",
		fmt.Sprintf("%s hrs x $%.2f/hr", qty(totalHours), constants.Con9HealthWelfareRate),
		money(healthWelfare))

	pension := totalHours * constants.Con9PensionRate
	row(&b, "3. Pension",
		fmt.Sprintf("%s hrs x $%.2f/hr", qty(totalHours), constants.Con9PensionRate),
		money(pension))

	row(&b, "4. Insurance & Taxes on Item 1", "Manual Entry Required", "")

	subtotal123 := laborTotal + healthWelfare + pension
	markup := subtotal123 * constants.Con9MarkupPercent
	row(&b, "5. 20% of Items 1+2+3", fmt.Sprintf("20%% x %s", money(subtotal123)), money(markup))

	laborSubtotal := subtotal123 + markup
	row(&b, "LABOR SUBTOTAL (without Item 4)", "", money(laborSubtotal))
	row(&b)

	row(&b, "MATERIALS SECTION")
	row(&b, "Description", "Quantity", "Unit", "Unit Price", "Amount")

	var materialsTotal float64
	for _, item := range entry.Materials {
		if !billing.IncludableMaterial(item) {
			continue
		}
		total := billing.MaterialTotal(item)
		materialsTotal += total
		row(&b, item.MaterialName, qty(item.Quantity), item.Unit, money(item.UnitPrice), money(total))
	}

	row(&b)
	row(&b, "MATERIALS SUMMARY")
	row(&b, "Description", "Calculation", "Amount")
	row(&b, "Material Total", "", money(materialsTotal))

	materialsMarkup := materialsTotal * constants.Con9MaterialMarkup
	row(&b, "15% Material Markup", fmt.Sprintf("15%% x %s", money(materialsTotal)), money(materialsMarkup))

	materialsSubtotal := materialsTotal + materialsMarkup
	row(&b, "MATERIALS SUBTOTAL", "", money(materialsSubtotal))
	row(&b)

	row(&b, "EQUIPMENT SECTION")
	row(&b, "Description", "Size & Class", "Pieces", "Hours", "Rate", "Rate Type", "Amount")

	var equipmentTotal float64
	for _, item := range entry.Equipment {
		if !billing.IncludableEquipment(item) {
			continue
		}
		pieces := item.Pieces
		if pieces < 1 {
			pieces = 1
		}
		total := billing.EquipmentTotal(item)
		equipmentTotal += total
		row(&b, item.EquipmentName, "", qty(pieces), qty(item.Quantity),
			money(item.UnitRate), item.Unit, money(total))
	}

	row(&b)
	row(&b, "EQUIPMENT SUMMARY")
	row(&b, "Description", "Amount")
	row(&b, "Equipment Total", money(equipmentTotal))
	row(&b)

	row(&b, "CONTRACTOR TOTAL")
	row(&b, "Labor Subtotal (without Item 4)", money(laborSubtotal))
	row(&b, "Materials Subtotal", money(materialsSubtotal))
	row(&b, "Equipment Total", money(equipmentTotal))
	row(&b)
	row(&b, "NOTE: Add Insurance & Taxes (Item 4) manually to get final total")
	row(&b, "Subtotal Before Item 4", money(laborSubtotal+materialsSubtotal+equipmentTotal))

	return b.String()
}

// Con9Filename names the Con9 export for one job day.
func Con9Filename(jobNumber, entryDate string) string {
	return fmt.Sprintf("Con9_%s_%s.csv", jobNumber, entryDate)
}
