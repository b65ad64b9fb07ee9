package billing

import (
	"errors"
	"fmt"
	"sort"

	"tracktm/internal/constants"
	"tracktm/internal/storage"
)

// ErrMissingRequiredField is returned when an operation is invoked without
// a job number or entry date it cannot work without. It is the only error
// kind that propagates out of the billing core; everything else degrades
// to a zero value or an empty result.
var ErrMissingRequiredField = errors.New("missing required field")

// DaySummary is one row of the summary report.
type DaySummary struct {
	EntryDate string  `json:"entry_date"`
	ItemCount int     `json:"item_count"`
	DayTotal  float64 `json:"day_total"`
}

// ReportSummary is the per-day rollup for a job over a date range.
// TotalDays == 0 means no entries matched the filter; that is a reportable
// outcome, not an error.
type ReportSummary struct {
	JobNumber  string       `json:"job_number"`
	StartDate  string       `json:"start_date,omitempty"`
	EndDate    string       `json:"end_date,omitempty"`
	TotalDays  int          `json:"total_days"`
	GrandTotal float64      `json:"grand_total"`
	Days       []DaySummary `json:"days"`
}

// ItemTotal accumulates one material or equipment line across days,
// keyed by (category, name, unit, unit price).
type ItemTotal struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
	Amount    float64 `json:"amount"`
}

// CategoryBlock groups item totals under one category heading.
type CategoryBlock struct {
	Category string      `json:"category"`
	Items    []ItemTotal `json:"items"`
	Subtotal float64     `json:"subtotal"`
}

// LaborDetail is one day-level labor line kept for the detailed export.
// Rows are not deduplicated by employee across days: the detailed report
// itemizes day-level labor, not person-level totals.
type LaborDetail struct {
	EmployeeName  string  `json:"employee_name"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightShift    bool    `json:"night_shift"`
	Amount        float64 `json:"amount"`
}

// LaborGroup folds labor lines by role or union display name.
type LaborGroup struct {
	Name          string        `json:"name"`
	RegularHours  float64       `json:"regular_hours"`
	OvertimeHours float64       `json:"overtime_hours"`
	Amount        float64       `json:"amount"`
	Detail        []LaborDetail `json:"detail,omitempty"`
}

// DetailedReport is the category/role-aggregated multi-day rollup used for
// billing breakdowns.
type DetailedReport struct {
	JobNumber      string          `json:"job_number"`
	StartDate      string          `json:"start_date,omitempty"`
	EndDate        string          `json:"end_date,omitempty"`
	TotalDays      int             `json:"total_days"`
	Categories     []CategoryBlock `json:"categories"`
	MaterialsTotal float64         `json:"materials_total"`
	Labor          []LaborGroup    `json:"labor"`
	LaborTotal     float64         `json:"labor_total"`
	GrandTotal     float64         `json:"grand_total"`
}

// FilterEntries keeps entries inside the inclusive [start, end] range.
// Either bound may be empty, meaning unbounded on that side. ISO dates
// compare lexicographically, which matches calendar order.
func FilterEntries(entries []storage.DailyEntry, startDate, endDate string) []storage.DailyEntry {
	var out []storage.DailyEntry
	for _, e := range entries {
		if startDate != "" && e.EntryDate < startDate {
			continue
		}
		if endDate != "" && e.EntryDate > endDate {
			continue
		}
		out = append(out, e)
	}
	return out
}

// BuildReportSummary rolls daily entries for one job into per-day summary
// rows sorted ascending by date plus a grand total.
func BuildReportSummary(jobNumber string, entries []storage.DailyEntry, startDate, endDate string) (*ReportSummary, error) {
	const op = "billing.BuildReportSummary"

	if jobNumber == "" {
		return nil, fmt.Errorf("%s: job number: %w", op, ErrMissingRequiredField)
	}

	filtered := FilterEntries(entries, startDate, endDate)

	summary := &ReportSummary{
		JobNumber: jobNumber,
		StartDate: startDate,
		EndDate:   endDate,
		TotalDays: len(filtered),
	}

	for _, e := range filtered {
		day := ComputeDayTotal(e)
		summary.Days = append(summary.Days, DaySummary{
			EntryDate: e.EntryDate,
			ItemCount: day.ItemCount,
			DayTotal:  day.GrandTotal,
		})
		summary.GrandTotal += day.GrandTotal
	}

	sort.SliceStable(summary.Days, func(i, j int) bool {
		return summary.Days[i].EntryDate < summary.Days[j].EntryDate
	})

	return summary, nil
}

type itemKey struct {
	category  string
	name      string
	unit      string
	unitPrice float64
}

// BuildDetailedReport additionally folds every material/equipment line
// across the retained entries into category blocks and every labor line
// into role/union groups.
func BuildDetailedReport(jobNumber string, entries []storage.DailyEntry, startDate, endDate string) (*DetailedReport, error) {
	const op = "billing.BuildDetailedReport"

	if jobNumber == "" {
		return nil, fmt.Errorf("%s: job number: %w", op, ErrMissingRequiredField)
	}

	filtered := FilterEntries(entries, startDate, endDate)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].EntryDate < filtered[j].EntryDate
	})

	report := &DetailedReport{
		JobNumber: jobNumber,
		StartDate: startDate,
		EndDate:   endDate,
		TotalDays: len(filtered),
	}

	itemIdx := make(map[itemKey]int)
	var items []ItemTotal

	accumulate := func(key itemKey, quantity, amount float64) {
		i, ok := itemIdx[key]
		if !ok {
			items = append(items, ItemTotal{
				Name:      key.name,
				Category:  key.category,
				Unit:      key.unit,
				UnitPrice: key.unitPrice,
			})
			i = len(items) - 1
			itemIdx[key] = i
		}
		items[i].Quantity += quantity
		items[i].Amount += amount
	}

	laborIdx := make(map[string]int)
	var labor []LaborGroup

	laborGroup := func(name string) *LaborGroup {
		i, ok := laborIdx[name]
		if !ok {
			labor = append(labor, LaborGroup{Name: name})
			i = len(labor) - 1
			laborIdx[name] = i
		}
		return &labor[i]
	}

	for _, e := range filtered {
		for _, item := range e.Materials {
			if !IncludableMaterial(item) {
				continue
			}
			key := itemKey{item.Category, item.MaterialName, item.Unit, item.UnitPrice}
			accumulate(key, item.Quantity, MaterialTotal(item))
		}

		for _, item := range e.Equipment {
			if !IncludableEquipment(item) {
				continue
			}
			pieces := item.Pieces
			if pieces < 1 {
				pieces = 1
			}
			category := item.Category
			if category == "" {
				category = "EQUIPMENT"
			}
			key := itemKey{category, item.EquipmentName, item.Unit, item.UnitRate}
			// Quantity folds pieces in so quantity x rate stays equal to
			// the accumulated amount.
			accumulate(key, pieces*item.Quantity, EquipmentTotal(item))
		}

		for _, item := range e.Labor {
			if !IncludableLabor(item.RegularHours, item.OvertimeHours) {
				continue
			}
			total := LaborTotal(item)
			g := laborGroup(item.RoleName)
			g.RegularHours += item.RegularHours
			g.OvertimeHours += item.OvertimeHours
			g.Amount += total
			if item.EmployeeName != "" {
				g.Detail = append(g.Detail, LaborDetail{
					EmployeeName:  item.EmployeeName,
					RegularHours:  item.RegularHours,
					OvertimeHours: item.OvertimeHours,
					NightShift:    item.NightShift,
					Amount:        total,
				})
			}
			report.LaborTotal += total
		}

		for _, item := range e.Employees {
			if !IncludableLabor(item.RegularHours, item.OvertimeHours) {
				continue
			}
			total := EmployeeLaborTotal(item)
			g := laborGroup(laborGroupName(item))
			g.RegularHours += item.RegularHours
			g.OvertimeHours += item.OvertimeHours
			g.Amount += total
			g.Detail = append(g.Detail, LaborDetail{
				EmployeeName:  item.EmployeeName,
				RegularHours:  item.RegularHours,
				OvertimeHours: item.OvertimeHours,
				NightShift:    item.NightShift,
				Amount:        total,
			})
			report.LaborTotal += total
		}
	}

	report.Categories = groupByCategory(items)
	for _, block := range report.Categories {
		report.MaterialsTotal += block.Subtotal
	}
	report.Labor = labor
	report.GrandTotal = report.MaterialsTotal + report.LaborTotal

	return report, nil
}

func laborGroupName(item storage.EmployeeLaborLineItem) string {
	if item.Union != "" {
		return item.Union
	}
	return item.EmployeeName
}

// groupByCategory orders category blocks by the fixed priority list, then
// appends unrecognized categories in first-encountered order. Items keep
// first-encountered order within their block.
func groupByCategory(items []ItemTotal) []CategoryBlock {
	known := make(map[string]bool, len(constants.CategoryOrder))
	for _, c := range constants.CategoryOrder {
		known[c] = true
	}

	order := append([]string{}, constants.CategoryOrder...)
	for _, item := range items {
		if !known[item.Category] {
			known[item.Category] = true
			order = append(order, item.Category)
		}
	}

	var blocks []CategoryBlock
	for _, category := range order {
		var block CategoryBlock
		block.Category = category
		for _, item := range items {
			if item.Category != category {
				continue
			}
			block.Items = append(block.Items, item)
			block.Subtotal += item.Amount
		}
		if len(block.Items) > 0 {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
