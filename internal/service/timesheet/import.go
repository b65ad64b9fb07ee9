package timesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"tracktm/internal/service/billing"
	"tracktm/internal/storage"
)

// Amount is a lenient numeric JSON field for historical timesheet data:
// it accepts numbers or strings like "$1,234.56", and degrades to zero on
// anything unparseable so one dirty field cannot block an import.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*a = 0
		return nil
	}
	*a = Amount(billing.ParseAmount(s))
	return nil
}

// ImportSpec is a daily entry keyed by catalog names rather than ids, the
// shape historical timesheets arrive in.
type ImportSpec struct {
	JobNumber string `json:"job_number"`
	EntryDate string `json:"entry_date"`

	Materials []struct {
		Name      string  `json:"name"`
		Quantity  Amount  `json:"quantity"`
		UnitPrice *Amount `json:"unit_price"` // nil keeps the catalog price
	} `json:"materials"`

	Equipment []struct {
		Name     string `json:"name"`
		Quantity Amount `json:"quantity"`
		Pieces   Amount `json:"pieces"`
	} `json:"equipment"`

	Labor []struct {
		Role          string `json:"role"`
		EmployeeName  string `json:"employee_name"`
		RegularHours  Amount `json:"regular_hours"`
		OvertimeHours Amount `json:"overtime_hours"`
		NightShift    bool   `json:"night_shift"`
	} `json:"labor"`

	Employees []struct {
		Name          string `json:"name"`
		RegularHours  Amount `json:"regular_hours"`
		OvertimeHours Amount `json:"overtime_hours"`
		NightShift    bool   `json:"night_shift"`
	} `json:"employees"`
}

func ParseImportSpec(data []byte) (ImportSpec, error) {
	var spec ImportSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return ImportSpec{}, fmt.Errorf("parse import spec: %w", err)
	}
	return spec, nil
}

// ImportEntry resolves catalog names, builds a daily entry and saves it.
// Lines referencing unknown catalog names are skipped with a warning, not
// failed: historical imports must get through on partially dirty data.
func (s *Service) ImportEntry(ctx context.Context, log *slog.Logger, spec ImportSpec) (int64, error) {
	const op = "timesheet.ImportEntry"

	if spec.JobNumber == "" {
		return 0, fmt.Errorf("%s: job number: %w", op, billing.ErrMissingRequiredField)
	}
	if spec.EntryDate == "" {
		return 0, fmt.Errorf("%s: entry date: %w", op, billing.ErrMissingRequiredField)
	}

	cat, err := s.FetchCatalogs(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	materialsByName := make(map[string]storage.Material, len(cat.Materials))
	for _, m := range cat.Materials {
		materialsByName[m.Name] = m
	}
	rolesByName := make(map[string]storage.LaborRole, len(cat.LaborRoles))
	for _, r := range cat.LaborRoles {
		rolesByName[r.Name] = r
	}
	ratesByName := make(map[string]storage.EquipmentRate, len(cat.EquipmentRates))
	for _, r := range cat.EquipmentRates {
		ratesByName[r.Name] = r
	}
	employeesByName := make(map[string]storage.Employee, len(cat.Employees))
	for _, e := range cat.Employees {
		employeesByName[e.Name] = e
	}

	entry := storage.DailyEntry{
		JobNumber: spec.JobNumber,
		EntryDate: spec.EntryDate,
	}

	for _, m := range spec.Materials {
		material, ok := materialsByName[m.Name]
		if !ok {
			log.Warn("unknown material, skipping", slog.String("name", m.Name))
			continue
		}
		unitPrice := material.UnitPrice
		if m.UnitPrice != nil {
			unitPrice = float64(*m.UnitPrice)
		}
		entry.Materials = append(entry.Materials, storage.MaterialLineItem{
			MaterialID:   material.ID,
			MaterialName: material.Name,
			Category:     material.Category,
			Unit:         material.Unit,
			Quantity:     float64(m.Quantity),
			UnitPrice:    unitPrice,
		})
	}

	for _, e := range spec.Equipment {
		rate, ok := ratesByName[e.Name]
		if !ok {
			log.Warn("unknown equipment, skipping", slog.String("name", e.Name))
			continue
		}
		entry.Equipment = append(entry.Equipment, storage.EquipmentLineItem{
			EquipmentRentalID: rate.ID,
			EquipmentName:     rate.Name,
			Category:          rate.Category,
			Unit:              rate.Unit,
			Quantity:          float64(e.Quantity),
			UnitRate:          rate.Rate,
			RatePeriod:        rate.RatePeriod,
			Pieces:            float64(e.Pieces),
		})
	}

	for _, l := range spec.Labor {
		role, ok := rolesByName[l.Role]
		if !ok {
			log.Warn("unknown labor role, skipping", slog.String("role", l.Role))
			continue
		}
		entry.Labor = append(entry.Labor, storage.LaborLineItem{
			LaborRoleID:   role.ID,
			RoleName:      role.Name,
			EmployeeName:  l.EmployeeName,
			RegularHours:  float64(l.RegularHours),
			OvertimeHours: float64(l.OvertimeHours),
			NightShift:    l.NightShift,
			StraightRate:  role.StraightRate,
			OvertimeRate:  role.OvertimeRate,
		})
	}

	for _, e := range spec.Employees {
		emp, ok := employeesByName[e.Name]
		if !ok {
			log.Warn("unknown employee, skipping", slog.String("name", e.Name))
			continue
		}
		entry.Employees = append(entry.Employees, storage.EmployeeLaborLineItem{
			EmployeeID:    emp.ID,
			EmployeeName:  emp.Name,
			Union:         emp.Union,
			RegularHours:  float64(e.RegularHours),
			OvertimeHours: float64(e.OvertimeHours),
			NightShift:    e.NightShift,
			RegularRate:   emp.RegularRate,
			OvertimeRate:  emp.OvertimeRate,
			HealthWelfare: emp.HealthWelfare,
			Pension:       emp.Pension,
		})
	}

	id, err := s.SaveEntry(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}
