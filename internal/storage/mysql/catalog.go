package mysql

import (
	"context"
	"fmt"
	"strings"

	"tracktm/internal/constants"
	"tracktm/internal/storage"
)

// GetMaterials returns the materials catalog ordered by the fixed category
// priority, then by name within a category. Unknown categories sort last.
func (s *Storage) GetMaterials(ctx context.Context) ([]storage.Material, error) {
	const op = "storage.mysql.GetMaterials"

	query := `SELECT id, name, category, unit, unit_price FROM materials
        ORDER BY ` + categoryOrderCase("category") + `, name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var materials []storage.Material
	for rows.Next() {
		var m storage.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Unit, &m.UnitPrice); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		materials = append(materials, m)
	}

	return materials, rows.Err()
}

func (s *Storage) GetLaborRoles(ctx context.Context) ([]storage.LaborRole, error) {
	const op = "storage.mysql.GetLaborRoles"

	query := `SELECT id, name, unit, straight_rate, overtime_rate FROM labor_roles ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var roles []storage.LaborRole
	for rows.Next() {
		var r storage.LaborRole
		if err := rows.Scan(&r.ID, &r.Name, &r.Unit, &r.StraightRate, &r.OvertimeRate); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		roles = append(roles, r)
	}

	return roles, rows.Err()
}

func (s *Storage) GetEquipmentRates(ctx context.Context) ([]storage.EquipmentRate, error) {
	const op = "storage.mysql.GetEquipmentRates"

	query := `SELECT id, name, category, unit, rate, rate_period, active
        FROM equipment_rental_rates WHERE active = TRUE ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var rates []storage.EquipmentRate
	for rows.Next() {
		var r storage.EquipmentRate
		if err := rows.Scan(&r.ID, &r.Name, &r.Category, &r.Unit, &r.Rate, &r.RatePeriod, &r.Active); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		rates = append(rates, r)
	}

	return rates, rows.Err()
}

func (s *Storage) GetEmployees(ctx context.Context) ([]storage.Employee, error) {
	const op = "storage.mysql.GetEmployees"

	query := `SELECT id, name, employee_number, union_name, regular_rate, overtime_rate,
        health_welfare, pension FROM employees ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var employees []storage.Employee
	for rows.Next() {
		var e storage.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.EmployeeNumber, &e.Union,
			&e.RegularRate, &e.OvertimeRate, &e.HealthWelfare, &e.Pension); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// categoryOrderCase builds a CASE expression ranking categories by the
// fixed priority list so the catalog comes back in display order.
func categoryOrderCase(column string) string {
	var b strings.Builder
	b.WriteString("CASE " + column)
	for i, c := range constants.CategoryOrder {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", c, i)
	}
	fmt.Fprintf(&b, " ELSE %d END", len(constants.CategoryOrder))
	return b.String()
}
