package mysql

import (
	"context"
	"fmt"

	"tracktm/internal/storage"
)

// Catalog seeding. Idempotent per name: an existing row keeps its id and
// gets its rates refreshed.

func (s *Storage) SeedMaterials(ctx context.Context, materials []storage.Material) error {
	const op = "storage.mysql.SeedMaterials"

	stmt, err := s.db.PrepareContext(ctx,
		`INSERT INTO materials (name, category, unit, unit_price)
         VALUES (?, ?, ?, ?)
         ON DUPLICATE KEY UPDATE
             category = VALUES(category),
             unit = VALUES(unit),
             unit_price = VALUES(unit_price)`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, m := range materials {
		if _, err := stmt.ExecContext(ctx, m.Name, m.Category, m.Unit, m.UnitPrice); err != nil {
			return fmt.Errorf("%s: %q: %w", op, m.Name, err)
		}
	}
	return nil
}

func (s *Storage) SeedLaborRoles(ctx context.Context, roles []storage.LaborRole) error {
	const op = "storage.mysql.SeedLaborRoles"

	stmt, err := s.db.PrepareContext(ctx,
		`INSERT INTO labor_roles (name, unit, straight_rate, overtime_rate)
         VALUES (?, ?, ?, ?)
         ON DUPLICATE KEY UPDATE
             unit = VALUES(unit),
             straight_rate = VALUES(straight_rate),
             overtime_rate = VALUES(overtime_rate)`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, r := range roles {
		if _, err := stmt.ExecContext(ctx, r.Name, r.Unit, r.StraightRate, r.OvertimeRate); err != nil {
			return fmt.Errorf("%s: %q: %w", op, r.Name, err)
		}
	}
	return nil
}

func (s *Storage) SeedEquipmentRates(ctx context.Context, rates []storage.EquipmentRate) error {
	const op = "storage.mysql.SeedEquipmentRates"

	stmt, err := s.db.PrepareContext(ctx,
		`INSERT INTO equipment_rental_rates (name, category, unit, rate, rate_period, active)
         VALUES (?, ?, ?, ?, ?, TRUE)
         ON DUPLICATE KEY UPDATE
             category = VALUES(category),
             unit = VALUES(unit),
             rate = VALUES(rate),
             rate_period = VALUES(rate_period),
             active = TRUE`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, r := range rates {
		if _, err := stmt.ExecContext(ctx, r.Name, r.Category, r.Unit, r.Rate, r.RatePeriod); err != nil {
			return fmt.Errorf("%s: %q: %w", op, r.Name, err)
		}
	}
	return nil
}

func (s *Storage) SeedEmployees(ctx context.Context, employees []storage.Employee) error {
	const op = "storage.mysql.SeedEmployees"

	stmt, err := s.db.PrepareContext(ctx,
		`INSERT INTO employees
         (name, employee_number, union_name, regular_rate, overtime_rate, health_welfare, pension)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON DUPLICATE KEY UPDATE
             union_name = VALUES(union_name),
             regular_rate = VALUES(regular_rate),
             overtime_rate = VALUES(overtime_rate),
             health_welfare = VALUES(health_welfare),
             pension = VALUES(pension)`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, e := range employees {
		if _, err := stmt.ExecContext(ctx, e.Name, e.EmployeeNumber, e.Union,
			e.RegularRate, e.OvertimeRate, e.HealthWelfare, e.Pension); err != nil {
			return fmt.Errorf("%s: %q: %w", op, e.Name, err)
		}
	}
	return nil
}
