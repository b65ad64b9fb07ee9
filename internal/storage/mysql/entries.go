package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tracktm/internal/storage"
)

// GetEntry loads one daily entry with all of its line items. Returns
// (nil, nil) when no entry exists for the (job, date) pair.
func (s *Storage) GetEntry(ctx context.Context, jobNumber, entryDate string) (*storage.DailyEntry, error) {
	const op = "storage.mysql.GetEntry"

	var entry storage.DailyEntry
	err := s.db.QueryRowContext(ctx,
		`SELECT id, job_number, DATE_FORMAT(entry_date, '%Y-%m-%d') FROM daily_entries
         WHERE job_number = ? AND entry_date = ?`,
		jobNumber, entryDate,
	).Scan(&entry.ID, &entry.JobNumber, &entry.EntryDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.loadLineItems(ctx, &entry); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &entry, nil
}

// GetEntries loads every daily entry for a job, oldest first.
func (s *Storage) GetEntries(ctx context.Context, jobNumber string) ([]storage.DailyEntry, error) {
	const op = "storage.mysql.GetEntries"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, job_number, DATE_FORMAT(entry_date, '%Y-%m-%d') FROM daily_entries
         WHERE job_number = ? ORDER BY entry_date ASC`,
		jobNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []storage.DailyEntry
	for rows.Next() {
		var e storage.DailyEntry
		if err := rows.Scan(&e.ID, &e.JobNumber, &e.EntryDate); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range entries {
		if err := s.loadLineItems(ctx, &entries[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return entries, nil
}

func (s *Storage) loadLineItems(ctx context.Context, entry *storage.DailyEntry) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT li.id, li.material_id, m.name, m.category, m.unit, li.quantity, li.unit_price
         FROM entry_line_items li
         JOIN materials m ON m.id = li.material_id
         WHERE li.daily_entry_id = ?
         ORDER BY li.id ASC`,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item storage.MaterialLineItem
		if err := rows.Scan(&item.ID, &item.MaterialID, &item.MaterialName,
			&item.Category, &item.Unit, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("line items: scan: %w", err)
		}
		entry.Materials = append(entry.Materials, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("line items: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT e.id, e.equipment_rental_id, e.equipment_name, e.category, e.unit,
                e.quantity, e.unit_rate, e.rate_period, e.pieces
         FROM equipment_rental_items e
         WHERE e.daily_entry_id = ?
         ORDER BY e.id ASC`,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("equipment items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item storage.EquipmentLineItem
		if err := rows.Scan(&item.ID, &item.EquipmentRentalID, &item.EquipmentName,
			&item.Category, &item.Unit, &item.Quantity, &item.UnitRate,
			&item.RatePeriod, &item.Pieces); err != nil {
			return fmt.Errorf("equipment items: scan: %w", err)
		}
		entry.Equipment = append(entry.Equipment, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("equipment items: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT l.id, l.labor_role_id, r.name, COALESCE(l.employee_name, ''),
                l.regular_hours, l.overtime_hours, l.night_shift,
                r.straight_rate, r.overtime_rate
         FROM labor_entries l
         JOIN labor_roles r ON r.id = l.labor_role_id
         WHERE l.daily_entry_id = ?
         ORDER BY l.id ASC`,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("labor entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item storage.LaborLineItem
		if err := rows.Scan(&item.ID, &item.LaborRoleID, &item.RoleName, &item.EmployeeName,
			&item.RegularHours, &item.OvertimeHours, &item.NightShift,
			&item.StraightRate, &item.OvertimeRate); err != nil {
			return fmt.Errorf("labor entries: scan: %w", err)
		}
		entry.Labor = append(entry.Labor, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("labor entries: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT el.id, el.employee_id, e.name, e.union_name,
                el.regular_hours, el.overtime_hours, el.night_shift,
                e.regular_rate, e.overtime_rate, e.health_welfare, e.pension
         FROM employee_labor_entries el
         JOIN employees e ON e.id = el.employee_id
         WHERE el.daily_entry_id = ?
         ORDER BY el.id ASC`,
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("employee labor entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item storage.EmployeeLaborLineItem
		if err := rows.Scan(&item.ID, &item.EmployeeID, &item.EmployeeName, &item.Union,
			&item.RegularHours, &item.OvertimeHours, &item.NightShift,
			&item.RegularRate, &item.OvertimeRate, &item.HealthWelfare, &item.Pension); err != nil {
			return fmt.Errorf("employee labor entries: scan: %w", err)
		}
		entry.Employees = append(entry.Employees, item)
	}
	return rows.Err()
}

// SaveEntry upserts the entry for (job_number, entry_date): any prior
// entry and its children are deleted in the same transaction, then the
// fresh entry is inserted. Callers drop zero-quantity lines first.
func (s *Storage) SaveEntry(ctx context.Context, entry storage.DailyEntry) (int64, error) {
	const op = "storage.mysql.SaveEntry"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM daily_entries WHERE job_number = ? AND entry_date = ?`,
		entry.JobNumber, entry.EntryDate,
	).Scan(&existingID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if existingID != 0 {
		for _, table := range []string{
			"entry_line_items", "equipment_rental_items",
			"labor_entries", "employee_labor_entries",
		} {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM `+table+` WHERE daily_entry_id = ?`, existingID); err != nil {
				return 0, fmt.Errorf("%s: delete %s: %w", op, table, err)
			}
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM daily_entries WHERE id = ?`, existingID); err != nil {
			return 0, fmt.Errorf("%s: delete entry: %w", op, err)
		}
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO daily_entries (job_number, entry_date) VALUES (?, ?)`,
		entry.JobNumber, entry.EntryDate,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: insert entry: %w", op, err)
	}
	entryID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range entry.Materials {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entry_line_items (daily_entry_id, material_id, quantity, unit_price)
             VALUES (?, ?, ?, ?)`,
			entryID, item.MaterialID, item.Quantity, item.UnitPrice); err != nil {
			return 0, fmt.Errorf("%s: insert line item: %w", op, err)
		}
	}

	for _, item := range entry.Equipment {
		pieces := item.Pieces
		if pieces < 1 {
			pieces = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO equipment_rental_items
             (daily_entry_id, equipment_rental_id, equipment_name, category, unit,
              quantity, unit_rate, rate_period, pieces)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entryID, item.EquipmentRentalID, item.EquipmentName, item.Category, item.Unit,
			item.Quantity, item.UnitRate, item.RatePeriod, pieces); err != nil {
			return 0, fmt.Errorf("%s: insert equipment item: %w", op, err)
		}
	}

	for _, item := range entry.Labor {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO labor_entries
             (daily_entry_id, labor_role_id, employee_name, regular_hours, overtime_hours, night_shift)
             VALUES (?, ?, ?, ?, ?, ?)`,
			entryID, item.LaborRoleID, item.EmployeeName,
			item.RegularHours, item.OvertimeHours, item.NightShift); err != nil {
			return 0, fmt.Errorf("%s: insert labor entry: %w", op, err)
		}
	}

	for _, item := range entry.Employees {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO employee_labor_entries
             (daily_entry_id, employee_id, regular_hours, overtime_hours, night_shift)
             VALUES (?, ?, ?, ?, ?)`,
			entryID, item.EmployeeID,
			item.RegularHours, item.OvertimeHours, item.NightShift); err != nil {
			return 0, fmt.Errorf("%s: insert employee labor entry: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return entryID, nil
}
