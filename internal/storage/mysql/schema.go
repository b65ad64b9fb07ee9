package mysql

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS materials (
        id INT AUTO_INCREMENT PRIMARY KEY,
        name VARCHAR(255) NOT NULL UNIQUE,
        category VARCHAR(50) NOT NULL,
        unit VARCHAR(50) NOT NULL,
        unit_price DECIMAL(10,2) NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS labor_roles (
        id INT AUTO_INCREMENT PRIMARY KEY,
        name VARCHAR(255) NOT NULL UNIQUE,
        unit VARCHAR(50) NOT NULL DEFAULT 'Hour',
        straight_rate DECIMAL(10,2) NOT NULL,
        overtime_rate DECIMAL(10,2) NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS employees (
        id INT AUTO_INCREMENT PRIMARY KEY,
        name VARCHAR(255) NOT NULL UNIQUE,
        employee_number VARCHAR(50) NOT NULL DEFAULT '',
        union_name VARCHAR(50) NOT NULL DEFAULT '',
        regular_rate DECIMAL(10,2) NOT NULL DEFAULT 0,
        overtime_rate DECIMAL(10,2) NOT NULL DEFAULT 0,
        health_welfare DECIMAL(10,2) NOT NULL DEFAULT 0,
        pension DECIMAL(10,2) NOT NULL DEFAULT 0
    )`,
	`CREATE TABLE IF NOT EXISTS equipment_rental_rates (
        id INT AUTO_INCREMENT PRIMARY KEY,
        name VARCHAR(255) NOT NULL UNIQUE,
        category VARCHAR(50) NOT NULL DEFAULT 'EQUIPMENT',
        unit VARCHAR(50) NOT NULL DEFAULT 'Day',
        rate DECIMAL(10,2) NOT NULL DEFAULT 0,
        rate_period VARCHAR(10) NOT NULL DEFAULT 'daily',
        active BOOLEAN NOT NULL DEFAULT TRUE
    )`,
	`CREATE TABLE IF NOT EXISTS daily_entries (
        id INT AUTO_INCREMENT PRIMARY KEY,
        job_number VARCHAR(50) NOT NULL,
        entry_date DATE NOT NULL,
        UNIQUE KEY uniq_job_date (job_number, entry_date)
    )`,
	`CREATE TABLE IF NOT EXISTS entry_line_items (
        id INT AUTO_INCREMENT PRIMARY KEY,
        daily_entry_id INT NOT NULL,
        material_id INT NOT NULL,
        quantity DECIMAL(10,2) NOT NULL DEFAULT 0,
        unit_price DECIMAL(10,2) NOT NULL,
        FOREIGN KEY (daily_entry_id) REFERENCES daily_entries(id) ON DELETE CASCADE,
        FOREIGN KEY (material_id) REFERENCES materials(id)
    )`,
	`CREATE TABLE IF NOT EXISTS equipment_rental_items (
        id INT AUTO_INCREMENT PRIMARY KEY,
        daily_entry_id INT NOT NULL,
        equipment_rental_id INT NOT NULL DEFAULT 0,
        equipment_name VARCHAR(255) NOT NULL,
        category VARCHAR(50) NOT NULL DEFAULT 'EQUIPMENT',
        unit VARCHAR(50) NOT NULL DEFAULT 'Day',
        quantity DECIMAL(10,2) NOT NULL DEFAULT 0,
        unit_rate DECIMAL(10,2) NOT NULL DEFAULT 0,
        rate_period VARCHAR(10) NOT NULL DEFAULT 'daily',
        pieces DECIMAL(10,2) NOT NULL DEFAULT 1,
        FOREIGN KEY (daily_entry_id) REFERENCES daily_entries(id) ON DELETE CASCADE
    )`,
	`CREATE TABLE IF NOT EXISTS labor_entries (
        id INT AUTO_INCREMENT PRIMARY KEY,
        daily_entry_id INT NOT NULL,
        labor_role_id INT NOT NULL,
        employee_name VARCHAR(255),
        regular_hours DECIMAL(10,2) NOT NULL DEFAULT 0,
        overtime_hours DECIMAL(10,2) NOT NULL DEFAULT 0,
        night_shift BOOLEAN NOT NULL DEFAULT FALSE,
        FOREIGN KEY (daily_entry_id) REFERENCES daily_entries(id) ON DELETE CASCADE,
        FOREIGN KEY (labor_role_id) REFERENCES labor_roles(id)
    )`,
	`CREATE TABLE IF NOT EXISTS employee_labor_entries (
        id INT AUTO_INCREMENT PRIMARY KEY,
        daily_entry_id INT NOT NULL,
        employee_id INT NOT NULL,
        regular_hours DECIMAL(10,2) NOT NULL DEFAULT 0,
        overtime_hours DECIMAL(10,2) NOT NULL DEFAULT 0,
        night_shift BOOLEAN NOT NULL DEFAULT FALSE,
        FOREIGN KEY (daily_entry_id) REFERENCES daily_entries(id) ON DELETE CASCADE,
        FOREIGN KEY (employee_id) REFERENCES employees(id)
    )`,
}

// InitSchema creates the tables when they don't exist yet.
func (s *Storage) InitSchema(ctx context.Context) error {
	const op = "storage.mysql.InitSchema"

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}
