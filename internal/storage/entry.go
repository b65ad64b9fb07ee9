package storage

// DailyEntry is the complete record of one job on one calendar date.
// (job_number, entry_date) is the natural key; saving again for the same
// pair replaces the prior entry wholesale.
type DailyEntry struct {
	ID        int64                   `json:"id"`
	JobNumber string                  `json:"job_number"`
	EntryDate string                  `json:"entry_date"` // ISO "YYYY-MM-DD"
	JobName   string                  `json:"job_name,omitempty"`
	Materials []MaterialLineItem      `json:"line_items"`
	Equipment []EquipmentLineItem     `json:"equipment_rental_items"`
	Labor     []LaborLineItem         `json:"labor_entries"`
	Employees []EmployeeLaborLineItem `json:"employee_labor_entries"`
}

// MaterialLineItem snapshots the unit price at entry time; the display
// fields are joined in from the materials catalog on load.
type MaterialLineItem struct {
	ID           int64   `json:"id"`
	MaterialID   int64   `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
}

// EquipmentLineItem covers rented equipment. EquipmentRentalID of 0 means
// ad-hoc job equipment with the name carried on the line itself.
type EquipmentLineItem struct {
	ID                int64   `json:"id"`
	EquipmentRentalID int64   `json:"equipment_rental_id"`
	EquipmentName     string  `json:"equipment_name"`
	Category          string  `json:"category"`
	Unit              string  `json:"unit"`
	Quantity          float64 `json:"quantity"` // hours or days per the rate period
	UnitRate          float64 `json:"unit_rate"`
	RatePeriod        string  `json:"rate_period"`
	Pieces            float64 `json:"pieces"`
}

// LaborLineItem is fixed-rate labor billed at a role's flat T&M rate.
// Rates are joined in from the labor role on load.
type LaborLineItem struct {
	ID            int64   `json:"id"`
	LaborRoleID   int64   `json:"labor_role_id"`
	RoleName      string  `json:"role_name"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightShift    bool    `json:"night_shift"`
	StraightRate  float64 `json:"straight_rate"`
	OvertimeRate  float64 `json:"overtime_rate"`
}

// EmployeeLaborLineItem is burdened labor tied to a payroll employee:
// wage plus per-hour health & welfare and pension add-ons.
type EmployeeLaborLineItem struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Union         string  `json:"union"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightShift    bool    `json:"night_shift"`
	RegularRate   float64 `json:"regular_rate"`
	OvertimeRate  float64 `json:"overtime_rate"`
	HealthWelfare float64 `json:"health_welfare"`
	Pension       float64 `json:"pension"`
}
