package storage

// Catalog reference data. All of it is read-only from the core's point of
// view: rates and prices are snapshotted onto line items at entry time.

type Material struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

type LaborRole struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	StraightRate float64 `json:"straight_rate"`
	OvertimeRate float64 `json:"overtime_rate"`
}

// Employee is a payroll worker with additive burden components. Wage rates
// take the night shift differential; health & welfare and pension do not.
type Employee struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	EmployeeNumber string  `json:"employee_number"`
	Union          string  `json:"union"`
	RegularRate    float64 `json:"regular_rate"`
	OvertimeRate   float64 `json:"overtime_rate"`
	HealthWelfare  float64 `json:"health_welfare"`
	Pension        float64 `json:"pension"`
}

type EquipmentRate struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Unit       string  `json:"unit"`
	Rate       float64 `json:"rate"`
	RatePeriod string  `json:"rate_period"` // "daily" or "hourly"
	Active     bool    `json:"active"`
}
