package constants

// CategoryOrder is the fixed display order for material categories on
// detailed reports. Categories outside this list are appended after, in
// first-encountered order.
var CategoryOrder = []string{"EQUIPMENT", "MATERIALS", "PPE", "CONSUMABLES", "FUEL"}

// NightShiftDifferential is added to both the regular and overtime hourly
// rate when a labor line is flagged as night shift. Benefit rates are not
// affected.
const NightShiftDifferential = 2.00

// UnionBenefitRate holds per-hour benefit add-ons for a painters union local.
type UnionBenefitRate struct {
	HealthWelfare float64
	Pension       float64
}

// UnionBenefitRates per the 2022 T&M rate agreements.
var UnionBenefitRates = map[string]UnionBenefitRate{
	"DC9":  {HealthWelfare: 12.75, Pension: 13.33},
	"DC11": {HealthWelfare: 10.80, Pension: 13.90},
	"DC35": {HealthWelfare: 10.30, Pension: 11.95},
}

// Con9 form summary rates. The Con9 export computes its own benefit block
// from total hours rather than per-employee burden.
const (
	Con9HealthWelfareRate = 12.75
	Con9PensionRate       = 13.33
	Con9MarkupPercent     = 0.20
	Con9MaterialMarkup    = 0.15
)

// Markup percentages for the simplified daily report. No markup on labor.
const (
	OverheadPercent = 0.10
	ProfitPercent   = 0.10
)
