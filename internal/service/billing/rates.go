package billing

import "tracktm/internal/constants"

// EffectiveRates resolves the hourly rates for a labor line. Night shift
// work adds the fixed differential to both the regular and the overtime
// rate; benefit rates are never adjusted here.
func EffectiveRates(regularRate, overtimeRate float64, nightShift bool) (float64, float64) {
	if !nightShift {
		return regularRate, overtimeRate
	}
	return regularRate + constants.NightShiftDifferential,
		overtimeRate + constants.NightShiftDifferential
}
