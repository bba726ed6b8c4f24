package service

import "math"

const lbsPerKg = 0.45359237

// ToMetric converts an imperial height and weight to centimeters and
// kilograms, both rounded to 2 decimals.
//
// Height is encoded as feet.inches: 5.6 means 5 feet 6 inches, so the
// fractional part scaled by ten is a count of inches, not a decimal foot.
// Inputs are not range-checked; negative values pass through arithmetically.
func ToMetric(heightFtIn, weightLbs float64) (heightCm, weightKg float64) {
	feet := math.Floor(heightFtIn)
	inches := (heightFtIn - feet) * 10
	heightCm = round2((feet*12 + inches) * 2.54)
	weightKg = round2(weightLbs * lbsPerKg)
	return heightCm, weightKg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
