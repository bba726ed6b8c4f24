package service

import (
	"fmt"

	"github.com/dch42/calcount/internal/model"
)

// activityLevels maps each level to its description and TDEE multiplier.
// This is the single source of truth for valid activity selections, used
// both for computation and for the init prompt listing.
var activityLevels = map[model.ActivityLevel]struct {
	Description string
	Multiplier  float64
}{
	model.Sedentary:        {"sedentary (little or no exercise)", 1.2},
	model.LightActivity:    {"light activity (light exercise/sports 1 to 3 days per week)", 1.375},
	model.ModerateActivity: {"moderate activity (moderate exercise/sports 3 to 5 days per week)", 1.55},
	model.VeryActive:       {"very active (hard exercise/sports 6 to 7 days per week)", 1.725},
	model.ExtraActive:      {"extra active (very hard exercise/sports 6 to 7 days per week and physical job)", 1.9},
}

// ActivityDescription returns the prompt text for a level, or "" when the
// level is unknown.
func ActivityDescription(level model.ActivityLevel) string {
	return activityLevels[level].Description
}

// ActivityMultiplier resolves a level to its TDEE multiplier. An unknown
// level is a usage error, never a silent default.
func ActivityMultiplier(level model.ActivityLevel) (float64, error) {
	a, ok := activityLevels[level]
	if !ok {
		return 0, fmt.Errorf("%w: %d (choose 1-5)", ErrInvalidActivityLevel, level)
	}
	return a.Multiplier, nil
}

// BMR computes basal metabolic rate with the revised Harris-Benedict
// equation. Weight is in kilograms, height in centimeters, age in years.
func BMR(weightKg, heightCm float64, sex model.Sex, age int) float64 {
	if sex == model.Male {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// TDEE scales a BMR by the activity multiplier for level.
func TDEE(bmr float64, level model.ActivityLevel) (float64, error) {
	mult, err := ActivityMultiplier(level)
	if err != nil {
		return 0, err
	}
	return bmr * mult, nil
}
