package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dch42/calcount/internal/model"
)

// profileFieldCount is the exact field count the current profile schema
// expects: age, sex, height, weight, weekly target, activity level. A
// short or long list fails validation outright rather than silently
// misaligning columns when the schema evolves.
const profileFieldCount = 6

// ParseProfile validates and normalizes the six raw profile fields into a
// typed profile. Height arrives as feet.inches and weight as pounds; both
// are converted to metric here so everything downstream is metric.
func ParseProfile(fields []string) (model.Profile, error) {
	if len(fields) != profileFieldCount {
		return model.Profile{}, fmt.Errorf("%w: expected %d profile fields (age sex height weight weekly-target activity), got %d",
			ErrMalformedEntry, profileFieldCount, len(fields))
	}

	age, err := strconv.Atoi(fields[0])
	if err != nil || age <= 0 {
		return model.Profile{}, fmt.Errorf("%w: age %q must be a positive integer", ErrMalformedEntry, fields[0])
	}
	sex, err := ParseSex(fields[1])
	if err != nil {
		return model.Profile{}, err
	}
	height, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return model.Profile{}, fmt.Errorf("%w: height %q must be feet.inches, e.g. 5.11", ErrMalformedEntry, fields[2])
	}
	weight, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return model.Profile{}, fmt.Errorf("%w: weight %q must be pounds", ErrMalformedEntry, fields[3])
	}
	target, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return model.Profile{}, fmt.Errorf("%w: weekly target %q must be lbs/week", ErrMalformedEntry, fields[4])
	}
	level, err := ParseActivityLevel(fields[5])
	if err != nil {
		return model.Profile{}, err
	}

	heightCm, weightKg := ToMetric(height, weight)
	return model.Profile{
		Age:          age,
		Sex:          sex,
		HeightCm:     heightCm,
		WeightKg:     weightKg,
		WeeklyTarget: target,
		Activity:     level,
	}, nil
}

// ParseSex accepts m/f or male/female, case-insensitively.
func ParseSex(s string) (model.Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return model.Male, nil
	case "f", "female":
		return model.Female, nil
	default:
		return "", fmt.Errorf("%w: sex %q must be m or f", ErrMalformedEntry, s)
	}
}

// ParseActivityLevel accepts a 1-5 selection as prompted during init.
func ParseActivityLevel(s string) (model.ActivityLevel, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q (choose 1-5)", ErrInvalidActivityLevel, s)
	}
	level := model.ActivityLevel(n)
	if _, ok := activityLevels[level]; !ok {
		return 0, fmt.Errorf("%w: %d (choose 1-5)", ErrInvalidActivityLevel, n)
	}
	return level, nil
}
