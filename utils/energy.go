package utils

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue marks an enum-like field holding a value outside the
// closed set the formulas cover. A data-integrity defect, not user input.
var ErrUnsupportedValue = errors.New("unsupported value")

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "SEDENTARY"
	ActivityLight      ActivityLevel = "LIGHTLY_ACTIVE"
	ActivityModerate   ActivityLevel = "MODERATELY_ACTIVE"
	ActivityActive     ActivityLevel = "ACTIVE"
	ActivityVeryActive ActivityLevel = "VERY_ACTIVE"
)

type Goal string

const (
	GoalWeightLoss        Goal = "WEIGHT_LOSS"
	GoalWeightLossMuscle  Goal = "WEIGHT_LOSS_MUSCLE_MAINTENANCE"
	GoalMaintenance       Goal = "MAINTENANCE"
	GoalMaintenanceMuscle Goal = "MAINTENANCE_MUSCLE_FOCUS"
	GoalWeightGain        Goal = "WEIGHT_GAIN"
	GoalWeightGainMuscle  Goal = "WEIGHT_GAIN_MUSCLE_FOCUS"
)

// BiometricProfile carries the six fields every energy/macro formula needs.
// Callers validate completeness before building one (services.BuildBiometricProfile).
type BiometricProfile struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Gender        Gender
	ActivityLevel ActivityLevel
	Goal          Goal
}

// activityFactors is the single source of truth for valid activity levels.
var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// BasalMetabolicRate estimates resting energy expenditure (kcal/day)
// via the Harris-Benedict equation, branched on gender.
func BasalMetabolicRate(p BiometricProfile) (float64, error) {
	switch p.Gender {
	case GenderMale:
		return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.AgeYears), nil
	case GenderFemale:
		return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.AgeYears), nil
	default:
		return 0, fmt.Errorf("%w: gender %q", ErrUnsupportedValue, p.Gender)
	}
}

// TotalDailyExpenditure scales BMR by the profile's activity factor.
func TotalDailyExpenditure(p BiometricProfile) (float64, error) {
	bmr, err := BasalMetabolicRate(p)
	if err != nil {
		return 0, err
	}
	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: activity level %q", ErrUnsupportedValue, p.ActivityLevel)
	}
	return bmr * factor, nil
}

// AdjustForGoal scales a daily energy expenditure to the user's goal.
func AdjustForGoal(tdee float64, goal Goal) (float64, error) {
	switch goal {
	case GoalWeightLoss:
		return tdee * 0.85, nil
	case GoalWeightLossMuscle:
		return tdee * 0.90, nil
	case GoalMaintenance:
		return tdee * 1.00, nil
	case GoalMaintenanceMuscle:
		return tdee * 1.05, nil
	case GoalWeightGain:
		return tdee * 1.15, nil
	case GoalWeightGainMuscle:
		return tdee * 1.20, nil
	default:
		return 0, fmt.Errorf("%w: goal %q", ErrUnsupportedValue, goal)
	}
}
