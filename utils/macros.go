package utils

import "fmt"

// ProteinGrams derives the daily protein target (grams) from goal,
// age and activity level: base g/kg by goal, +0.2 g/kg above age 50,
// plus an activity increment, times body weight.
func ProteinGrams(p BiometricProfile) (float64, error) {
	var perKg float64
	switch p.Goal {
	case GoalWeightLoss, GoalWeightLossMuscle:
		perKg = 2.0
	case GoalMaintenance:
		perKg = 1.2
	case GoalMaintenanceMuscle:
		perKg = 1.5
	case GoalWeightGain, GoalWeightGainMuscle:
		perKg = 1.8
	default:
		return 0, fmt.Errorf("%w: goal %q", ErrUnsupportedValue, p.Goal)
	}

	if p.AgeYears > 50 {
		perKg += 0.2
	}

	switch p.ActivityLevel {
	case ActivitySedentary:
		// no increment
	case ActivityLight:
		perKg += 0.1
	case ActivityModerate:
		perKg += 0.2
	case ActivityActive, ActivityVeryActive:
		perKg += 0.4
	default:
		return 0, fmt.Errorf("%w: activity level %q", ErrUnsupportedValue, p.ActivityLevel)
	}

	return perKg * p.WeightKg, nil
}

// FatGrams allocates a goal-dependent share of the energy budget to fat
// and converts it to grams (9 kcal per gram).
func FatGrams(p BiometricProfile, totalEnergyKcal float64) (float64, error) {
	var share float64
	switch p.Goal {
	case GoalWeightLoss:
		share = 0.20
	case GoalWeightLossMuscle, GoalMaintenance:
		share = 0.25
	case GoalMaintenanceMuscle, GoalWeightGain:
		share = 0.30
	case GoalWeightGainMuscle:
		share = 0.35
	default:
		return 0, fmt.Errorf("%w: goal %q", ErrUnsupportedValue, p.Goal)
	}
	return totalEnergyKcal * share / 9.0, nil
}

// FatSplit divides a fat target into saturated (30%) and unsaturated (70%).
func FatSplit(totalFatGrams float64) (saturated, unsaturated float64) {
	return totalFatGrams * 0.30, totalFatGrams * 0.70
}

// CarbGrams fills the rest of the energy budget with carbohydrate
// (4 kcal per gram of protein and carbohydrate, 9 per gram of fat).
// The result can go negative when protein+fat energy exceeds the budget
// for extreme biometric/goal combinations; it is intentionally not
// clamped, so callers see the over-allocation instead of a silent zero.
func CarbGrams(totalEnergyKcal, proteinGrams, fatGrams float64) float64 {
	return (totalEnergyKcal - proteinGrams*4.0 - fatGrams*9.0) / 4.0
}
