package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProteinGramsMaintenanceModerate(t *testing.T) {
	// base 1.2 g/kg, age 30 (no senior bonus), moderate +0.2 → 1.4 × 70kg
	grams, err := ProteinGrams(maleProfile())
	require.NoError(t, err)
	assert.InDelta(t, 98.0, grams, 1e-9)
}

func TestProteinGramsSeniorBonus(t *testing.T) {
	p := maleProfile()
	p.AgeYears = 55
	grams, err := ProteinGrams(p)
	require.NoError(t, err)
	assert.InDelta(t, (1.2+0.2+0.2)*70, grams, 1e-9)
}

func TestProteinGramsActivityIncrements(t *testing.T) {
	increments := map[ActivityLevel]float64{
		ActivitySedentary:  0.0,
		ActivityLight:      0.1,
		ActivityModerate:   0.2,
		ActivityActive:     0.4,
		ActivityVeryActive: 0.4,
	}
	for level, inc := range increments {
		p := maleProfile()
		p.ActivityLevel = level
		grams, err := ProteinGrams(p)
		require.NoError(t, err)
		assert.InDelta(t, (1.2+inc)*70, grams, 1e-9, "level %s", level)
	}
}

func TestProteinGramsUnsupportedGoal(t *testing.T) {
	p := maleProfile()
	p.Goal = "BULK"
	_, err := ProteinGrams(p)
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestFatGramsByGoal(t *testing.T) {
	shares := map[Goal]float64{
		GoalWeightLoss:        0.20,
		GoalWeightLossMuscle:  0.25,
		GoalMaintenance:       0.25,
		GoalMaintenanceMuscle: 0.30,
		GoalWeightGain:        0.30,
		GoalWeightGainMuscle:  0.35,
	}
	for goal, share := range shares {
		p := maleProfile()
		p.Goal = goal
		grams, err := FatGrams(p, 2000)
		require.NoError(t, err)
		assert.InDelta(t, 2000*share/9.0, grams, 1e-9, "goal %s", goal)
	}
}

func TestFatSplit(t *testing.T) {
	sat, unsat := FatSplit(100)
	assert.InDelta(t, 30.0, sat, 1e-9)
	assert.InDelta(t, 70.0, unsat, 1e-9)
}

func TestCarbGrams(t *testing.T) {
	// (2000 - 98*4 - 50*9) / 4
	assert.InDelta(t, 289.5, CarbGrams(2000, 98, 50), 1e-9)
}

// Extreme biometric/goal combinations can allocate more protein+fat energy
// than the total budget. The allocation is deliberately not clamped at zero.
func TestCarbGramsCanGoNegative(t *testing.T) {
	carbs := CarbGrams(1000, 150, 60)
	assert.InDelta(t, -35.0, carbs, 1e-9)
	assert.Less(t, carbs, 0.0)
}
