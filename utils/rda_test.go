package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendedIntakesCoversReferenceTable(t *testing.T) {
	table := RecommendedIntakes()
	assert.GreaterOrEqual(t, len(table), 85)

	for _, key := range []string{
		KeyEnergy, KeyProtein, KeyFat,
		KeySaturatedFat, KeyPolyunsaturatedFat, KeyCarbohydrate,
	} {
		_, ok := table[key]
		assert.True(t, ok, "missing key %q", key)
	}
}

func TestRecommendedIntakesReturnsACopy(t *testing.T) {
	first := RecommendedIntakes()
	first[KeyProtein] = RDAValue{Value: 999, Unit: "g"}

	second := RecommendedIntakes()
	assert.InDelta(t, 50, second[KeyProtein].Value, 1e-9)
}
