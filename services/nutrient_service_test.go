package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fptr(v float64) *float64 { return &v }

func ingredient(id uint, qty float64, nutrients ...models.FoodNutrient) models.MealIngredient {
	return models.MealIngredient{
		Model:         gorm.Model{ID: id},
		QuantityGrams: qty,
		FoodItem:      models.FoodItem{Nutrients: nutrients},
	}
}

func TestAggregateMealScalesPer100g(t *testing.T) {
	ings := []models.MealIngredient{
		ingredient(1, 250, models.FoodNutrient{Name: "Protein", Amount: fptr(10), Unit: "g"}),
	}
	got := AggregateMeal(ings)
	require.Len(t, got, 1)
	assert.InDelta(t, 25.0, got["Protein"].Value, 1e-9)
	assert.Equal(t, "g", got["Protein"].Unit)
}

func TestAggregateMealMergesSameName(t *testing.T) {
	src := int64(1003)
	ings := []models.MealIngredient{
		ingredient(1, 100, models.FoodNutrient{Name: "Protein", Amount: fptr(10), Unit: "g", SourceID: &src}),
		ingredient(2, 200, models.FoodNutrient{Name: "Protein", Amount: fptr(5), Unit: "g"}),
	}
	got := AggregateMeal(ings)
	require.Len(t, got, 1)
	// 10*1.0 + 5*2.0; metadata from the first-seen record
	info := got["Protein g"] // duplicate raw name → unit-qualified key
	assert.InDelta(t, 20.0, info.Value, 1e-9)
	assert.Equal(t, "Protein", info.Name)
	require.NotNil(t, info.SourceID)
	assert.Equal(t, int64(1003), *info.SourceID)
}

func TestAggregateMealDisambiguatesByUnit(t *testing.T) {
	ings := []models.MealIngredient{
		ingredient(1, 100,
			models.FoodNutrient{Name: "Vitamin D", Amount: fptr(5), Unit: "µg"},
			models.FoodNutrient{Name: "Energy", Amount: fptr(120), Unit: "kcal"},
		),
		ingredient(2, 100,
			models.FoodNutrient{Name: "Vitamin D", Amount: fptr(200), Unit: "IU"},
		),
	}
	got := AggregateMeal(ings)
	require.Len(t, got, 3)

	// duplicated name splits per unit; the two physically different
	// measurements are not merged
	assert.InDelta(t, 5.0, got["Vitamin D µg"].Value, 1e-9)
	assert.InDelta(t, 200.0, got["Vitamin D IU"].Value, 1e-9)

	// unique name keeps the bare key
	assert.InDelta(t, 120.0, got["Energy"].Value, 1e-9)
}

func TestAggregateMealSkipsIncompleteRecords(t *testing.T) {
	ings := []models.MealIngredient{
		ingredient(1, 100,
			models.FoodNutrient{Name: "", Amount: fptr(10), Unit: "g"},
			models.FoodNutrient{Name: "Fiber, total dietary", Amount: nil, Unit: "g"},
			models.FoodNutrient{Name: "Protein", Amount: fptr(8), Unit: "g"},
		),
	}
	got := AggregateMeal(ings)
	require.Len(t, got, 1)
	assert.InDelta(t, 8.0, got["Protein"].Value, 1e-9)
}

func TestAggregateMealEmptyIngredients(t *testing.T) {
	assert.Empty(t, AggregateMeal(nil))
	assert.Empty(t, AggregateMeal([]models.MealIngredient{}))
}

func TestAggregatePerIngredientKeysMatchWholeMeal(t *testing.T) {
	ings := []models.MealIngredient{
		ingredient(7, 100, models.FoodNutrient{Name: "Vitamin D", Amount: fptr(5), Unit: "µg"}),
		ingredient(8, 100, models.FoodNutrient{Name: "Vitamin D", Amount: fptr(200), Unit: "IU"}),
	}
	per := AggregatePerIngredient(ings)
	require.Len(t, per, 2)

	// disambiguation is computed over the full set, so a partial view still
	// carries the unit-qualified key
	assert.Contains(t, per[7], "Vitamin D µg")
	assert.Contains(t, per[8], "Vitamin D IU")
}

func TestAggregationAdditivity(t *testing.T) {
	ings := []models.MealIngredient{
		ingredient(1, 150,
			models.FoodNutrient{Name: "Protein", Amount: fptr(12), Unit: "g"},
			models.FoodNutrient{Name: "Energy", Amount: fptr(200), Unit: "kcal"},
		),
		ingredient(2, 80,
			models.FoodNutrient{Name: "Protein", Amount: fptr(3), Unit: "g"},
			models.FoodNutrient{Name: "Iron, Fe", Amount: fptr(2.5), Unit: "mg"},
		),
		ingredient(3, 45,
			models.FoodNutrient{Name: "Energy", Amount: fptr(350), Unit: "kcal"},
		),
	}

	whole := AggregateMeal(ings)

	merged := map[string]float64{}
	for _, m := range AggregatePerIngredient(ings) {
		for key, info := range m {
			merged[key] += info.Value
		}
	}

	require.Len(t, merged, len(whole))
	for key, info := range whole {
		assert.InDelta(t, info.Value, merged[key], 1e-9, "key %q", key)
	}
}
