package services

import (
	"backend/models"
)

// NutrientInfo is one aggregated nutrient of a meal. Name keeps the raw
// display name even when the aggregation key was disambiguated with a unit.
type NutrientInfo struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
	SourceID *int64  `json:"source_id,omitempty"`
}

// NutrientMap maps an aggregation key to its summed nutrient entry.
type NutrientMap map[string]NutrientInfo

// AggregateMeal sums the nutrient contributions of all ingredients into one
// map. Each nutrient record holds an amount per 100g, scaled by the
// ingredient's quantity. Records sharing an aggregation key are summed;
// unit and source metadata stay as first seen.
func AggregateMeal(ingredients []models.MealIngredient) NutrientMap {
	counts := nutrientNameCounts(ingredients)
	out := NutrientMap{}
	for _, ing := range ingredients {
		accumulateNutrients(out, ing, counts)
	}
	return out
}

// AggregatePerIngredient produces one nutrient map per ingredient, keyed by
// ingredient id. Name counts are taken over the full ingredient set so the
// per-ingredient keys line up with AggregateMeal for the same meal: partial
// views would disambiguate differently.
func AggregatePerIngredient(ingredients []models.MealIngredient) map[uint]NutrientMap {
	counts := nutrientNameCounts(ingredients)
	out := make(map[uint]NutrientMap, len(ingredients))
	for _, ing := range ingredients {
		m := NutrientMap{}
		accumulateNutrients(m, ing, counts)
		out[ing.ID] = m
	}
	return out
}

// nutrientNameCounts counts raw (pre-normalized) nutrient name occurrences
// across the whole ingredient set. A name seen more than once gets its unit
// appended to the aggregation key, so two physically different nutrients
// that share a display name but differ by unit are not merged.
func nutrientNameCounts(ingredients []models.MealIngredient) map[string]int {
	counts := map[string]int{}
	for _, ing := range ingredients {
		for _, n := range ing.FoodItem.Nutrients {
			if n.Name == "" {
				continue
			}
			counts[n.Name]++
		}
	}
	return counts
}

func aggregationKey(name, unit string, counts map[string]int) string {
	if counts[name] > 1 {
		return name + " " + unit
	}
	return name
}

func accumulateNutrients(dst NutrientMap, ing models.MealIngredient, counts map[string]int) {
	for _, n := range ing.FoodItem.Nutrients {
		if n.Name == "" || n.Amount == nil {
			// incomplete source data, skip rather than fail
			continue
		}
		scaled := *n.Amount * ing.QuantityGrams / 100.0
		key := aggregationKey(n.Name, n.Unit, counts)
		if cur, ok := dst[key]; ok {
			cur.Value += scaled
			dst[key] = cur
		} else {
			dst[key] = NutrientInfo{Name: n.Name, Value: scaled, Unit: n.Unit, SourceID: n.SourceID}
		}
	}
}
