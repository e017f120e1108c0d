package utils

import (
	"regexp"
	"strings"
)

// Matches a trailing unit suffix such as " (g)", " (mg)" or " (µg)" that
// external food data sources append to nutrient names.
var unitSuffix = regexp.MustCompile(`\s*\((g|mg|µg)\)$`)

// NormalizeNutrientName canonicalizes a free-text nutrient name so that
// externally sourced names ("Protein (g)") match the internal recommended
// intake keys ("Protein"): lowercase, drop one trailing unit suffix, then
// remove all remaining whitespace. Idempotent.
func NormalizeNutrientName(name string) string {
	n := strings.ToLower(name)
	n = unitSuffix.ReplaceAllString(n, "")
	return strings.Join(strings.Fields(n), "")
}
