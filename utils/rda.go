package utils

// RDAValue is one recommended-daily-allowance entry.
type RDAValue struct {
	Value float64
	Unit  string
}

// Canonical keys for the entries the personalized computation overwrites.
const (
	KeyEnergy             = "Energy"
	KeyProtein            = "Protein"
	KeyFat                = "Total lipid (fat)"
	KeySaturatedFat       = "Fatty acids, total saturated"
	KeyPolyunsaturatedFat = "Fatty acids, total polyunsaturated"
	KeyCarbohydrate       = "Carbohydrate, by difference"
)

// recommendedIntakes holds population-default daily allowances keyed by
// USDA-style nutrient names. Vitamins and minerals are not individually
// personalized; only the six energy/macro keys above get overwritten
// when a ledger row is seeded.
var recommendedIntakes = map[string]RDAValue{
	KeyEnergy:             {2000, "kcal"},
	KeyProtein:            {50, "g"},
	KeyFat:                {70, "g"},
	KeySaturatedFat:       {20, "g"},
	KeyPolyunsaturatedFat: {20, "g"},
	KeyCarbohydrate:       {260, "g"},

	"Fatty acids, total monounsaturated": {30, "g"},
	"Fatty acids, total trans":           {2, "g"},
	"Cholesterol":                        {300, "mg"},
	"Fiber, total dietary":               {30, "g"},
	"Sugars, total including NLEA":       {50, "g"},
	"Water":                              {3700, "g"},
	"Caffeine":                           {400, "mg"},
	"Theobromine":                        {250, "mg"},
	"Alcohol, ethyl":                     {10, "g"},
	"Ash":                                {5, "g"},
	"Starch":                             {130, "g"},

	// Sugars
	"Sucrose":   {25, "g"},
	"Glucose":   {25, "g"},
	"Fructose":  {25, "g"},
	"Lactose":   {25, "g"},
	"Maltose":   {25, "g"},
	"Galactose": {25, "g"},

	// Vitamins
	"Vitamin A, RAE":                   {900, "µg"},
	"Retinol":                          {900, "µg"},
	"Carotene, beta":                   {6000, "µg"},
	"Carotene, alpha":                  {6000, "µg"},
	"Cryptoxanthin, beta":              {6000, "µg"},
	"Lycopene":                         {6000, "µg"},
	"Lutein + zeaxanthin":              {10000, "µg"},
	"Vitamin B-6":                      {1.7, "mg"},
	"Vitamin B-12":                     {2.4, "µg"},
	"Vitamin B-12, added":              {2.4, "µg"},
	"Vitamin C, total ascorbic acid":   {90, "mg"},
	"Vitamin D (D2 + D3)":              {20, "µg"},
	"Vitamin D2 (ergocalciferol)":      {20, "µg"},
	"Vitamin D3 (cholecalciferol)":     {20, "µg"},
	"Vitamin E (alpha-tocopherol)":     {15, "mg"},
	"Vitamin E, added":                 {15, "mg"},
	"Tocopherol, beta":                 {15, "mg"},
	"Tocopherol, gamma":                {15, "mg"},
	"Tocopherol, delta":                {15, "mg"},
	"Tocotrienol, alpha":               {15, "mg"},
	"Tocotrienol, beta":                {15, "mg"},
	"Tocotrienol, gamma":               {15, "mg"},
	"Tocotrienol, delta":               {15, "mg"},
	"Vitamin K (phylloquinone)":        {120, "µg"},
	"Vitamin K (Dihydrophylloquinone)": {120, "µg"},
	"Vitamin K (Menaquinone-4)":        {120, "µg"},
	"Thiamin":                          {1.2, "mg"},
	"Riboflavin":                       {1.3, "mg"},
	"Niacin":                           {16, "mg"},
	"Pantothenic acid":                 {5, "mg"},
	"Biotin":                           {30, "µg"},
	"Folate, total":                    {400, "µg"},
	"Folic acid":                       {400, "µg"},
	"Folate, food":                     {400, "µg"},
	"Folate, DFE":                      {400, "µg"},
	"Choline, total":                   {550, "mg"},
	"Betaine":                          {550, "mg"},

	// Minerals
	"Calcium, Ca":    {1300, "mg"},
	"Iron, Fe":       {18, "mg"},
	"Magnesium, Mg":  {420, "mg"},
	"Phosphorus, P":  {1250, "mg"},
	"Potassium, K":   {4700, "mg"},
	"Sodium, Na":     {2300, "mg"},
	"Zinc, Zn":       {11, "mg"},
	"Copper, Cu":     {0.9, "mg"},
	"Manganese, Mn":  {2.3, "mg"},
	"Selenium, Se":   {55, "µg"},
	"Fluoride, F":    {4000, "µg"},
	"Iodine, I":      {150, "µg"},
	"Chromium, Cr":   {35, "µg"},
	"Molybdenum, Mo": {45, "µg"},
	"Chlorine, Cl":   {2300, "mg"},

	// Amino acids
	"Tryptophan":     {0.28, "g"},
	"Threonine":      {1.05, "g"},
	"Isoleucine":     {1.40, "g"},
	"Leucine":        {2.73, "g"},
	"Lysine":         {2.10, "g"},
	"Methionine":     {0.73, "g"},
	"Cystine":        {0.29, "g"},
	"Phenylalanine":  {1.75, "g"},
	"Tyrosine":       {1.75, "g"},
	"Valine":         {1.82, "g"},
	"Arginine":       {4.00, "g"},
	"Histidine":      {0.70, "g"},
	"Alanine":        {3.00, "g"},
	"Aspartic acid":  {6.00, "g"},
	"Glutamic acid":  {13.00, "g"},
	"Glycine":        {3.50, "g"},
	"Proline":        {5.00, "g"},
	"Serine":         {4.00, "g"},
	"Hydroxyproline": {0.30, "g"},

	// Omega fatty acids
	"PUFA 18:3 n-3 c,c,c (ALA)": {1.6, "g"},
	"PUFA 20:5 n-3 (EPA)":       {0.25, "g"},
	"PUFA 22:6 n-3 (DHA)":       {0.25, "g"},
	"PUFA 18:2 n-6 c,c":         {17, "g"},
}

// RecommendedIntakes returns a fresh copy of the reference table so
// callers can overwrite entries without mutating the shared default.
func RecommendedIntakes() map[string]RDAValue {
	out := make(map[string]RDAValue, len(recommendedIntakes))
	for name, v := range recommendedIntakes {
		out[name] = v
	}
	return out
}
