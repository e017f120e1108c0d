package models

import "gorm.io/gorm"

// A catalog entry. Nutrient amounts are stored per 100g of the item.
type FoodItem struct {
    gorm.Model
    Name         string `gorm:"not null;index"`
    Category     string
    PortionGrams float64 // canonical portion weight, fallback when a meal line has no quantity
    Nutrients    []FoodNutrient
}

type FoodNutrient struct {
    gorm.Model
    FoodItemID uint `gorm:"index;not null"`

    Name     string   // as reported by the data source, e.g. "Protein (g)"
    Amount   *float64 // per 100g; nil when the source omitted the value
    Unit     string
    SourceID *int64 // nutrient id in the originating data source
}
