package models

import (
    "time"

    "gorm.io/gorm"
)

// One Meal (breakfast/lunch/…), composed of catalog items.
type Meal struct {
    gorm.Model
    UserID      uint `gorm:"index"` // FK → users.id
    Name        string
    Type        string    // "Breakfast"|"Lunch"|…
    AteAt       time.Time // timestamp of the meal
    Ingredients []MealIngredient
}

// One line of a meal: a catalog item and how many grams of it.
type MealIngredient struct {
    gorm.Model
    MealID     uint `gorm:"index;not null"`
    FoodItemID uint `gorm:"not null"`
    FoodItem   FoodItem

    QuantityGrams float64 // e.g. 200
}
