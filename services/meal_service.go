package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealIngredientRequest struct {
	FoodItemID    uint    `json:"food_item_id"`
	QuantityGrams float64 `json:"quantity_grams"`
}

func (s *MealService) AddMeal(
	userID uint,
	name, mealType string,
	ateAt time.Time,
	items []MealIngredientRequest,
) (*models.Meal, error) {
	meal := &models.Meal{UserID: userID, Name: name, Type: mealType, AteAt: ateAt}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	for _, it := range items {
		var food models.FoodItem
		if err := s.db.First(&food, it.FoodItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFoodNotFound
			}
			return nil, err
		}

		qty := it.QuantityGrams
		if qty <= 0 {
			// fall back to the item's canonical portion weight
			qty = food.PortionGrams
		}

		ingredient := &models.MealIngredient{
			MealID:        meal.ID,
			FoodItemID:    food.ID,
			QuantityGrams: qty,
		}
		if err := s.db.Create(ingredient).Error; err != nil {
			return nil, err
		}
	}

	return s.GetMeal(userID, meal.ID)
}

// GetMeal loads a meal with its full composition: ingredients, their
// catalog items and the per-100g nutrient records.
func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Ingredients.FoodItem.Nutrients").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Ingredients.FoodItem.Nutrients").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return err
	}
	if err := s.db.
		Where("meal_id = ?", meal.ID).
		Delete(&models.MealIngredient{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Meal{}, meal.ID).Error
}

// CalculateMealNutrients aggregates the whole meal into one nutrient map.
func (s *MealService) CalculateMealNutrients(userID, mealID uint) (NutrientMap, error) {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}
	return AggregateMeal(meal.Ingredients), nil
}

// CalculateNutrientsPerIngredient aggregates each ingredient separately,
// keyed by ingredient id, with keys consistent with the whole-meal view.
func (s *MealService) CalculateNutrientsPerIngredient(userID, mealID uint) (map[uint]NutrientMap, error) {
	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}
	return AggregatePerIngredient(meal.Ingredients), nil
}
