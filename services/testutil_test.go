package services

import (
	"testing"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a second connection would see a different empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.FoodNutrient{},
		&models.Meal{},
		&models.MealIngredient{},
		&models.DailyIntake{},
		&models.IntakeNutrient{},
	))
	return db
}

// seedUser inserts a user with a fully populated biometric profile:
// male, 70kg, 175cm, age 30, moderately active, maintenance.
func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		Email:         "test@example.com",
		Password:      "irrelevant",
		FullName:      "Test User",
		WeightKg:      70,
		HeightCm:      175,
		Birthday:      time.Now().AddDate(-30, 0, -1),
		Gender:        string(utils.GenderMale),
		ActivityLevel: string(utils.ActivityModerate),
		Goal:          string(utils.GoalMaintenance),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedMeal creates one meal of a single food item eaten at the given
// quantity, with the given per-100g nutrient records.
func seedMeal(t *testing.T, db *gorm.DB, userID uint, qtyGrams float64, nutrients ...models.FoodNutrient) *models.Meal {
	t.Helper()

	food := &models.FoodItem{Name: "Test Food", PortionGrams: 100, Nutrients: nutrients}
	require.NoError(t, db.Create(food).Error)

	meal := &models.Meal{UserID: userID, Name: "Test Meal", Type: "Lunch", AteAt: time.Now()}
	require.NoError(t, db.Create(meal).Error)
	require.NoError(t, db.Create(&models.MealIngredient{
		MealID:        meal.ID,
		FoodItemID:    food.ID,
		QuantityGrams: qtyGrams,
	}).Error)
	return meal
}

func newTestIntakeService(db *gorm.DB) *IntakeService {
	return NewIntakeService(db, NewUserService(db), NewMealService(db))
}
