package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func mealID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return 0, false
	}
	return uint(id), true
}

func LogMeal(c *gin.Context) {
	var body struct {
		Name  string                           `json:"name"`
		Type  string                           `json:"type"`
		AteAt time.Time                        `json:"ate_at"`
		Items []services.MealIngredientRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.MustGet("userID").(uint)

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.AddMeal(userID, body.Name, body.Type, body.AteAt, body.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	mealSvc := services.NewMealService(config.DB)
	meals, err := mealSvc.ListMeals(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func GetMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := mealID(c)
	if !ok {
		return
	}

	mealSvc := services.NewMealService(config.DB)
	meal, err := mealSvc.GetMeal(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := mealID(c)
	if !ok {
		return
	}

	mealSvc := services.NewMealService(config.DB)
	if err := mealSvc.DeleteMeal(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func GetMealNutrients(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := mealID(c)
	if !ok {
		return
	}

	mealSvc := services.NewMealService(config.DB)
	nutrients, err := mealSvc.CalculateMealNutrients(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_id": id, "nutrients": nutrients})
}

func GetMealNutrientsPerIngredient(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, ok := mealID(c)
	if !ok {
		return
	}

	mealSvc := services.NewMealService(config.DB)
	perIngredient, err := mealSvc.CalculateNutrientsPerIngredient(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_id": id, "ingredients": perIngredient})
}
