package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func newIntakeService() *services.IntakeService {
	userSvc := services.NewUserService(config.DB)
	mealSvc := services.NewMealService(config.DB)
	return services.NewIntakeService(config.DB, userSvc, mealSvc)
}

// GetDailyIntake returns today's remaining recommended intake, creating the
// ledger row from the user's personalized baseline on first access.
func GetDailyIntake(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	row, err := newIntakeService().GetOrCreateDailyIntake(userID, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	nutrients := make(map[string]float64, len(row.Nutrients))
	for _, n := range row.Nutrients {
		nutrients[n.Name] = n.Remaining
	}
	c.JSON(http.StatusOK, gin.H{
		"date":      row.Date.Format("2006-01-02"),
		"nutrients": nutrients,
	})
}

// ConsumeMeal subtracts a meal's nutrients from today's ledger row and
// returns the remaining values.
func ConsumeMeal(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, err := strconv.ParseUint(c.Param("mealId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	remaining, err := newIntakeService().ConsumeMeal(userID, uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_id": id, "remaining": remaining})
}

func GetWeeklyIntake(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	projSvc := services.NewProjectionService(config.DB, newIntakeService())
	totals, err := projSvc.AdjustedWeeklyIntake(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": "week", "nutrients": totals})
}

func GetMonthlyIntake(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	projSvc := services.NewProjectionService(config.DB, newIntakeService())
	totals, err := projSvc.AdjustedMonthlyIntake(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": "month", "nutrients": totals})
}
