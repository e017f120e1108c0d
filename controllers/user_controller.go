package controllers

import (
	"net/http"

	"backend/config"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	userSvc := services.NewUserService(config.DB)
	user, err := userSvc.GetUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             user.ID,
		"email":          user.Email,
		"full_name":      user.FullName,
		"birthday":       user.Birthday.Format("2006-01-02"),
		"age":            age,
		"weight_kg":      user.WeightKg,
		"height_cm":      user.HeightCm,
		"gender":         user.Gender,
		"activity_level": user.ActivityLevel,
		"goal":           user.Goal,
	})
}

func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	user, err := userSvc.UpdateProfile(userID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "id": user.ID})
}
