package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Food catalog
	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.POST("", controllers.CreateFood)
		foods.GET("", controllers.SearchFoods)
		foods.GET("/:id", controllers.GetFood)
	}

	// Meals and their nutrient breakdowns
	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", controllers.LogMeal)
		meals.GET("", controllers.ListMeals)
		meals.GET("/:id", controllers.GetMeal)
		meals.DELETE("/:id", controllers.DeleteMeal)
		meals.GET("/:id/nutrients", controllers.GetMealNutrients)
		meals.GET("/:id/nutrients/ingredients", controllers.GetMealNutrientsPerIngredient)
	}

	// Daily ledger and period projections
	intake := r.Group("/intake")
	intake.Use(middlewares.AuthMiddleware())
	{
		intake.GET("/today", controllers.GetDailyIntake)
		intake.POST("/consume/:mealId", controllers.ConsumeMeal)
		intake.GET("/weekly", controllers.GetWeeklyIntake)
		intake.GET("/monthly", controllers.GetMonthlyIntake)
	}

	return r
}
