package routes

import (
	"github.com/Akralan/NutriPlanner-sub000/controllers"
	"github.com/Akralan/NutriPlanner-sub000/middlewares"
	"github.com/Akralan/NutriPlanner-sub000/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	hub := services.NewProgressHub()
	catalog := services.NewCatalogService(db)
	logs := services.NewNutritionLogService(db)
	meals := services.NewMealService(db, catalog, logs, hub)
	weights := services.NewWeightService(db)

	nutritionCtl := controllers.NewNutritionController(db, meals, logs)
	mealCtl := controllers.NewMealController(meals)
	progressCtl := controllers.NewProgressController(hub)
	weightCtl := controllers.NewWeightController(db, weights, meals)
	catalogCtl := controllers.NewCatalogController(catalog)

	// Stateless computation endpoints: inputs in, computed targets out.
	r.POST("/targets", controllers.ComputeTargets)
	r.POST("/score", controllers.ComputeScore)

	r.GET("/catalog", catalogCtl.GetCatalog)

	// Per-user routes. Authentication happens upstream (gateway); the
	// limiter keys on the user id so one user cannot starve the rest.
	user := r.Group("/users/:id")
	user.Use(middlewares.RateLimit(rate.Limit(5), 10))
	{
		user.GET("/nutrition/window", nutritionCtl.GetWindow)
		user.GET("/nutrition/log", nutritionCtl.GetHistory)
		user.POST("/meals/:mealId/validate", mealCtl.ValidateMeal)
		user.GET("/progress/ws", progressCtl.ProgressWS)
		user.POST("/weight", weightCtl.RecordWeight)
		user.GET("/weight/trend", weightCtl.GetWeightTrend)
	}

	return r
}
