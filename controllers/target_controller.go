// controllers/target_controller.go
package controllers

import (
	"net/http"

	"github.com/Akralan/NutriPlanner-sub000/services"

	"github.com/gin-gonic/gin"
)

// Target computation is stateless: profile parameters in, computed
// targets out, no hidden state (the engine holds none).

type targetRequest struct {
	WeightKg         float64 `json:"weight_kg"`
	HeightCm         float64 `json:"height_cm"`
	WorkoutsPerWeek  int     `json:"workouts_per_week"`
	ThresholdPercent int     `json:"threshold_percent"`
	MealsPerDay      int     `json:"meals_per_day"` // optional; 0 omits the per-meal target
}

type targetResponse struct {
	DailyCalories   int                   `json:"daily_calories"`
	CaloriesPerMeal *int                  `json:"calories_per_meal,omitempty"`
	Macros          services.MacroTargets `json:"macros"`
}

// ComputeTargets handles POST /targets.
func ComputeTargets(c *gin.Context) {
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	daily, err := services.DailyCalories(req.WeightKg, req.HeightCm, req.WorkoutsPerWeek, req.ThresholdPercent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	macros, err := services.MacrosForCalories(daily)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := targetResponse{DailyCalories: daily, Macros: macros}
	if req.MealsPerDay > 0 {
		perMeal, err := services.CaloriesPerMeal(daily, req.MealsPerDay)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		resp.CaloriesPerMeal = &perMeal
	}
	c.JSON(http.StatusOK, resp)
}

type scoreRequest struct {
	TotalCalories  float64 `json:"total_calories"`
	TargetCalories float64 `json:"target_calories"`
}

// ComputeScore handles POST /score.
func ComputeScore(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := services.Score(req.TotalCalories, req.TargetCalories)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score, "badge": services.Badge(score)})
}
