// controllers/weight_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Akralan/NutriPlanner-sub000/models"
	"github.com/Akralan/NutriPlanner-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WeightController struct {
	DB      *gorm.DB
	Weights *services.WeightService
	Meals   *services.MealService
}

func NewWeightController(db *gorm.DB, weights *services.WeightService, meals *services.MealService) *WeightController {
	return &WeightController{DB: db, Weights: weights, Meals: meals}
}

// RecordWeight handles POST /users/:id/weight.
// Body: { "date": "YYYY-MM-DD", "weight_kg": 71.4 }. Date defaults to today.
// The measurement also updates the profile weight, so today's nutrition
// log is rewritten with the shifted calorie target.
func (h *WeightController) RecordWeight(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	var req struct {
		Date     string  `json:"date"`
		WeightKg float64 `json:"weight_kg"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.WeightKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight_kg must be positive"})
		return
	}

	day := time.Now()
	if req.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", req.Date, day.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		day = d
	}

	entry, err := h.Weights.Record(userID, day, req.WeightKg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("weight_kg", req.WeightKg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Target moved with the weight; today's snapshot must follow.
	if _, err := h.Meals.RefreshToday(userID, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetWeightTrend handles GET /users/:id/weight/trend.
func (h *WeightController) GetWeightTrend(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	trend, err := h.Weights.Trend(userID, user.HeightCm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trend)
}
