// controllers/nutrition_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Akralan/NutriPlanner-sub000/models"
	"github.com/Akralan/NutriPlanner-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NutritionController struct {
	DB    *gorm.DB
	Meals *services.MealService
	Logs  *services.NutritionLogService
}

func NewNutritionController(db *gorm.DB, meals *services.MealService, logs *services.NutritionLogService) *NutritionController {
	return &NutritionController{DB: db, Meals: meals, Logs: logs}
}

type windowDay struct {
	Date      string  `json:"date"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	MealCount int     `json:"meal_count"`
	Score     int     `json:"score"`
	Badge     string  `json:"badge"`
}

// GetWindow handles GET /users/:id/nutrition/window?days=7&date=YYYY-MM-DD.
// Returns exactly `days` chartable entries ending at `date` inclusive,
// each scored against the user's daily target.
func (h *NutritionController) GetWindow(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be 1..90"})
			return
		}
		days = n
	}

	reference := time.Now()
	if v := c.Query("date"); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, reference.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		reference = d
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	daily, err := services.DailyCalories(user.WeightKg, user.HeightCm, user.WorkoutsPerWeek, user.CalorieThresholdPercent)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile incomplete: set weight and height first"})
		return
	}

	meals, err := h.Meals.MealsWithCompletions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals := services.TotalsForWindow(meals, reference, days)
	out := make([]windowDay, 0, len(totals))
	for _, t := range totals {
		score, _ := services.Score(t.Calories, float64(daily))
		out = append(out, windowDay{
			Date:      t.Date.Format("2006-01-02"),
			Calories:  t.Calories,
			Protein:   t.Protein,
			Carbs:     t.Carbs,
			Fat:       t.Fat,
			MealCount: t.MealCount,
			Score:     score,
			Badge:     services.Badge(score),
		})
	}
	c.JSON(http.StatusOK, gin.H{"target_calories": daily, "days": out})
}

// GetHistory handles GET /users/:id/nutrition/log — the persisted daily
// snapshots, newest first.
func (h *NutritionController) GetHistory(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}

	rows, err := h.Logs.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// --- helpers ---

func userIDFromPath(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return uint(id), true
}
