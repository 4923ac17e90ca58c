// controllers/meal_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Akralan/NutriPlanner-sub000/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

// ValidateMeal handles POST /users/:id/meals/:mealId/validate. A meal
// below 80% of the per-meal calorie target is rejected with 422 and
// nothing is persisted.
func (h *MealController) ValidateMeal(c *gin.Context) {
	userID, ok := userIDFromPath(c)
	if !ok {
		return
	}
	mealID, err := strconv.ParseUint(c.Param("mealId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, log, err := h.Meals.ValidateMeal(userID, uint(mealID), time.Now())
	switch {
	case errors.Is(err, services.ErrMealIncomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal, "log": log})
}
