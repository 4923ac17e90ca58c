package services

import "github.com/Akralan/NutriPlanner-sub000/models"

// MealValidationRatio gates the "validate meal" workflow: a meal may
// only be validated once its accumulated calories reach 80% of the
// per-meal target.
const MealValidationRatio = 0.8

// IsMealReadyToValidate reports whether the meal has accumulated enough
// calories to be validated. The boundary is inclusive: exactly 80%
// passes. Compared as accumulated*5 ≥ target*4 so the 4/5 ratio stays
// exact and the boundary does not drift with float rounding.
func IsMealReadyToValidate(accumulatedCalories, caloriesPerMealTarget float64) bool {
	return accumulatedCalories*5 >= caloriesPerMealTarget*4
}

// TargetsForUser resolves the canonical daily and per-meal calorie
// targets for a profile. There is exactly one computation
// (DailyCalories / MealsPerDay) and one fallback: an incomplete profile
// yields DefaultCaloriesPerMeal for the per-meal target and 0 for the
// daily target (callers treat 0 as "no daily target available").
func TargetsForUser(u *models.User) (daily, perMeal int) {
	daily, err := DailyCalories(u.WeightKg, u.HeightCm, u.WorkoutsPerWeek, u.CalorieThresholdPercent)
	if err != nil {
		return 0, DefaultCaloriesPerMeal
	}
	perMeal, err = CaloriesPerMeal(daily, u.MealsPerDay)
	if err != nil {
		return daily, DefaultCaloriesPerMeal
	}
	return daily, perMeal
}
