package services

import (
	"errors"
	"time"

	"github.com/Akralan/NutriPlanner-sub000/models"

	"gorm.io/gorm"
)

// MealService is the meal-history feed plus the "validate meal"
// workflow. Meal creation/editing is handled by the grocery-list CRUD
// layer of the surrounding app; this service only reads meals and
// records completions.
type MealService struct {
	db      *gorm.DB
	catalog FoodCatalogLookup
	logs    *NutritionLogService
	hub     *ProgressHub
}

func NewMealService(db *gorm.DB, catalog FoodCatalogLookup, logs *NutritionLogService, hub *ProgressHub) *MealService {
	return &MealService{db: db, catalog: catalog, logs: logs, hub: hub}
}

// MealsWithCompletions returns the user's meals with their completion
// history preloaded — the feed TotalsForWindow consumes.
func (s *MealService) MealsWithCompletions(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Completions").
		Where("user_id = ?", userID).
		Find(&meals).Error
	return meals, err
}

// ValidateMeal runs the validation workflow: resolve the per-meal
// target, apply the 80% gate, and only then record a completion and
// rewrite today's nutrition log. Below the gate nothing is persisted.
func (s *MealService) ValidateMeal(userID, mealID uint, now time.Time) (*models.Meal, *models.NutritionLog, error) {
	var meal models.Meal
	if err := s.db.
		Preload("Ingredients").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, nil, err
	}

	// Meals assembled before their nutrition snapshot was taken carry
	// zero totals; re-derive them from the ingredient list.
	if meal.Calories == 0 && len(meal.Ingredients) > 0 {
		facts, err := MealNutrition(meal.Ingredients, s.catalog)
		if err != nil {
			return nil, nil, err
		}
		meal.Calories = facts.Calories
		meal.Protein = facts.Protein
		meal.Carbs = facts.Carbs
		meal.Fat = facts.Fat
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, nil, err
	}
	daily, perMeal := TargetsForUser(&user)

	if !IsMealReadyToValidate(meal.Calories, float64(perMeal)) {
		return nil, nil, ErrMealIncomplete
	}

	completion := models.MealCompletion{MealID: meal.ID, CompletedAt: now}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&completion).Error; err != nil {
			return err
		}
		meal.Completed = true
		return tx.Save(&meal).Error
	})
	if err != nil {
		return nil, nil, err
	}

	log, err := s.refreshLog(userID, daily, now)
	if err != nil {
		return nil, nil, err
	}

	if s.hub != nil {
		score := 0
		if daily > 0 {
			score, _ = Score(log.Calories, float64(daily))
		}
		s.hub.BroadcastProgress(userID, map[string]any{
			"kind":  "progress.updated",
			"log":   log,
			"score": score,
			"badge": Badge(score),
		})
	}
	return &meal, log, nil
}

// RefreshToday recomputes and rewrites today's snapshot, e.g. after a
// profile change shifts the target.
func (s *MealService) RefreshToday(userID uint, now time.Time) (*models.NutritionLog, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	daily, _ := TargetsForUser(&user)
	return s.refreshLog(userID, daily, now)
}

func (s *MealService) refreshLog(userID uint, dailyTarget int, day time.Time) (*models.NutritionLog, error) {
	meals, err := s.MealsWithCompletions(userID)
	if err != nil {
		return nil, err
	}
	today := TotalsForWindow(meals, day, 1)[0]
	return s.logs.Upsert(userID, today, dailyTarget)
}

// IsNotFound reports whether err is the store's not-found error, so
// controllers don't import gorm directly.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
