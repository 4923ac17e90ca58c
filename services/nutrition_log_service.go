package services

import (
	"time"

	"github.com/Akralan/NutriPlanner-sub000/models"

	"gorm.io/gorm"
)

// NutritionLogService persists the daily snapshots the engine computes.
// The engine computes the values, this store persists them.
type NutritionLogService struct{ db *gorm.DB }

func NewNutritionLogService(db *gorm.DB) *NutritionLogService {
	return &NutritionLogService{db: db}
}

// Upsert writes the snapshot for the day the totals describe. The
// totals are re-derived from the completion history on every write, so
// repeating the call for the same day is idempotent — fields are set
// absolutely, never incremented.
func (s *NutritionLogService) Upsert(userID uint, totals DailyTotals, targetCalories int) (*models.NutritionLog, error) {
	day := dayStart(totals.Date)
	row := models.NutritionLog{UserID: userID, Date: day}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(map[string]interface{}{
			"calories":        totals.Calories,
			"protein":         totals.Protein,
			"carbs":           totals.Carbs,
			"fat":             totals.Fat,
			"target_calories": targetCalories,
			"meals_completed": totals.MealCount,
		}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// History returns the persisted snapshots, newest first.
func (s *NutritionLogService) History(userID uint) ([]models.NutritionLog, error) {
	var rows []models.NutritionLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

// ForRange returns snapshots between two days inclusive, oldest first.
func (s *NutritionLogService) ForRange(userID uint, from, to time.Time) ([]models.NutritionLog, error) {
	var rows []models.NutritionLog
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayStart(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
