package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionLog is the persisted daily snapshot: one row per user per
// day, holding the aggregated totals plus the calorie target in force
// when the row was written. Rewritten idempotently whenever a meal is
// validated or the profile changes.
type NutritionLog struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64

	TargetCalories int
	MealsCompleted int
}
