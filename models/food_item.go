package models

import "gorm.io/gorm"

// A catalog entry from the seasonal food catalog. Nutrition values are
// per 100 g; immutable at runtime.
type FoodItem struct {
	gorm.Model
	Name   string `gorm:"uniqueIndex;not null"`
	Season string `gorm:"size:64"` // comma-separated months, e.g. "jun,jul,aug"

	Calories float64 // kcal per 100 g
	Protein  float64 // g per 100 g
	Carbs    float64 // g per 100 g
	Fat      float64 // g per 100 g
}
