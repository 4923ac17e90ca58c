package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is a user-assembled recipe on a grocery list. Nutrition fields
// are the per-occurrence totals for the whole meal, snapshotted when the
// ingredients were assembled from the catalog.
type Meal struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"not null"`

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64

	// Completed is true iff at least one completion exists. A meal may be
	// completed many times (recurring recipe); each completion contributes
	// its full nutrition to the day it falls on.
	Completed   bool
	Ingredients []MealIngredient
	Completions []MealCompletion
}

// MealIngredient references a catalog item with a quantity. Quantity is
// expressed in grams for unit "g"; catalog nutrition is per 100 g.
type MealIngredient struct {
	gorm.Model
	MealID     uint    `gorm:"index;not null"`
	FoodItemID uint    `gorm:"index;not null"`
	Quantity   float64 // e.g. 200
	Unit       string  `gorm:"size:16"` // "g"
}

// MealCompletion records one instance of a meal being eaten.
type MealCompletion struct {
	gorm.Model
	MealID      uint      `gorm:"index;not null"`
	CompletedAt time.Time `gorm:"index;not null"`
}
