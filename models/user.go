package models

import (
	"gorm.io/gorm"
)

// User holds the account plus the physiological profile the calorie
// engine reads. The profile is mutated only through the profile-update
// flow of the surrounding app; the engine treats it as read-only.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	WeightKg float64 // kilograms
	HeightCm float64 // centimeters

	WorkoutsPerWeek         int // ≥0
	CalorieThresholdPercent int // surplus (+) or deficit (−) applied to maintenance
	MealsPerDay             int // ≥1 when set
}
