package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightLog is one weight measurement per user per day, feeding the
// weight-trend chart. Posting the same day again updates in place.
type WeightLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
	WeightKg float64
}
