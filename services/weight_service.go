package services

import (
	"time"

	"github.com/Akralan/NutriPlanner-sub000/models"
	"github.com/Akralan/NutriPlanner-sub000/utils"

	"gorm.io/gorm"
)

// WeightService records weight measurements and serves the trend chart.
type WeightService struct{ db *gorm.DB }

func NewWeightService(db *gorm.DB) *WeightService { return &WeightService{db: db} }

// Record upserts the measurement for the given day; posting the same
// day again updates in place.
func (s *WeightService) Record(userID uint, day time.Time, weightKg float64) (*models.WeightLog, error) {
	d := dayStart(day)
	row := models.WeightLog{UserID: userID, Date: d}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, d).
		Assign(map[string]interface{}{"weight_kg": weightKg}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// WeightTrend is the chartable series plus the BMI reading derived from
// the most recent entry.
type WeightTrend struct {
	Entries     []models.WeightLog `json:"entries"`
	BMI         float64            `json:"bmi,omitempty"`
	BMICategory string             `json:"bmi_category,omitempty"`
}

// Trend returns the user's measurements oldest first. When the profile
// has a usable height, the latest weight also yields a BMI reading.
func (s *WeightService) Trend(userID uint, heightCm float64) (*WeightTrend, error) {
	var entries []models.WeightLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	trend := &WeightTrend{Entries: entries}
	if len(entries) > 0 {
		latest := entries[len(entries)-1]
		if bmi, err := utils.CalculateBMI(latest.WeightKg, heightCm); err == nil {
			trend.BMI = bmi
			trend.BMICategory = utils.BMICategory(bmi)
		}
	}
	return trend, nil
}
