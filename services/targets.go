package services

import "math"

// Daily caloric-needs and macro-target computation. All functions here
// are pure; the whole engine rounds with math.Round (half away from
// zero), so score/badge boundaries are stable across call sites.

// DefaultCaloriesPerMeal is the single fallback used when the profile is
// incomplete and no per-meal target can be computed.
const DefaultCaloriesPerMeal = 600

// Macro energy split: protein 30%, fat 25%, carbs 45% of calories.
// Business rule — changing these ratios is a behavior change, not a bug.
const (
	proteinRatio = 0.30
	fatRatio     = 0.25
	carbRatio    = 0.45

	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

// MacroTargets is always derived from a calorie value, never stored on
// its own.
type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
	CarbsG   int `json:"carbs_g"`
}

// DailyCalories estimates the daily calorie target from the profile.
// Base metabolic estimate is 10*weight + 6.25*height + 5 with the age
// term omitted (the profile carries no age), scaled by an activity
// multiplier picked from the weekly workout count, then adjusted by the
// user's surplus/deficit threshold percent.
func DailyCalories(weightKg, heightCm float64, workoutsPerWeek, thresholdPercent int) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || workoutsPerWeek < 0 {
		return 0, ErrInvalidProfile
	}

	base := 10*weightKg + 6.25*heightCm + 5

	var multiplier float64
	switch {
	case workoutsPerWeek == 0:
		multiplier = 1.20
	case workoutsPerWeek <= 3:
		multiplier = 1.375
	case workoutsPerWeek <= 6:
		multiplier = 1.55
	default:
		multiplier = 1.725
	}

	raw := base * multiplier * (1 + float64(thresholdPercent)/100)
	return int(math.Round(raw)), nil
}

// CaloriesPerMeal splits the daily target evenly across the configured
// number of meals.
func CaloriesPerMeal(dailyCalories, mealsPerDay int) (int, error) {
	if mealsPerDay <= 0 {
		return 0, ErrInvalidArgument
	}
	return int(math.Round(float64(dailyCalories) / float64(mealsPerDay))), nil
}

// MacrosForCalories converts a calorie target into target grams of
// protein/fat/carbs using the fixed energy split and the 4/9/4 kcal per
// gram conversions.
func MacrosForCalories(calories int) (MacroTargets, error) {
	if calories < 0 {
		return MacroTargets{}, ErrInvalidArgument
	}
	c := float64(calories)
	return MacroTargets{
		ProteinG: int(math.Round(c * proteinRatio / kcalPerGramProtein)),
		FatG:     int(math.Round(c * fatRatio / kcalPerGramFat)),
		CarbsG:   int(math.Round(c * carbRatio / kcalPerGramCarb)),
	}, nil
}
