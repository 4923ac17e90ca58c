package services

import (
	"time"

	"github.com/Akralan/NutriPlanner-sub000/models"
)

// DailyTotals is one day of aggregated intake. Derived transiently by
// TotalsForWindow, never mutated after construction.
type DailyTotals struct {
	Date      time.Time `json:"date"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	MealCount int       `json:"meal_count"`
}

// TotalsForWindow aggregates completed-meal history into exactly
// windowDays entries, one per calendar day, oldest→newest, ending at
// reference inclusive. Days with no completions are present with all
// zero fields so charts always get a full window. Completions are
// bucketed by calendar date ("2006-01-02" key), not by instant; a meal
// completed twice on the same day counts twice. Pure and re-derivable.
func TotalsForWindow(meals []models.Meal, reference time.Time, windowDays int) []DailyTotals {
	if windowDays <= 0 {
		return nil
	}

	start := dayStart(reference).AddDate(0, 0, -(windowDays - 1))
	out := make([]DailyTotals, windowDays)
	idx := make(map[string]*DailyTotals, windowDays)
	for i := range out {
		d := start.AddDate(0, 0, i)
		out[i] = DailyTotals{Date: d}
		idx[d.Format("2006-01-02")] = &out[i]
	}

	for _, m := range meals {
		for _, c := range m.Completions {
			dt, ok := idx[c.CompletedAt.Format("2006-01-02")]
			if !ok {
				continue // outside the window
			}
			dt.Calories += m.Calories
			dt.Protein += m.Protein
			dt.Carbs += m.Carbs
			dt.Fat += m.Fat
			dt.MealCount++
		}
	}
	return out
}

// NutritionFacts are the assembled totals for a meal.
type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodCatalogLookup resolves a catalog item; not-found surfaces as an
// error from the implementation (gorm.ErrRecordNotFound for the DB-backed
// catalog).
type FoodCatalogLookup interface {
	Lookup(foodItemID uint) (*models.FoodItem, error)
}

// MealNutrition assembles a meal's nutrition totals from its raw
// ingredient list. Catalog values are per 100 g and ingredient
// quantities are grams, so each ingredient contributes quantity/100 of
// its catalog facts.
func MealNutrition(ingredients []models.MealIngredient, catalog FoodCatalogLookup) (NutritionFacts, error) {
	var total NutritionFacts
	for _, ing := range ingredients {
		item, err := catalog.Lookup(ing.FoodItemID)
		if err != nil {
			return NutritionFacts{}, err
		}
		factor := ing.Quantity / 100.0
		total.Calories += item.Calories * factor
		total.Protein += item.Protein * factor
		total.Carbs += item.Carbs * factor
		total.Fat += item.Fat * factor
	}
	return total, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
