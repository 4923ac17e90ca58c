package services

import (
	"testing"
	"time"

	"github.com/Akralan/NutriPlanner-sub000/models"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

// mealWith builds a meal whose completions fall at the given instants.
func mealWith(calories, protein, carbs, fat float64, completions ...time.Time) models.Meal {
	m := models.Meal{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}
	for _, c := range completions {
		m.Completions = append(m.Completions, models.MealCompletion{CompletedAt: c})
	}
	m.Completed = len(m.Completions) > 0
	return m
}

// TestTotalsForWindow_EmptyInput verifies the charting contract: an
// empty history still yields exactly windowDays zero rows with
// strictly increasing, gap-free dates ending at the reference day.
func TestTotalsForWindow_EmptyInput(t *testing.T) {
	ref := day(2026, 3, 10, 15)
	got := TotalsForWindow(nil, ref, 7)

	if len(got) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(got))
	}
	for i, dt := range got {
		if dt.Calories != 0 || dt.Protein != 0 || dt.Carbs != 0 || dt.Fat != 0 || dt.MealCount != 0 {
			t.Errorf("day %d not zero: %+v", i, dt)
		}
		if i > 0 {
			prev := got[i-1].Date
			if !dt.Date.After(prev) {
				t.Errorf("dates not strictly increasing at %d: %v then %v", i, prev, dt.Date)
			}
			if dt.Date.Sub(prev) != 24*time.Hour {
				t.Errorf("gap between %v and %v", prev, dt.Date)
			}
		}
	}
	last := got[6].Date
	if last.Format("2006-01-02") != "2026-03-10" {
		t.Errorf("window should end at reference day, got %v", last)
	}
}

// TestTotalsForWindow_DoubleCompletionSameDay verifies that a meal
// completed twice on one day contributes 2× its nutrition to that day
// and nothing anywhere else.
func TestTotalsForWindow_DoubleCompletionSameDay(t *testing.T) {
	ref := day(2026, 3, 10, 12)
	meals := []models.Meal{
		mealWith(650, 40, 70, 20, day(2026, 3, 8, 8), day(2026, 3, 8, 19)),
	}

	got := TotalsForWindow(meals, ref, 7)
	for _, dt := range got {
		key := dt.Date.Format("2006-01-02")
		if key == "2026-03-08" {
			if dt.Calories != 1300 || dt.Protein != 80 || dt.Carbs != 140 || dt.Fat != 40 {
				t.Errorf("double-completed day totals = %+v, want 2× meal nutrition", dt)
			}
			if dt.MealCount != 2 {
				t.Errorf("MealCount = %d, want 2", dt.MealCount)
			}
		} else if dt.Calories != 0 || dt.MealCount != 0 {
			t.Errorf("day %s should be zero, got %+v", key, dt)
		}
	}
}

// TestTotalsForWindow_OutsideWindowIgnored: completions before the
// window start or after the reference day contribute nothing, and a
// never-completed meal contributes zero everywhere.
func TestTotalsForWindow_OutsideWindowIgnored(t *testing.T) {
	ref := day(2026, 3, 10, 12)
	meals := []models.Meal{
		mealWith(500, 30, 50, 15, day(2026, 3, 3, 9)),  // day before the 7-day window
		mealWith(400, 20, 40, 10, day(2026, 3, 11, 9)), // after reference
		mealWith(900, 50, 90, 30),                      // never completed
	}

	got := TotalsForWindow(meals, ref, 7)
	for _, dt := range got {
		if dt.Calories != 0 || dt.MealCount != 0 {
			t.Errorf("expected all-zero window, day %v = %+v", dt.Date, dt)
		}
	}
}

// TestTotalsForWindow_InputOrderIrrelevant verifies the output ordering
// guarantee holds regardless of how meals arrive.
func TestTotalsForWindow_InputOrderIrrelevant(t *testing.T) {
	ref := day(2026, 3, 10, 12)
	a := mealWith(300, 10, 20, 5, day(2026, 3, 9, 9))
	b := mealWith(700, 40, 60, 25, day(2026, 3, 7, 20))

	first := TotalsForWindow([]models.Meal{a, b}, ref, 7)
	second := TotalsForWindow([]models.Meal{b, a}, ref, 7)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("day %d differs by input order: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestTotalsForWindow_Idempotent: calling twice with identical inputs
// yields identical output (pure, read-only).
func TestTotalsForWindow_Idempotent(t *testing.T) {
	ref := day(2026, 3, 10, 12)
	meals := []models.Meal{mealWith(650, 40, 70, 20, day(2026, 3, 9, 8))}

	first := TotalsForWindow(meals, ref, 3)
	second := TotalsForWindow(meals, ref, 3)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("non-idempotent at day %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	// Inputs were not mutated either.
	if len(meals[0].Completions) != 1 || meals[0].Calories != 650 {
		t.Error("TotalsForWindow mutated its input")
	}
}

func TestTotalsForWindow_NonPositiveWindow(t *testing.T) {
	if got := TotalsForWindow(nil, day(2026, 3, 10, 0), 0); got != nil {
		t.Errorf("expected nil for windowDays=0, got %v", got)
	}
}

// TestWindowScoreBadgeRoundTrip: feeding a window's per-day calories
// into Score reproduces the same badge as scoring the raw totals
// directly.
func TestWindowScoreBadgeRoundTrip(t *testing.T) {
	ref := day(2026, 3, 10, 12)
	meals := []models.Meal{
		mealWith(810, 61, 91, 23, day(2026, 3, 9, 8), day(2026, 3, 9, 13), day(2026, 3, 9, 20)),
		mealWith(650, 40, 70, 20, day(2026, 3, 10, 12)),
	}
	const target = 2430.0

	totals := TotalsForWindow(meals, ref, 2)

	// Scoring the window's day-one calories must match scoring the sum
	// computed by hand from the completion history.
	fromWindow, err := Score(totals[0].Calories, target)
	if err != nil {
		t.Fatalf("Score error = %v", err)
	}
	direct, err := Score(3*810, target)
	if err != nil {
		t.Fatalf("Score error = %v", err)
	}
	if fromWindow != direct || Badge(fromWindow) != Badge(direct) {
		t.Errorf("window score/badge %d/%s differs from direct %d/%s",
			fromWindow, Badge(fromWindow), direct, Badge(direct))
	}

	// Day one: 3×810=2430 → ratio 1.0 → 100 → Excellent.
	s, _ := Score(totals[0].Calories, target)
	if s != 100 || Badge(s) != "Excellent" {
		t.Errorf("day one score/badge = %d/%s, want 100/Excellent", s, Badge(s))
	}
	// Day two: 650/2430 ≈ 0.2675 → 0.2675*125 ≈ 33 → À améliorer.
	s, _ = Score(totals[1].Calories, target)
	if s != 33 || Badge(s) != "À améliorer" {
		t.Errorf("day two score/badge = %d/%s, want 33/À améliorer", s, Badge(s))
	}
}
