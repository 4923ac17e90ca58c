package services

import (
	"errors"
	"testing"
)

/* ─── DailyCalories ──────────────────────────────────────────────────── */

// TestDailyCalories_PinnedValues pins the documented formula:
// base = 10*w + 6.25*h + 5, band multiplier, threshold percent,
// math.Round at the end.
func TestDailyCalories_PinnedValues(t *testing.T) {
	cases := []struct {
		name      string
		weight    float64
		height    float64
		workouts  int
		threshold int
		want      int
	}{
		// base=10*70+6.25*170+5=1767.5, multiplier 1.375 → 2430.3125
		{"reference profile", 70, 170, 3, 0, 2430},
		{"sedentary", 70, 170, 0, 0, 2121},       // 1767.5*1.20=2121.0
		{"four workouts", 70, 170, 4, 0, 2740},   // 1767.5*1.55=2739.625
		{"seven workouts", 70, 170, 7, 0, 3049},  // 1767.5*1.725=3048.9375
		{"ten workouts", 70, 170, 10, 0, 3049},   // same band as 7
		{"deficit -10%", 70, 170, 3, -10, 2187},  // 2430.3125*0.9=2187.28125
		{"surplus +10%", 70, 170, 3, 10, 2673},   // 2430.3125*1.1=2673.34375
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DailyCalories(tc.weight, tc.height, tc.workouts, tc.threshold)
			if err != nil {
				t.Fatalf("DailyCalories() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("DailyCalories(%v, %v, %d, %d) = %d, want %d",
					tc.weight, tc.height, tc.workouts, tc.threshold, got, tc.want)
			}
		})
	}
}

// TestDailyCalories_InvalidProfile verifies that non-positive weight or
// height (and a negative workout count) fail typed instead of
// computing nonsense.
func TestDailyCalories_InvalidProfile(t *testing.T) {
	cases := []struct {
		name     string
		weight   float64
		height   float64
		workouts int
	}{
		{"zero weight", 0, 170, 3},
		{"negative weight", -70, 170, 3},
		{"zero height", 70, 0, 3},
		{"negative height", 70, -170, 3},
		{"negative workouts", 70, 170, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DailyCalories(tc.weight, tc.height, tc.workouts, 0)
			if !errors.Is(err, ErrInvalidProfile) {
				t.Errorf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}
}

// TestDailyCalories_MonotoneInThreshold verifies that raising the
// threshold percent never lowers the target.
func TestDailyCalories_MonotoneInThreshold(t *testing.T) {
	prev := -1
	for threshold := -50; threshold <= 50; threshold++ {
		got, err := DailyCalories(70, 170, 3, threshold)
		if err != nil {
			t.Fatalf("DailyCalories(threshold=%d) error = %v", threshold, err)
		}
		if got < prev {
			t.Fatalf("target dropped from %d to %d when threshold rose to %d", prev, got, threshold)
		}
		prev = got
	}
}

/* ─── CaloriesPerMeal ────────────────────────────────────────────────── */

func TestCaloriesPerMeal(t *testing.T) {
	got, err := CaloriesPerMeal(2430, 3)
	if err != nil {
		t.Fatalf("CaloriesPerMeal() error = %v", err)
	}
	if got != 810 {
		t.Errorf("CaloriesPerMeal(2430, 3) = %d, want 810", got)
	}

	// Half rounds away from zero: 2430/4 = 607.5 → 608.
	got, err = CaloriesPerMeal(2430, 4)
	if err != nil {
		t.Fatalf("CaloriesPerMeal() error = %v", err)
	}
	if got != 608 {
		t.Errorf("CaloriesPerMeal(2430, 4) = %d, want 608", got)
	}
}

func TestCaloriesPerMeal_InvalidMealsPerDay(t *testing.T) {
	for _, meals := range []int{0, -1} {
		if _, err := CaloriesPerMeal(2430, meals); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("CaloriesPerMeal(2430, %d): expected ErrInvalidArgument, got %v", meals, err)
		}
	}
}

/* ─── MacrosForCalories ──────────────────────────────────────────────── */

// TestMacrosForCalories_EnergyRoundTrip verifies the 30/25/45 split
// converts back to within rounding tolerance of the input calories
// (each of the three grams values may be off by half a gram, so the
// kcal sum may drift by at most (4+9+4)/2).
func TestMacrosForCalories_EnergyRoundTrip(t *testing.T) {
	for _, calories := range []int{810, 600, 2430, 1} {
		m, err := MacrosForCalories(calories)
		if err != nil {
			t.Fatalf("MacrosForCalories(%d) error = %v", calories, err)
		}
		kcal := 4*m.ProteinG + 9*m.FatG + 4*m.CarbsG
		diff := kcal - calories
		if diff < 0 {
			diff = -diff
		}
		if diff > 9 {
			t.Errorf("MacrosForCalories(%d) = %+v sums to %d kcal, drift %d > 9", calories, m, kcal, diff)
		}
	}
}

func TestMacrosForCalories_Pinned(t *testing.T) {
	m, err := MacrosForCalories(810)
	if err != nil {
		t.Fatalf("MacrosForCalories(810) error = %v", err)
	}
	// 810*0.30/4=60.75 → 61; 810*0.25/9=22.5 → 23; 810*0.45/4=91.125 → 91
	want := MacroTargets{ProteinG: 61, FatG: 23, CarbsG: 91}
	if m != want {
		t.Errorf("MacrosForCalories(810) = %+v, want %+v", m, want)
	}
}

func TestMacrosForCalories_NegativeCalories(t *testing.T) {
	if _, err := MacrosForCalories(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestMacrosForCalories_Zero(t *testing.T) {
	m, err := MacrosForCalories(0)
	if err != nil {
		t.Fatalf("MacrosForCalories(0) error = %v", err)
	}
	if m != (MacroTargets{}) {
		t.Errorf("MacrosForCalories(0) = %+v, want all-zero", m)
	}
}
