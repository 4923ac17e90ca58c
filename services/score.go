package services

import "math"

// Adherence scoring: 0–100 comparison of actual daily intake against
// the computed target. The curve is asymmetric — moderate undereating
// is forgiven more gently than overeating, and large overshoot is
// penalized steeply.

// Score computes the adherence score for one day. Returns 0 when
// nothing was logged; fails when the target is not positive (a zero
// target must never silently divide to Inf).
//
// Piecewise over ratio = total/target:
//
//	ratio < 0.8          ratio * 125
//	0.8 ≤ ratio < 1.2    100 - |1 - ratio| * 100
//	ratio ≥ 1.2          max(0, 100 - (ratio-1.2) * 150)
//
// The 1.2 boundary belongs to the overshoot branch, so eating exactly
// 120% of target still scores 100.
func Score(totalCalories, targetCalories float64) (int, error) {
	if targetCalories <= 0 {
		return 0, ErrInvalidArgument
	}
	if totalCalories <= 0 {
		return 0, nil
	}

	ratio := totalCalories / targetCalories
	var s float64
	switch {
	case ratio < 0.8:
		s = ratio * 100 * 1.25
	case ratio < 1.2:
		s = 100 - math.Abs(1-ratio)*100
	default:
		s = 100 - (ratio-1.2)*150
	}

	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return int(math.Round(s)), nil
}

// Badge maps a score to its display classification.
func Badge(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Très bien"
	case score >= 60:
		return "Bien"
	default:
		return "À améliorer"
	}
}
