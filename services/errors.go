package services

import "errors"

// Engine failures are local and synchronous; callers decide whether to
// surface them or fall back to a default target. Invalid input must
// never silently produce a misleading number (no NaN/Inf escapes).
var (
	// ErrInvalidProfile: non-positive weight/height (or negative workout count).
	ErrInvalidProfile = errors.New("invalid profile: weight and height must be positive")

	// ErrInvalidArgument: non-positive mealsPerDay/targetCalories, negative calories.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMealIncomplete: validation attempted below the 80% calorie threshold.
	ErrMealIncomplete = errors.New("meal below validation threshold")
)
