package models

// Domain payload shapes for the four synchronizable record families.
// The sync engine itself treats payloads as opaque JSON; these structs are
// used only by the per-entity validators and by client-side code that
// constructs mutations.

// FoodLogPayload describes one logged meal entry.
type FoodLogPayload struct {
	// MealType is one of "breakfast", "lunch", "dinner", "snack".
	MealType string `json:"meal_type"`

	// FoodName is the display name of the logged food.
	FoodName string `json:"food_name,omitempty"`

	// Servings is the number of servings consumed. Must be positive.
	Servings float64 `json:"servings"`

	// Calories is the kcal total for the entry, if known.
	Calories float64 `json:"calories,omitempty"`

	// LoggedDate is the calendar day the entry belongs to, "YYYY-MM-DD".
	LoggedDate string `json:"logged_date,omitempty"`
}

// NutritionGoalPayload describes a user's daily nutrition targets.
type NutritionGoalPayload struct {
	DailyCalorieTarget float64 `json:"daily_calorie_target"`
	ProteinG           float64 `json:"protein_g,omitempty"`
	CarbsG             float64 `json:"carbs_g,omitempty"`
	FatG               float64 `json:"fat_g,omitempty"`
}

// WeightLogPayload describes one body-weight measurement.
type WeightLogPayload struct {
	WeightKg float64 `json:"weight_kg"`

	// LoggedDate is the calendar day of the measurement, "YYYY-MM-DD".
	LoggedDate string `json:"logged_date,omitempty"`
}

// WeightGoalPayload describes a target body weight.
type WeightGoalPayload struct {
	TargetWeightKg float64 `json:"target_weight_kg"`

	// TargetDate is the day the user aims to reach the target, "YYYY-MM-DD".
	TargetDate string `json:"target_date,omitempty"`
}
