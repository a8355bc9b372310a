package validators

import "errors"

var (
	ErrUnknownEntityType = errors.New("unknown entity type")
	ErrMalformedPayload  = errors.New("malformed payload")

	ErrInvalidMealType    = errors.New("meal type must be one of breakfast, lunch, dinner, snack")
	ErrInvalidServings    = errors.New("servings must be positive")
	ErrNegativeCalories   = errors.New("calories must not be negative")
	ErrInvalidCalorieGoal = errors.New("calorie target must be positive")
	ErrNegativeMacro      = errors.New("macro targets must not be negative")
	ErrInvalidWeight      = errors.New("weight must be positive")
	ErrInvalidTargetDate  = errors.New("target date must be in YYYY-MM-DD form")
)
