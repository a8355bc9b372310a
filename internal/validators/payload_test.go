// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

package validators

import (
	"encoding/json"
	"testing"

	"github.com/avolkov/nutrisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForType(t *testing.T) {
	for _, entityType := range models.EntityTypes {
		validate, err := ForType(entityType)
		require.NoError(t, err, "every registered type must have a validator")
		require.NotNil(t, validate)
	}

	_, err := ForType("workouts")
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestValidateFoodLog(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{
			name:    "valid breakfast",
			payload: `{"meal_type":"breakfast","food_name":"oatmeal","servings":1,"calories":310,"logged_date":"2026-03-01"}`,
		},
		{
			name:    "zero calories allowed",
			payload: `{"meal_type":"snack","food_name":"water","servings":1,"calories":0}`,
		},
		{
			name:    "unknown meal type",
			payload: `{"meal_type":"brunch","food_name":"toast","servings":1,"calories":200}`,
			wantErr: ErrInvalidMealType,
		},
		{
			name:    "zero servings",
			payload: `{"meal_type":"lunch","food_name":"soup","servings":0,"calories":250}`,
			wantErr: ErrInvalidServings,
		},
		{
			name:    "negative calories",
			payload: `{"meal_type":"dinner","food_name":"salad","servings":1,"calories":-10}`,
			wantErr: ErrNegativeCalories,
		},
		{
			name:    "not json",
			payload: `{"meal_type":`,
			wantErr: ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFoodLog(json.RawMessage(tt.payload))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNutritionGoal(t *testing.T) {
	assert.NoError(t, ValidateNutritionGoal(json.RawMessage(`{"daily_calorie_target":2100,"protein_g":140,"carbs_g":200,"fat_g":70}`)))
	assert.ErrorIs(t, ValidateNutritionGoal(json.RawMessage(`{"daily_calorie_target":0}`)), ErrInvalidCalorieGoal)
	assert.ErrorIs(t, ValidateNutritionGoal(json.RawMessage(`{"daily_calorie_target":1800,"protein_g":-5}`)), ErrNegativeMacro)
}

func TestValidateWeightLog(t *testing.T) {
	assert.NoError(t, ValidateWeightLog(json.RawMessage(`{"weight_kg":80.5,"logged_date":"2026-03-01"}`)))
	assert.ErrorIs(t, ValidateWeightLog(json.RawMessage(`{"weight_kg":0}`)), ErrInvalidWeight)
	assert.ErrorIs(t, ValidateWeightLog(json.RawMessage(`{"weight_kg":-2}`)), ErrInvalidWeight)
}

func TestValidateWeightGoal(t *testing.T) {
	assert.NoError(t, ValidateWeightGoal(json.RawMessage(`{"target_weight_kg":75,"target_date":"2026-06-01"}`)))
	assert.NoError(t, ValidateWeightGoal(json.RawMessage(`{"target_weight_kg":75}`)), "target date is optional")
	assert.ErrorIs(t, ValidateWeightGoal(json.RawMessage(`{"target_weight_kg":0}`)), ErrInvalidWeight)
	assert.ErrorIs(t, ValidateWeightGoal(json.RawMessage(`{"target_weight_kg":75,"target_date":"06/01/2026"}`)), ErrInvalidTargetDate)
}
