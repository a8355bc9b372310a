// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Volkov

// Package validators holds the per-entity-type payload validation rules.
// The reconciliation engine delegates here when it processes a create
// mutation; updates and deletes pass through unvalidated because the
// engine applies them as opaque deltas.
package validators

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/avolkov/nutrisync/models"
)

// PayloadValidator checks a create payload against the domain rules of one
// entity type.
type PayloadValidator func(payload json.RawMessage) error

// ForType returns the validator registered for the given entity type.
func ForType(entityType models.EntityType) (PayloadValidator, error) {
	switch entityType {
	case models.EntityFoodLog:
		return ValidateFoodLog, nil
	case models.EntityNutritionGoal:
		return ValidateNutritionGoal, nil
	case models.EntityWeightLog:
		return ValidateWeightLog, nil
	case models.EntityWeightGoal:
		return ValidateWeightGoal, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
}

func ValidateFoodLog(payload json.RawMessage) error {
	var p models.FoodLogPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	switch p.MealType {
	case "breakfast", "lunch", "dinner", "snack":
	default:
		return ErrInvalidMealType
	}
	if p.Servings <= 0 {
		return ErrInvalidServings
	}
	if p.Calories < 0 {
		return ErrNegativeCalories
	}

	return nil
}

func ValidateNutritionGoal(payload json.RawMessage) error {
	var p models.NutritionGoalPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if p.DailyCalorieTarget <= 0 {
		return ErrInvalidCalorieGoal
	}
	if p.ProteinG < 0 || p.CarbsG < 0 || p.FatG < 0 {
		return ErrNegativeMacro
	}

	return nil
}

func ValidateWeightLog(payload json.RawMessage) error {
	var p models.WeightLogPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if p.WeightKg <= 0 {
		return ErrInvalidWeight
	}

	return nil
}

func ValidateWeightGoal(payload json.RawMessage) error {
	var p models.WeightGoalPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if p.TargetWeightKg <= 0 {
		return ErrInvalidWeight
	}
	if p.TargetDate != "" {
		if _, err := time.Parse("2006-01-02", p.TargetDate); err != nil {
			return ErrInvalidTargetDate
		}
	}

	return nil
}
