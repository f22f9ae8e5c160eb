package service

import (
	"fmt"
	"strings"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
)

// ViolationReport is the outcome of checking a single recipe against a
// condition and allergy list.
type ViolationReport struct {
	Count      int                   `json:"count"`
	Violations []models.Violation    `json:"violations"`
	Nutrients  models.NutrientTotals `json:"nutrients"`
}

// ViolationChecker detects banned-ingredient, allergy and nutrient-ceiling
// violations for a recipe.
type ViolationChecker struct {
	calc *NutrientCalculator
}

// NewViolationChecker creates a checker using calc for nutrient totals.
func NewViolationChecker(calc *NutrientCalculator) *ViolationChecker {
	return &ViolationChecker{calc: calc}
}

// Check returns every violation the recipe triggers, in order: banned
// ingredients, allergies, then nutrient ceilings. Empty banned, allergy and
// ceiling sets produce zero violations from that category.
func (v *ViolationChecker) Check(recipe models.Recipe, condition models.Condition, allergies []string) ViolationReport {
	var violations []models.Violation

	for _, banned := range condition.BannedIngredients {
		b := strings.ToLower(banned)
		for _, ing := range recipe.Ingredients {
			if matchesSubstring(strings.ToLower(ing.Name), b) {
				violations = append(violations, models.Violation{
					Type:   models.ViolationBannedIngredient,
					Reason: fmt.Sprintf("ingredient %q matches banned ingredient %q", ing.Name, banned),
				})
			}
		}
	}

	for _, allergy := range allergies {
		a := strings.ToLower(allergy)
		if a == "" {
			continue
		}
		for _, ing := range recipe.Ingredients {
			if matchesSubstring(strings.ToLower(ing.Name), a) {
				violations = append(violations, models.Violation{
					Type:   models.ViolationAllergy,
					Reason: fmt.Sprintf("ingredient %q matches allergy %q", ing.Name, allergy),
				})
			}
		}
	}

	nutrients := v.calc.Totals(recipe)
	nc := condition.NutrientConstraints
	if nc.SodiumMax > 0 && nutrients.Sodium > nc.SodiumMax {
		violations = append(violations, models.Violation{
			Type:   models.ViolationSodium,
			Reason: fmt.Sprintf("sodium %vmg > %vmg", nutrients.Sodium, nc.SodiumMax),
		})
	}
	if nc.SugarMax > 0 && nutrients.Sugar > nc.SugarMax {
		violations = append(violations, models.Violation{
			Type:   models.ViolationSugar,
			Reason: fmt.Sprintf("sugar %vg > %vg", nutrients.Sugar, nc.SugarMax),
		})
	}
	if nc.CaloriesMax > 0 && nutrients.Calories > nc.CaloriesMax {
		violations = append(violations, models.Violation{
			Type:   models.ViolationCalories,
			Reason: fmt.Sprintf("calories %v > %v", nutrients.Calories, nc.CaloriesMax),
		})
	}

	return ViolationReport{
		Count:      len(violations),
		Violations: violations,
		Nutrients:  nutrients,
	}
}

// matchesSubstring applies the bidirectional substring rule used for banned
// ingredients and allergies: either term containing the other counts as a
// match, so "milk" still catches "milk powder".
func matchesSubstring(ingredient, term string) bool {
	return strings.Contains(ingredient, term) || strings.Contains(term, ingredient)
}
