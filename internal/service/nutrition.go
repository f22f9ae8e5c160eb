package service

import (
	"math"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/repository"
)

// NutrientCalculator aggregates per-100g food profiles across a recipe's
// ingredient list. Ingredients with no matching food item contribute zero;
// this is a known approximation, not an error.
type NutrientCalculator struct {
	repo repository.Repository
}

// NewNutrientCalculator creates a calculator backed by the given repository.
func NewNutrientCalculator(repo repository.Repository) *NutrientCalculator {
	return &NutrientCalculator{repo: repo}
}

// Totals computes the six nutrient totals for a recipe, each scaled by
// grams/100 and rounded to one decimal place. A recipe with zero matched
// ingredients yields all-zero totals.
func (c *NutrientCalculator) Totals(recipe models.Recipe) models.NutrientTotals {
	var t models.NutrientTotals
	for _, ing := range recipe.Ingredients {
		food, ok := c.repo.LookupFood(ing.Name)
		if !ok {
			continue
		}
		grams := ing.Grams
		if grams <= 0 {
			grams = 100
		}
		factor := grams / 100.0
		t.Calories += food.Calories * factor
		t.Protein += food.Protein * factor
		t.Carbs += food.Carbs * factor
		t.Fat += food.Fat * factor
		t.Sodium += food.Sodium * factor
		t.Sugar += food.Sugar * factor
	}
	t.Calories = round1(t.Calories)
	t.Protein = round1(t.Protein)
	t.Carbs = round1(t.Carbs)
	t.Fat = round1(t.Fat)
	t.Sodium = round1(t.Sodium)
	t.Sugar = round1(t.Sugar)
	return t
}

// round1 rounds half-up to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
