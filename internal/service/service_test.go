package service

import (
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/repository"
)

// Shared fixtures for the service tests. Values mirror the reference tables
// but stay small enough to reason about by hand.

func fixtureFoods() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Sodium: 1, Sugar: 0.1},
		{Name: "Beans", Calories: 120, Protein: 8, Carbs: 21, Fat: 0.5, Sodium: 5, Sugar: 0.3},
		{Name: "Milk", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, Sodium: 43, Sugar: 5.1},
		{Name: "Chicken", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Sodium: 74, Sugar: 0},
		{Name: "Sugar", Calories: 387, Carbs: 100, Sodium: 1, Sugar: 100},
		{Name: "Salt", Sodium: 38758},
	}
}

func fixtureRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:    "rb",
			Title: "Rice and Beans",
			Ingredients: []models.Ingredient{
				{Name: "Rice", Grams: 150},
				{Name: "Beans", Grams: 100},
			},
			Steps: []string{"Boil the beans.", "Add the rice and cook."},
		},
		{
			ID:    "pc",
			Title: "Plain Chicken",
			Ingredients: []models.Ingredient{
				{Name: "Chicken", Grams: 100},
			},
			Steps: []string{"Grill the chicken."},
		},
		{
			ID:    "mp",
			Title: "Milk Pudding",
			Ingredients: []models.Ingredient{
				{Name: "Milk", Grams: 200},
				{Name: "Sugar", Grams: 15},
			},
			Steps: []string{"Warm the milk.", "Stir in the sugar and set."},
		},
		{
			ID:    "sc",
			Title: "Salty Chicken",
			Ingredients: []models.Ingredient{
				{Name: "Chicken", Grams: 100},
				{Name: "Salt", Grams: 2},
			},
			Steps: []string{"Salt the chicken heavily.", "Roast."},
		},
		{
			ID:    "fp",
			Title: "Fried Plantain",
			Ingredients: []models.Ingredient{
				{Name: "Plantain", Grams: 200},
			},
			Steps: []string{"Fry the plantain."},
		},
	}
}

func fixtureConditions() []models.Condition {
	return []models.Condition{
		{Code: "GENERAL", Name: "General/Default"},
		{
			Code:                "DIABETES",
			Name:                "Diabetes",
			BannedIngredients:   []string{"sugar"},
			NutrientConstraints: models.NutrientConstraints{SugarMax: 10},
		},
		{
			Code:                "HYPERTENSION",
			Name:                "Hypertension",
			NutrientConstraints: models.NutrientConstraints{SodiumMax: 500},
		},
		{
			Code:              "LACTOSE",
			Name:              "Lactose Intolerance",
			BannedIngredients: []string{"milk"},
		},
	}
}

func fixtureRepo() *repository.StaticRepository {
	return repository.New(fixtureFoods(), fixtureRecipes(), fixtureConditions())
}

func findCondition(code string) models.Condition {
	for _, c := range fixtureConditions() {
		if c.Code == code {
			return c
		}
	}
	return models.Condition{}
}
