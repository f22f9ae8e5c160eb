package models

// FoodItem holds the per-100g nutrient profile for a single food.
// Names are matched case-insensitively against recipe ingredients.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`
}

// Ingredient is a food reference plus a gram quantity. A missing or
// non-positive quantity is treated as 100g when nutrients are computed.
type Ingredient struct {
	Name  string  `json:"name"`
	Grams float64 `json:"grams"`
}

// Recipe is an immutable reference-table entry.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
}

// NutrientConstraints carries the optional per-recipe ceilings a condition
// imposes. A zero value means the nutrient is unconstrained.
type NutrientConstraints struct {
	SodiumMax   float64 `json:"sodiumMax,omitempty"`
	SugarMax    float64 `json:"sugarMax,omitempty"`
	CaloriesMax float64 `json:"caloriesMax,omitempty"`
}

// Condition is a named health constraint profile.
type Condition struct {
	Code                string              `json:"code"`
	Name                string              `json:"name"`
	BannedIngredients   []string            `json:"bannedIngredients"`
	NutrientConstraints NutrientConstraints `json:"nutrientConstraints"`
	Notes               string              `json:"notes,omitempty"`
}

// GeneralConditionCode is the sentinel fallback condition with no constraints.
const GeneralConditionCode = "GENERAL"

// NutrientTotals are aggregate recipe nutrients, each rounded to one decimal.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`
}

// Violation types emitted by the violation checker.
const (
	ViolationBannedIngredient = "banned_ingredient"
	ViolationAllergy          = "allergy"
	ViolationSodium           = "sodium"
	ViolationSugar            = "sugar"
	ViolationCalories         = "calories"
)

// Violation is one specific way a recipe fails a condition or allergy list.
type Violation struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// Preferences carries plan-level filtering options supplied by the caller.
type Preferences struct {
	Exclude []string `json:"exclude"`
}

// Meal is a single slot in a day's plan.
type Meal struct {
	MealType         string         `json:"mealType"`
	RecipeID         string         `json:"recipeId"`
	Title            string         `json:"title"`
	Nutrients        NutrientTotals `json:"nutrients"`
	SuitabilityScore int            `json:"suitabilityScore"`
	Violations       []Violation    `json:"violations"`
	RecipeSteps      []string       `json:"recipeSteps"`
}

// Day holds up to three meals; recipe ids never repeat within one day.
type Day struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// Plan is the full multi-day meal plan returned to the caller.
type Plan []Day
