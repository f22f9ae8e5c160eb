package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
)

// Repository exposes read-only access to the reference tables. The core
// services depend on this interface so tests can substitute fixtures.
type Repository interface {
	LookupFood(name string) (models.FoodItem, bool)
	ListRecipes() []models.Recipe
	LookupCondition(code string) (models.Condition, bool)
	ListConditions() []models.Condition
}

// StaticRepository serves the three tables loaded once at startup. It is
// immutable after construction and safe for concurrent readers.
type StaticRepository struct {
	foods      map[string]models.FoodItem
	recipes    []models.Recipe
	conditions []models.Condition
	byCode     map[string]models.Condition
}

// New builds a repository from already-parsed tables.
func New(foods []models.FoodItem, recipes []models.Recipe, conditions []models.Condition) *StaticRepository {
	repo := &StaticRepository{
		foods:      make(map[string]models.FoodItem, len(foods)),
		recipes:    recipes,
		conditions: conditions,
		byCode:     make(map[string]models.Condition, len(conditions)),
	}
	for _, f := range foods {
		repo.foods[strings.ToLower(f.Name)] = f
	}
	for _, c := range conditions {
		repo.byCode[strings.ToUpper(c.Code)] = c
	}
	return repo
}

// Load reads foodData.json, recipes.json and conditions.json from dir.
// Any missing or malformed file is a startup failure.
func Load(dir string) (*StaticRepository, error) {
	var foods []models.FoodItem
	if err := loadJSON(filepath.Join(dir, "foodData.json"), &foods); err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err := loadJSON(filepath.Join(dir, "recipes.json"), &recipes); err != nil {
		return nil, err
	}

	var conditions []models.Condition
	if err := loadJSON(filepath.Join(dir, "conditions.json"), &conditions); err != nil {
		return nil, err
	}

	if err := validate(foods, recipes, conditions); err != nil {
		return nil, err
	}

	return New(foods, recipes, conditions), nil
}

func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read reference data %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse reference data %s: %w", filepath.Base(path), err)
	}
	return nil
}

func validate(foods []models.FoodItem, recipes []models.Recipe, conditions []models.Condition) error {
	if len(foods) == 0 {
		return fmt.Errorf("foodData.json contains no food items")
	}
	if len(recipes) == 0 {
		return fmt.Errorf("recipes.json contains no recipes")
	}
	if len(conditions) == 0 {
		return fmt.Errorf("conditions.json contains no conditions")
	}

	seen := make(map[string]bool, len(recipes))
	for _, r := range recipes {
		if r.ID == "" {
			return fmt.Errorf("recipe %q has no id", r.Title)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate recipe id %q", r.ID)
		}
		seen[r.ID] = true
	}

	codes := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		code := strings.ToUpper(c.Code)
		if code == "" {
			return fmt.Errorf("condition %q has no code", c.Name)
		}
		if codes[code] {
			return fmt.Errorf("duplicate condition code %q", code)
		}
		codes[code] = true
	}

	return nil
}

// LookupFood finds a food item by case-insensitive exact name match.
func (r *StaticRepository) LookupFood(name string) (models.FoodItem, bool) {
	f, ok := r.foods[strings.ToLower(name)]
	return f, ok
}

// ListRecipes returns every recipe in table order.
func (r *StaticRepository) ListRecipes() []models.Recipe {
	return r.recipes
}

// LookupCondition finds a condition by its uppercase code.
func (r *StaticRepository) LookupCondition(code string) (models.Condition, bool) {
	c, ok := r.byCode[strings.ToUpper(code)]
	return c, ok
}

// ListConditions returns every condition in table order.
func (r *StaticRepository) ListConditions() []models.Condition {
	return r.conditions
}
