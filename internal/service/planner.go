package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/repository"
)

// baseScore and the per-violation penalty drive the 0-100 suitability score.
const (
	baseScore        = 100
	violationPenalty = 30
	sodiumPenaltyCap = 30
	mealsPerDay      = 3
)

var mealTypes = [mealsPerDay]string{"Breakfast", "Lunch", "Dinner"}

// ScoredCandidate is a recipe with its computed nutrients, violations and
// suitability score. Recomputed per request; never stored.
type ScoredCandidate struct {
	Recipe     models.Recipe         `json:"recipe"`
	Nutrients  models.NutrientTotals `json:"nutrients"`
	Violations []models.Violation    `json:"violations"`
	Score      int                   `json:"score"`
}

// PlanRequest carries everything the generator needs for one plan.
type PlanRequest struct {
	Condition   models.Condition
	Preferences models.Preferences
	Allergies   []string
	Days        int
}

// PlanGenerator filters, scores, ranks and assembles multi-day meal plans.
type PlanGenerator struct {
	repo    repository.Repository
	checker *ViolationChecker
}

// NewPlanGenerator creates a generator over the recipe table.
func NewPlanGenerator(repo repository.Repository, checker *ViolationChecker) *PlanGenerator {
	return &PlanGenerator{repo: repo, checker: checker}
}

// Generate builds a plan of req.Days days. Ranking is computed once and
// reused for every day, so the same top recipes repeat across days; within a
// single day no recipe appears twice. Deterministic for identical inputs.
func (g *PlanGenerator) Generate(req PlanRequest) models.Plan {
	days := req.Days
	if days < 1 {
		days = 1
	}

	scored := g.scoreCandidates(req)

	plan := make(models.Plan, 0, days)
	for d := 0; d < days; d++ {
		day := models.Day{Day: fmt.Sprintf("Day %d", d+1), Meals: []models.Meal{}}
		taken := make(map[string]bool, mealsPerDay)
		for i := 0; i < mealsPerDay; i++ {
			pick, ok := nextAvailable(scored, taken)
			if !ok {
				break
			}
			taken[pick.Recipe.ID] = true
			day.Meals = append(day.Meals, models.Meal{
				MealType:         mealTypes[i],
				RecipeID:         pick.Recipe.ID,
				Title:            pick.Recipe.Title,
				Nutrients:        pick.Nutrients,
				SuitabilityScore: pick.Score,
				Violations:       pick.Violations,
				RecipeSteps:      pick.Recipe.Steps,
			})
		}
		plan = append(plan, day)
	}
	return plan
}

// scoreCandidates filters recipes by title excludes, then scores and ranks
// them descending. The sort is stable so ties keep table order.
func (g *PlanGenerator) scoreCandidates(req PlanRequest) []ScoredCandidate {
	excludes := make([]string, 0, len(req.Preferences.Exclude))
	for _, ex := range req.Preferences.Exclude {
		if ex = strings.ToLower(strings.TrimSpace(ex)); ex != "" {
			excludes = append(excludes, ex)
		}
	}

	var scored []ScoredCandidate
	for _, recipe := range g.repo.ListRecipes() {
		if titleExcluded(recipe.Title, excludes) {
			continue
		}
		report := g.checker.Check(recipe, req.Condition, req.Allergies)
		scored = append(scored, ScoredCandidate{
			Recipe:     recipe,
			Nutrients:  report.Nutrients,
			Violations: report.Violations,
			Score:      scoreRecipe(req.Condition, report),
		})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

// scoreRecipe computes 100 minus 30 per violation, minus an extra sodium
// penalty of min(30, round(excess/10)) when the condition caps sodium.
// Clamped to a minimum of 0.
func scoreRecipe(condition models.Condition, report ViolationReport) int {
	score := baseScore - violationPenalty*report.Count
	if smax := condition.NutrientConstraints.SodiumMax; smax > 0 && report.Nutrients.Sodium > smax {
		penalty := int(math.Round((report.Nutrients.Sodium - smax) / 10))
		if penalty > sodiumPenaltyCap {
			penalty = sodiumPenaltyCap
		}
		score -= penalty
	}
	if score < 0 {
		score = 0
	}
	return score
}

func titleExcluded(title string, excludes []string) bool {
	lower := strings.ToLower(title)
	for _, ex := range excludes {
		if strings.Contains(lower, ex) {
			return true
		}
	}
	return false
}

func nextAvailable(scored []ScoredCandidate, taken map[string]bool) (ScoredCandidate, bool) {
	for _, s := range scored {
		if !taken[s.Recipe.ID] {
			return s, true
		}
	}
	return ScoredCandidate{}, false
}
