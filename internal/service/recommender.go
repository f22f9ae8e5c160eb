package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/repository"
)

// RecommendInput is the request contract exposed to the HTTP layer. Every
// field is optional; missing values degrade to defaults rather than errors.
type RecommendInput struct {
	SymptomsText  string
	ConditionCode string
	Preferences   models.Preferences
	Allergies     []string
	Days          int
}

// Recommender is the facade the thin HTTP layer calls: it resolves the
// condition, then generates a best-effort plan. It never fails for business
// reasons; only missing reference data at startup aborts the process.
type Recommender struct {
	repo        repository.Repository
	interpreter *ConditionInterpreter
	planner     *PlanGenerator
	logger      *zap.Logger
}

// NewRecommender wires the interpreter and planner over a shared repository.
func NewRecommender(repo repository.Repository, interpreter *ConditionInterpreter, planner *PlanGenerator, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{
		repo:        repo,
		interpreter: interpreter,
		planner:     planner,
		logger:      logger,
	}
}

// Recommend resolves the condition from the input and assembles a plan.
// The only suspendable step is the bounded classifier call inside Interpret.
func (r *Recommender) Recommend(ctx context.Context, in RecommendInput) (models.Condition, models.Plan) {
	condition := r.interpreter.Interpret(ctx, in.SymptomsText, in.ConditionCode)

	days := in.Days
	if days < 1 {
		days = 1
	}

	plan := r.planner.Generate(PlanRequest{
		Condition:   condition,
		Preferences: in.Preferences,
		Allergies:   in.Allergies,
		Days:        days,
	})

	r.logger.Info("generated meal plan",
		zap.String("condition", condition.Code),
		zap.Int("days", days),
		zap.Int("allergies", len(in.Allergies)))

	return condition, plan
}

// ListConditions is a passthrough of the loaded condition table.
func (r *Recommender) ListConditions() []models.Condition {
	return r.repo.ListConditions()
}
