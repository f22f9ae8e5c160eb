package service

import (
	"context"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
)

// IRecommenderService defines the interface for diet recommendation operations
type IRecommenderService interface {
	Recommend(ctx context.Context, in RecommendInput) (models.Condition, models.Plan)
	ListConditions() []models.Condition
}

// IChatService defines the interface for the chat proxy
type IChatService interface {
	Chat(ctx context.Context, message string, history []Message) (string, error)
}
