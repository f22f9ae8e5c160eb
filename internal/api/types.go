package api

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/service"
)

// DaysValue accepts the plan length as either a number or a string. Anything
// unparseable degrades to zero, which the recommender treats as one day.
type DaysValue struct {
	Value int
}

func (d *DaysValue) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as number first
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		d.Value = int(num)
		return nil
	}

	// Fall back to a numeric string; bad input means the default applies
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			d.Value = n
		}
		return nil
	}

	d.Value = 0
	return nil
}

// RecommendRequest is the body for POST /api/diet/recommend. Every field is
// optional; the recommender degrades to defaults.
type RecommendRequest struct {
	SymptomsText  string             `json:"symptomsText"`
	ConditionCode string             `json:"conditionCode"`
	Preferences   models.Preferences `json:"preferences"`
	Allergies     []string           `json:"allergies"`
	Days          DaysValue          `json:"days"`
}

// RecommendResponse wraps the resolved condition and generated plan.
type RecommendResponse struct {
	Status    string           `json:"status"`
	Condition models.Condition `json:"condition"`
	Plan      models.Plan      `json:"plan"`
}

// ConditionsResponse lists the loaded condition table.
type ConditionsResponse struct {
	Status     string             `json:"status"`
	Conditions []models.Condition `json:"conditions"`
}

// ChatRequest is the body for POST /api/chat.
type ChatRequest struct {
	Message string            `json:"message" binding:"required"`
	History []service.Message `json:"history"`
}

// ChatResponse carries the model's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
