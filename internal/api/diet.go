package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/service"
)

// DietHandler handles diet recommendation requests
type DietHandler struct {
	recommender service.IRecommenderService
}

// NewDietHandler creates a new DietHandler instance
func NewDietHandler(recommender service.IRecommenderService) *DietHandler {
	return &DietHandler{recommender: recommender}
}

// RegisterRoutes registers the diet routes
func (h *DietHandler) RegisterRoutes(router *gin.RouterGroup) {
	diet := router.Group("/diet")
	{
		diet.GET("/conditions", h.ListConditions)
		diet.POST("/recommend", h.Recommend)
	}
}

// ListConditions returns the loaded condition table for dropdowns.
func (h *DietHandler) ListConditions(c *gin.Context) {
	c.JSON(http.StatusOK, ConditionsResponse{
		Status:     "ok",
		Conditions: h.recommender.ListConditions(),
	})
}

// Recommend resolves the caller's condition and returns a best-effort plan.
// Business-rule failures never reach here as errors; only a malformed body
// produces a non-200 response.
func (h *DietHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	condition, plan := h.recommender.Recommend(c.Request.Context(), service.RecommendInput{
		SymptomsText:  req.SymptomsText,
		ConditionCode: req.ConditionCode,
		Preferences:   req.Preferences,
		Allergies:     req.Allergies,
		Days:          req.Days.Value,
	})

	c.JSON(http.StatusOK, RecommendResponse{
		Status:    "ok",
		Condition: condition,
		Plan:      plan,
	})
}
