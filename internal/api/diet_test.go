package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BoluOladipo/AI-Diet-Recommender/internal/models"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/repository"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/service"
)

func testRecommender(t *testing.T) *service.Recommender {
	t.Helper()
	repo := repository.New(
		[]models.FoodItem{
			{Name: "Rice", Calories: 130, Sodium: 1, Sugar: 0.1},
			{Name: "Beans", Calories: 120, Sodium: 5, Sugar: 0.3},
			{Name: "Milk", Calories: 61, Sodium: 43, Sugar: 5.1},
		},
		[]models.Recipe{
			{ID: "r1", Title: "Rice and Beans", Ingredients: []models.Ingredient{{Name: "Rice", Grams: 150}, {Name: "Beans", Grams: 100}}, Steps: []string{"Cook."}},
			{ID: "r2", Title: "Milk Pudding", Ingredients: []models.Ingredient{{Name: "Milk", Grams: 200}}, Steps: []string{"Warm."}},
			{ID: "r3", Title: "Fried Rice", Ingredients: []models.Ingredient{{Name: "Rice", Grams: 200}}, Steps: []string{"Fry."}},
		},
		[]models.Condition{
			{Code: "GENERAL", Name: "General/Default"},
			{Code: "LACTOSE", Name: "Lactose Intolerance", BannedIngredients: []string{"milk"}},
		},
	)
	calc := service.NewNutrientCalculator(repo)
	checker := service.NewViolationChecker(calc)
	interpreter := service.NewConditionInterpreter(repo, nil, 0, zap.NewNop())
	planner := service.NewPlanGenerator(repo, checker)
	return service.NewRecommender(repo, interpreter, planner, zap.NewNop())
}

func dietRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDietHandler(testRecommender(t)).RegisterRoutes(router.Group("/api"))
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListConditions(t *testing.T) {
	router := dietRouter(t)

	w := performRequest(router, "GET", "/api/diet/conditions", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ConditionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Conditions, 2)
	assert.Equal(t, "GENERAL", resp.Conditions[0].Code)
}

func TestRecommend(t *testing.T) {
	router := dietRouter(t)

	t.Run("returns condition and plan", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/diet/recommend", map[string]interface{}{
			"conditionCode": "LACTOSE",
			"days":          2,
			"allergies":     []string{},
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp RecommendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "LACTOSE", resp.Condition.Code)
		require.Len(t, resp.Plan, 2)
		require.NotEmpty(t, resp.Plan[0].Meals)

		// milk pudding violates LACTOSE, so it ranks last
		assert.NotEqual(t, "r2", resp.Plan[0].Meals[0].RecipeID)
	})

	t.Run("days accepts a numeric string", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/diet/recommend", map[string]interface{}{
			"days": "3",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp RecommendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Plan, 3)
	})

	t.Run("unparseable days falls back to one", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/diet/recommend", map[string]interface{}{
			"days": "soon",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp RecommendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Plan, 1)
	})

	t.Run("empty body still returns a plan", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/diet/recommend", map[string]interface{}{})

		require.Equal(t, http.StatusOK, w.Code)

		var resp RecommendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "GENERAL", resp.Condition.Code)
		assert.Len(t, resp.Plan, 1)
	})

	t.Run("malformed json is a bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/diet/recommend", bytes.NewBufferString("{oops"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("exclude preference filters titles", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/diet/recommend", map[string]interface{}{
			"preferences": map[string]interface{}{"exclude": []string{"fried"}},
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp RecommendResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		for _, meal := range resp.Plan[0].Meals {
			assert.NotEqual(t, "r3", meal.RecipeID)
		}
	})
}
