package recipe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gluca-api/internal/core/preference"
	recipeService "gluca-api/internal/core/recipe"
	"gluca-api/internal/core/search"
	"gluca-api/internal/core/spoonacular"
	"gluca-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	results []common.RecipeSummary
	err     error
	params  []map[string]string
}

func (f *fakeSearcher) ComplexSearch(ctx context.Context, params map[string]string) ([]common.RecipeSummary, error) {
	f.params = append(f.params, params)
	return f.results, f.err
}

type fakeDetailer struct {
	info *spoonacular.RecipeInformation
	err  error
}

func (f *fakeDetailer) GetRecipeInformation(ctx context.Context, id string) (*spoonacular.RecipeInformation, error) {
	return f.info, f.err
}

func (f *fakeDetailer) GetNutritionWidget(ctx context.Context, id string) (*spoonacular.NutritionWidget, error) {
	return nil, assert.AnError
}

func newTestRouter(searcher search.Searcher, detailer recipeService.Detailer) (*gin.Engine, *preference.Store) {
	gin.SetMode(gin.TestMode)
	store := preference.NewStore(context.Background(), preference.NewMemoryBackend())
	handler := NewHandler(
		search.NewOrchestrator(searcher),
		recipeService.NewDetailService(detailer, nil),
		store,
	)

	router := gin.New()
	router.GET("/recipes/search", handler.HandleSearch)
	router.GET("/recipes/fallback", handler.HandleFallback)
	router.GET("/recipes/:id", handler.HandleDetail)
	return router, store
}

func TestHandleSearchSuccess(t *testing.T) {
	searcher := &fakeSearcher{results: []common.RecipeSummary{{ID: 1, Title: "Soup"}}}
	router, _ := newTestRouter(searcher, &fakeDetailer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/search?mealType=lunch&glucose=9.1&ingredients=Chicken,Rice", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result search.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Soup", result.Results[0].Title)
	require.NotNil(t, result.MaxCarbs)
	assert.Equal(t, 35, *result.MaxCarbs)

	require.Len(t, searcher.params, 1)
	assert.Equal(t, "35", searcher.params[0]["maxCarbs"])
	assert.Equal(t, "main course", searcher.params[0]["type"])
	assert.Contains(t, searcher.params[0]["includeIngredients"], "chicken")
	assert.Contains(t, searcher.params[0]["includeIngredients"], "olive oil")
}

func TestHandleSearchWithoutStaples(t *testing.T) {
	searcher := &fakeSearcher{results: []common.RecipeSummary{{ID: 1}}}
	router, _ := newTestRouter(searcher, &fakeDetailer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/search?ingredients=Chicken&includeStaples=false", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, searcher.params, 1)
	assert.Equal(t, "chicken", searcher.params[0]["includeIngredients"])
}

func TestHandleSearchInvalidGlucose(t *testing.T) {
	router, _ := newTestRouter(&fakeSearcher{}, &fakeDetailer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/search?glucose=high", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeInvalidRequest)
}

func TestHandleSearchRateLimited(t *testing.T) {
	router, _ := newTestRouter(&fakeSearcher{err: common.ErrRateLimited}, &fakeDetailer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/search?query=pasta", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), common.ErrCodeRateLimited)
}

func TestHandleSearchAppliesSavedPreferences(t *testing.T) {
	searcher := &fakeSearcher{results: []common.RecipeSummary{{ID: 1}}}
	router, store := newTestRouter(searcher, &fakeDetailer{})

	require.NoError(t, store.Replace(context.Background(), common.DietaryPreferences{
		Diet:               "vegetarian",
		Intolerances:       []string{"gluten", "dairy"},
		ExcludeIngredients: []string{"mushroom"},
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/search?query=curry", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, searcher.params, 1)
	assert.Equal(t, "vegetarian", searcher.params[0]["diet"])
	assert.Equal(t, "gluten,dairy", searcher.params[0]["intolerances"])
	assert.Equal(t, "mushroom", searcher.params[0]["excludeIngredients"])
}

func TestHandleSearchQueryOverridesSavedDiet(t *testing.T) {
	searcher := &fakeSearcher{results: []common.RecipeSummary{{ID: 1}}}
	router, store := newTestRouter(searcher, &fakeDetailer{})

	require.NoError(t, store.Replace(context.Background(), common.DietaryPreferences{Diet: "vegetarian"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/search?query=curry&diet=vegan", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, searcher.params, 1)
	assert.Equal(t, "vegan", searcher.params[0]["diet"])
}

func TestHandleDetailNotFound(t *testing.T) {
	router, _ := newTestRouter(&fakeSearcher{}, &fakeDetailer{err: common.ErrRecipeUnavailable})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "removed")
}

func TestHandleDetailInvalidID(t *testing.T) {
	router, _ := newTestRouter(&fakeSearcher{}, &fakeDetailer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/not-a-number", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFallbackFiltersMealType(t *testing.T) {
	router, _ := newTestRouter(&fakeSearcher{}, &fakeDetailer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/fallback?mealType=breakfast", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Results []common.FallbackRecipe `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Results)
	for _, r := range body.Results {
		assert.Equal(t, "breakfast", r.MealType)
	}
}
