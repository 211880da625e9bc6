package recipe

import (
	"net/http"
	"strconv"
	"strings"

	"gluca-api/internal/api/handlers"
	"gluca-api/internal/core/content"
	"gluca-api/internal/core/ingredient"
	"gluca-api/internal/core/preference"
	recipeService "gluca-api/internal/core/recipe"
	"gluca-api/internal/core/search"
	"gluca-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves recipe search, detail and fallback endpoints.
type Handler struct {
	orchestrator  *search.Orchestrator
	detailService *recipeService.DetailService
	store         *preference.Store
}

// NewHandler creates a new recipe handler.
func NewHandler(orchestrator *search.Orchestrator, detailService *recipeService.DetailService, store *preference.Store) *Handler {
	return &Handler{
		orchestrator:  orchestrator,
		detailService: detailService,
		store:         store,
	}
}

// HandleSearch runs a tiered recipe search. Saved dietary preferences apply to
// every search; explicit query parameters override the saved values.
func (h *Handler) HandleSearch(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	params := search.QueryParams{
		MealType:  c.Query("mealType"),
		QueryText: strings.TrimSpace(c.Query("query")),
	}

	if raw := c.Query("glucose"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A valid numeric glucose value is required.",
				"code":  common.ErrCodeInvalidRequest,
			})
			return
		}
		params.GlucoseValue = &value
	}

	if raw := c.Query("ingredients"); raw != "" {
		includeStaples := c.DefaultQuery("includeStaples", "true") != "false"
		params.Ingredients = ingredient.Merge(includeStaples, strings.Split(raw, ","))
	}

	prefs := h.store.Snapshot()
	params.Diet = firstNonEmpty(c.Query("diet"), prefs.Diet)
	params.Intolerances = firstNonEmpty(c.Query("intolerances"), strings.Join(prefs.Intolerances, ","))
	params.ExcludeIngredients = firstNonEmpty(c.Query("excludeIngredients"), strings.Join(prefs.ExcludeIngredients, ","))

	common.LogInfo("processing recipe search",
		zap.String("meal_type", params.MealType),
		zap.Bool("has_glucose", params.GlucoseValue != nil),
		zap.Int("ingredients", len(params.Ingredients)),
		zap.String("request_id", requestID),
	)

	result, err := h.orchestrator.Search(c.Request.Context(), params)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleDetail returns one normalized recipe.
func (h *Handler) HandleDetail(c *gin.Context) {
	id := c.Param("id")

	full, err := h.detailService.Fetch(c.Request.Context(), id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, full)
}

// HandleFallback serves the curated offline recipes, optionally filtered by
// meal type.
func (h *Handler) HandleFallback(c *gin.Context) {
	recipes := content.FallbackRecipes(c.Query("mealType"))
	c.JSON(http.StatusOK, gin.H{
		"results": recipes,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
