// Package spoonacular is the typed client for the Spoonacular recipe API.
// Upstream JSON is validated and defaulted once here, at the boundary, so the
// services above never shape-guess.
package spoonacular

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gluca-api/internal/infrastructure/config"
	"gluca-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client is the Spoonacular API client.
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient creates a new Spoonacular client. Every call carries the API key
// and the configured per-call timeout.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Spoonacular.BaseURL).
		SetTimeout(cfg.Spoonacular.Timeout).
		SetQueryParam("apiKey", cfg.Spoonacular.APIKey)

	return &Client{
		config: cfg,
		client: client,
	}
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
}

// RecipeInformation is the raw recipe detail shape consumed by the detail
// normalizer.
type RecipeInformation struct {
	ID                   int                   `json:"id"`
	Title                string                `json:"title"`
	Image                string                `json:"image"`
	ReadyInMinutes       int                   `json:"readyInMinutes"`
	Servings             int                   `json:"servings"`
	Summary              string                `json:"summary"`
	Instructions         string                `json:"instructions"`
	ExtendedIngredients  []ExtendedIngredient  `json:"extendedIngredients"`
	AnalyzedInstructions []AnalyzedInstruction `json:"analyzedInstructions"`
	Nutrition            *NutritionBlock       `json:"nutrition"`
}

// ExtendedIngredient is one upstream ingredient entry.
type ExtendedIngredient struct {
	Name         string  `json:"name"`
	OriginalName string  `json:"originalName"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
}

// AnalyzedInstruction is one upstream instruction block.
type AnalyzedInstruction struct {
	Steps []InstructionStep `json:"steps"`
}

// InstructionStep is one structured step.
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// NutritionBlock is the nested nutrient list of a recipe.
type NutritionBlock struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Nutrient is one named nutrient amount.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// NutritionWidget is the lighter-weight nutrition-only payload used as a
// nutrient fallback. Upstream serves the values as numbers or strings such as
// "49g", so the fields stay untyped until parsed.
type NutritionWidget struct {
	Calories any `json:"calories"`
	Carbs    any `json:"carbs"`
	Fat      any `json:"fat"`
	Protein  any `json:"protein"`
}

// ComplexSearch executes one recipe search with the given parameter set.
// A 402 maps to the rate-limited error, other non-2xx statuses to a generic
// upstream failure, and transport errors to upstream-unreachable.
func (c *Client) ComplexSearch(ctx context.Context, params map[string]string) ([]common.RecipeSummary, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/recipes/complexSearch")
	common.LogUpstreamCall("spoonacular", "complexSearch", time.Since(start), err)

	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstreamUnreachable, "Failed to reach Spoonacular.", http.StatusBadGateway, err)
	}

	if resp.StatusCode() == http.StatusPaymentRequired {
		return nil, common.ErrRateLimited
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("spoonacular search returned error status",
			zap.Int("status_code", resp.StatusCode()),
		)
		return nil, common.NewError(common.ErrCodeUpstreamFailure, "Spoonacular request failed.", http.StatusBadGateway,
			fmt.Errorf("spoonacular returned status %d", resp.StatusCode()))
	}

	var parsed searchResponse
	if err := common.ParseJSONBytes(resp.Body(), &parsed); err != nil {
		return nil, common.NewError(common.ErrCodeUpstreamFailure, "Spoonacular request failed.", http.StatusBadGateway,
			fmt.Errorf("decode spoonacular search response: %w", err))
	}

	results := make([]common.RecipeSummary, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, common.RecipeSummary{
			ID:             r.ID,
			Title:          r.Title,
			Image:          r.Image,
			ReadyInMinutes: r.ReadyInMinutes,
			Servings:       r.Servings,
		})
	}
	return results, nil
}

// GetRecipeInformation fetches full recipe detail including nutrition.
// A 404 maps to the recipe-unavailable error so the caller can show a
// specific "recipe removed" message.
func (c *Client) GetRecipeInformation(ctx context.Context, id string) (*RecipeInformation, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("includeNutrition", "true").
		Get(fmt.Sprintf("/recipes/%s/information", id))
	common.LogUpstreamCall("spoonacular", "information", time.Since(start), err)

	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstreamUnreachable, "Failed to reach Spoonacular.", http.StatusBadGateway, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusPaymentRequired:
		return nil, common.ErrRateLimited
	case http.StatusNotFound:
		return nil, common.ErrRecipeUnavailable
	default:
		return nil, common.NewError(common.ErrCodeUpstreamFailure,
			fmt.Sprintf("Spoonacular returned status %d.", resp.StatusCode()), http.StatusBadGateway, nil)
	}

	var info RecipeInformation
	if err := common.ParseJSONBytes(resp.Body(), &info); err != nil {
		return nil, common.NewError(common.ErrCodeUpstreamFailure, "Spoonacular request failed.", http.StatusBadGateway,
			fmt.Errorf("decode spoonacular recipe response: %w", err))
	}
	return &info, nil
}

// GetNutritionWidget fetches the nutrition-only fallback payload. Callers
// treat any error as best-effort and swallow it.
func (c *Client) GetNutritionWidget(ctx context.Context, id string) (*NutritionWidget, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/recipes/%s/nutritionWidget.json", id))
	common.LogUpstreamCall("spoonacular", "nutritionWidget", time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("fetch nutrition widget: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("nutrition widget returned status %d", resp.StatusCode())
	}

	var widget NutritionWidget
	if err := common.ParseJSONBytes(resp.Body(), &widget); err != nil {
		return nil, fmt.Errorf("decode nutrition widget: %w", err)
	}
	return &widget, nil
}
