// Package recipe normalizes upstream recipe detail into the app's fixed
// FullRecipe schema.
package recipe

import (
	"context"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gluca-api/internal/core/cache"
	"gluca-api/internal/core/spoonacular"
	"gluca-api/internal/pkg/common"

	"go.uber.org/zap"
)

const summaryMaxChars = 500

var (
	numericID      = regexp.MustCompile(`^\d+$`)
	markupTag      = regexp.MustCompile(`<[^>]*>`)
	sentenceBreak  = regexp.MustCompile(`\.\s+`)
	leadingNumeric = regexp.MustCompile(`-?\d+(\.\d+)?`)
)

// Detailer is the upstream surface the service needs.
type Detailer interface {
	GetRecipeInformation(ctx context.Context, id string) (*spoonacular.RecipeInformation, error)
	GetNutritionWidget(ctx context.Context, id string) (*spoonacular.NutritionWidget, error)
}

// DetailService fetches and normalizes full recipe detail.
type DetailService struct {
	client Detailer
	cache  *cache.Manager
}

// NewDetailService creates a new detail service.
func NewDetailService(client Detailer, cacheManager *cache.Manager) *DetailService {
	return &DetailService{
		client: client,
		cache:  cacheManager,
	}
}

// Fetch returns the normalized recipe for id. Non-numeric ids are rejected
// before any network call. Nutrition is best-effort: when carbs are missing
// from the primary nutrient list, the nutrition-only widget backfills
// calories, carbs, protein and fat (never fiber or sugar), and widget
// failures are swallowed.
func (s *DetailService) Fetch(ctx context.Context, id string) (*common.FullRecipe, error) {
	if !numericID.MatchString(id) {
		return nil, common.NewValidationError("A valid numeric recipe ID is required.")
	}

	cacheKey := "recipe:" + id
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var full common.FullRecipe
		if err := common.ParseJSON(cached, &full); err == nil {
			return &full, nil
		}
	}

	info, err := s.client.GetRecipeInformation(ctx, id)
	if err != nil {
		return nil, err
	}

	full := &common.FullRecipe{
		ID:             info.ID,
		Title:          info.Title,
		Image:          info.Image,
		ReadyInMinutes: info.ReadyInMinutes,
		Servings:       info.Servings,
		Summary:        normalizeSummary(info.Summary),
		Ingredients:    normalizeIngredients(info.ExtendedIngredients),
		Steps:          normalizeSteps(info),
		Nutrition:      normalizeNutrition(info.Nutrition),
	}
	if full.Title == "" {
		full.Title = "Untitled"
	}

	if full.Nutrition.Carbs == nil {
		s.backfillNutrition(ctx, id, &full.Nutrition)
	}

	if encoded, err := common.ToJSON(full); err == nil {
		_ = s.cache.Set(ctx, cacheKey, encoded)
	}

	return full, nil
}

// backfillNutrition fills still-missing calories/carbs/protein/fat from the
// nutrition widget. Failures here never block returning the recipe.
func (s *DetailService) backfillNutrition(ctx context.Context, id string, n *common.Nutrition) {
	widget, err := s.client.GetNutritionWidget(ctx, id)
	if err != nil {
		common.LogWarn("nutrition widget fallback failed",
			zap.String("recipe_id", id),
			zap.Error(err),
		)
		return
	}

	if n.Calories == nil {
		n.Calories = widgetValue(widget.Calories)
	}
	if n.Carbs == nil {
		n.Carbs = widgetValue(widget.Carbs)
	}
	if n.Protein == nil {
		n.Protein = widgetValue(widget.Protein)
	}
	if n.Fat == nil {
		n.Fat = widgetValue(widget.Fat)
	}
}

func normalizeIngredients(raw []spoonacular.ExtendedIngredient) []common.RecipeIngredient {
	out := make([]common.RecipeIngredient, 0, len(raw))
	for _, ing := range raw {
		name := ing.Name
		if name == "" {
			name = ing.OriginalName
		}
		out = append(out, common.RecipeIngredient{
			Name:   name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return out
}

// normalizeSteps prefers the structured step list; otherwise the raw
// instructions string is stripped of markup and split on sentence boundaries.
func normalizeSteps(info *spoonacular.RecipeInformation) []common.RecipeStep {
	if len(info.AnalyzedInstructions) > 0 {
		steps := make([]common.RecipeStep, 0, len(info.AnalyzedInstructions[0].Steps))
		for _, s := range info.AnalyzedInstructions[0].Steps {
			steps = append(steps, common.RecipeStep{Number: s.Number, Step: s.Step})
		}
		if len(steps) > 0 {
			return steps
		}
	}

	if info.Instructions == "" {
		return []common.RecipeStep{}
	}

	raw := markupTag.ReplaceAllString(info.Instructions, "")
	parts := sentenceBreak.Split(raw, -1)
	steps := []common.RecipeStep{}
	for _, part := range parts {
		sentence := strings.TrimSpace(part)
		if sentence == "" {
			continue
		}
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
		steps = append(steps, common.RecipeStep{Number: len(steps) + 1, Step: sentence})
	}
	return steps
}

// normalizeNutrition extracts the fixed nutrient set by case-insensitive
// exact name match, rounding to the nearest integer.
func normalizeNutrition(block *spoonacular.NutritionBlock) common.Nutrition {
	if block == nil {
		return common.Nutrition{}
	}

	find := func(name string) *int {
		for _, n := range block.Nutrients {
			if strings.EqualFold(n.Name, name) {
				v := int(math.Round(n.Amount))
				return &v
			}
		}
		return nil
	}

	return common.Nutrition{
		Calories: find("Calories"),
		Carbs:    find("Carbohydrates"),
		Protein:  find("Protein"),
		Fat:      find("Fat"),
		Fiber:    find("Fiber"),
		Sugar:    find("Sugar"),
	}
}

func normalizeSummary(summary string) string {
	stripped := markupTag.ReplaceAllString(summary, "")
	runes := []rune(stripped)
	if len(runes) > summaryMaxChars {
		return string(runes[:summaryMaxChars])
	}
	return stripped
}

// widgetValue parses a widget nutrient value, which upstream serves as a
// number or a string such as "49g".
func widgetValue(v any) *int {
	switch t := v.(type) {
	case float64:
		n := int(math.Round(t))
		return &n
	case json.Number:
		if f, err := t.Float64(); err == nil {
			n := int(math.Round(f))
			return &n
		}
	case string:
		if match := leadingNumeric.FindString(strings.TrimSpace(t)); match != "" {
			if f, err := strconv.ParseFloat(match, 64); err == nil {
				n := int(math.Round(f))
				return &n
			}
		}
	}
	return nil
}
