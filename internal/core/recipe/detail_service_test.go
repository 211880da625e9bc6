package recipe

import (
	"context"
	"testing"

	"gluca-api/internal/core/spoonacular"
	"gluca-api/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetailer struct {
	info        *spoonacular.RecipeInformation
	infoErr     error
	widget      *spoonacular.NutritionWidget
	widgetErr   error
	widgetCalls int
}

func (f *fakeDetailer) GetRecipeInformation(ctx context.Context, id string) (*spoonacular.RecipeInformation, error) {
	return f.info, f.infoErr
}

func (f *fakeDetailer) GetNutritionWidget(ctx context.Context, id string) (*spoonacular.NutritionWidget, error) {
	f.widgetCalls++
	return f.widget, f.widgetErr
}

func TestFetchRejectsNonNumericID(t *testing.T) {
	svc := NewDetailService(&fakeDetailer{}, nil)

	for _, id := range []string{"", "abc", "12x", "-5"} {
		_, err := svc.Fetch(context.Background(), id)
		require.Error(t, err, "id %q", id)
		assert.True(t, common.IsValidationError(err))
	}
}

func TestFetchPropagatesRecipeUnavailable(t *testing.T) {
	svc := NewDetailService(&fakeDetailer{infoErr: common.ErrRecipeUnavailable}, nil)

	_, err := svc.Fetch(context.Background(), "42")

	require.Error(t, err)
	assert.True(t, common.HasCode(err, common.ErrCodeRecipeUnavailable))
}

func TestFetchNormalizesStructuredRecipe(t *testing.T) {
	client := &fakeDetailer{
		info: &spoonacular.RecipeInformation{
			ID:             42,
			Title:          "Shakshuka",
			ReadyInMinutes: 35,
			Servings:       2,
			Summary:        "<b>Eggs</b> poached in tomato sauce.",
			ExtendedIngredients: []spoonacular.ExtendedIngredient{
				{Name: "egg", Amount: 4, Unit: ""},
				{Name: "", OriginalName: "canned tomatoes", Amount: 400, Unit: "g"},
			},
			AnalyzedInstructions: []spoonacular.AnalyzedInstruction{
				{Steps: []spoonacular.InstructionStep{
					{Number: 1, Step: "Simmer the sauce."},
					{Number: 2, Step: "Crack in the eggs."},
				}},
			},
			Nutrition: &spoonacular.NutritionBlock{
				Nutrients: []spoonacular.Nutrient{
					{Name: "calories", Amount: 310.6},
					{Name: "Carbohydrates", Amount: 14.2},
					{Name: "Protein", Amount: 18.9},
					{Name: "Fat", Amount: 21.1},
				},
			},
		},
	}
	svc := NewDetailService(client, nil)

	full, err := svc.Fetch(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, "Shakshuka", full.Title)
	assert.Equal(t, "Eggs poached in tomato sauce.", full.Summary)

	require.Len(t, full.Ingredients, 2)
	assert.Equal(t, "canned tomatoes", full.Ingredients[1].Name)

	require.Len(t, full.Steps, 2)
	assert.Equal(t, "Simmer the sauce.", full.Steps[0].Step)

	require.NotNil(t, full.Nutrition.Calories)
	assert.Equal(t, 311, *full.Nutrition.Calories)
	require.NotNil(t, full.Nutrition.Carbs)
	assert.Equal(t, 14, *full.Nutrition.Carbs)
	assert.Nil(t, full.Nutrition.Fiber)

	assert.Zero(t, client.widgetCalls, "widget must not be called when carbs are present")
}

func TestFetchSplitsFreeTextInstructions(t *testing.T) {
	client := &fakeDetailer{
		info: &spoonacular.RecipeInformation{
			ID:           7,
			Title:        "Toast",
			Instructions: "<p>Toast the bread. Butter it generously. Serve warm.</p>",
			Nutrition: &spoonacular.NutritionBlock{
				Nutrients: []spoonacular.Nutrient{{Name: "Carbohydrates", Amount: 20}},
			},
		},
	}
	svc := NewDetailService(client, nil)

	full, err := svc.Fetch(context.Background(), "7")
	require.NoError(t, err)

	require.Len(t, full.Steps, 3)
	assert.Equal(t, 1, full.Steps[0].Number)
	assert.Equal(t, "Toast the bread.", full.Steps[0].Step)
	assert.Equal(t, "Butter it generously.", full.Steps[1].Step)
	assert.Equal(t, "Serve warm.", full.Steps[2].Step)
}

func TestFetchBackfillsFromWidgetWhenCarbsMissing(t *testing.T) {
	client := &fakeDetailer{
		info: &spoonacular.RecipeInformation{
			ID:    9,
			Title: "Mystery Bowl",
		},
		widget: &spoonacular.NutritionWidget{
			Calories: "540",
			Carbs:    "49g",
			Protein:  float64(22.4),
			Fat:      "31g",
		},
	}
	svc := NewDetailService(client, nil)

	full, err := svc.Fetch(context.Background(), "9")
	require.NoError(t, err)

	require.NotNil(t, full.Nutrition.Carbs)
	assert.Equal(t, 49, *full.Nutrition.Carbs)
	require.NotNil(t, full.Nutrition.Calories)
	assert.Equal(t, 540, *full.Nutrition.Calories)
	require.NotNil(t, full.Nutrition.Protein)
	assert.Equal(t, 22, *full.Nutrition.Protein)

	// The widget never supplies fiber or sugar.
	assert.Nil(t, full.Nutrition.Fiber)
	assert.Nil(t, full.Nutrition.Sugar)
	assert.Equal(t, 1, client.widgetCalls)
}

func TestFetchSurvivesWidgetFailure(t *testing.T) {
	client := &fakeDetailer{
		info:      &spoonacular.RecipeInformation{ID: 11},
		widgetErr: assert.AnError,
	}
	svc := NewDetailService(client, nil)

	full, err := svc.Fetch(context.Background(), "11")
	require.NoError(t, err)

	assert.Equal(t, "Untitled", full.Title)
	assert.Nil(t, full.Nutrition.Carbs)
}

func TestFetchTruncatesLongSummary(t *testing.T) {
	long := make([]byte, 0, 700)
	for i := 0; i < 700; i++ {
		long = append(long, 'a')
	}
	client := &fakeDetailer{
		info: &spoonacular.RecipeInformation{
			ID:      13,
			Title:   "Verbose",
			Summary: string(long),
			Nutrition: &spoonacular.NutritionBlock{
				Nutrients: []spoonacular.Nutrient{{Name: "Carbohydrates", Amount: 1}},
			},
		},
	}
	svc := NewDetailService(client, nil)

	full, err := svc.Fetch(context.Background(), "13")
	require.NoError(t, err)

	assert.Len(t, full.Summary, 500)
}
