package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildFiltersDefaults(t *testing.T) {
	values := BuildFilters(QueryParams{}).Values()

	assert.Equal(t, map[string]string{
		"number":               "12",
		"addRecipeInformation": "true",
		"instructionsRequired": "true",
	}, values)
}

func TestBuildFiltersOmitsMaxCarbsWithoutGlucose(t *testing.T) {
	f := BuildFilters(QueryParams{Ingredients: []string{"potato", "onion"}})

	assert.Zero(t, f.MaxCarbs)
	_, ok := f.Values()["maxCarbs"]
	assert.False(t, ok)
}

func TestBuildFiltersDerivesMaxCarbsFromGlucose(t *testing.T) {
	tests := []struct {
		glucose  float64
		maxCarbs string
	}{
		{9.1, "35"},
		{6.5, "55"},
		{3.2, "80"},
	}
	for _, tt := range tests {
		f := BuildFilters(QueryParams{GlucoseValue: floatPtr(tt.glucose)})
		assert.Equal(t, tt.maxCarbs, f.Values()["maxCarbs"])
	}
}

func TestBuildFiltersMealTypeVocabulary(t *testing.T) {
	tests := []struct {
		mealType string
		mapped   string
	}{
		{"breakfast", "breakfast"},
		{"Lunch", "main course"},
		{"DINNER", "main course"},
		{"snack", "snack"},
	}
	for _, tt := range tests {
		f := BuildFilters(QueryParams{MealType: tt.mealType})
		assert.Equal(t, tt.mapped, f.Type, "meal type %q", tt.mealType)
	}
}

func TestBuildFiltersUnknownMealTypeOmitted(t *testing.T) {
	f := BuildFilters(QueryParams{MealType: "brunch"})

	assert.Empty(t, f.Type)
	_, ok := f.Values()["type"]
	assert.False(t, ok)
}

func TestBuildFiltersPassThroughFields(t *testing.T) {
	values := BuildFilters(QueryParams{
		QueryText:          "Findus Crispy Pancake",
		Ingredients:        []string{"potato", "wheat flour"},
		Diet:               "vegetarian",
		Intolerances:       "gluten,dairy",
		ExcludeIngredients: "peanut",
	}).Values()

	assert.Equal(t, "Findus Crispy Pancake", values["query"])
	assert.Equal(t, "potato,wheat flour", values["includeIngredients"])
	assert.Equal(t, "vegetarian", values["diet"])
	assert.Equal(t, "gluten,dairy", values["intolerances"])
	assert.Equal(t, "peanut", values["excludeIngredients"])
}

func TestWithoutMaxCarbsLeavesOriginalIntact(t *testing.T) {
	f := BuildFilters(QueryParams{GlucoseValue: floatPtr(9.0), Diet: "vegan"})
	relaxed := f.WithoutMaxCarbs()

	assert.Equal(t, 35, f.MaxCarbs)
	assert.Zero(t, relaxed.MaxCarbs)
	assert.Equal(t, "vegan", relaxed.Diet)
}

func TestFallbackFiltersAreMinimal(t *testing.T) {
	values := FallbackFilters("Findus Crispy Pancake", "Dinner").Values()

	assert.Equal(t, map[string]string{
		"query":                "Findus Crispy Pancake",
		"type":                 "main course",
		"number":               "12",
		"addRecipeInformation": "true",
		"instructionsRequired": "true",
	}, values)
}
