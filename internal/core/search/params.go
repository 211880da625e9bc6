// Package search builds Spoonacular complexSearch filter sets and runs the
// tiered relaxation strategy over them.
package search

import (
	"strconv"
	"strings"

	"gluca-api/internal/core/glucose"
)

// Defaults applied to every search.
const (
	resultCount = 12
)

// mealTypeMap translates the app's meal types into Spoonacular's type
// vocabulary. Unknown meal types are omitted, not defaulted.
var mealTypeMap = map[string]string{
	"breakfast": "breakfast",
	"lunch":     "main course",
	"dinner":    "main course",
	"snack":     "snack",
}

// QueryParams is the structured suggestion request coming from the UI layer.
type QueryParams struct {
	MealType           string
	GlucoseValue       *float64
	QueryText          string
	Ingredients        []string
	Diet               string
	Intolerances       string
	ExcludeIngredients string
}

// Filters is the flat complexSearch parameter set. Zero values mean "absent";
// MaxCarbs is always one of {35, 55, 80} when set.
type Filters struct {
	Query                string
	IncludeIngredients   string
	Type                 string
	MaxCarbs             int
	Diet                 string
	Intolerances         string
	ExcludeIngredients   string
	Number               int
	AddRecipeInformation bool
	InstructionsRequired bool
}

// BuildFilters translates a suggestion request into the upstream filter set.
// The builder never rejects; absent inputs are simply omitted.
func BuildFilters(p QueryParams) Filters {
	f := Filters{
		Number:               resultCount,
		AddRecipeInformation: true,
		InstructionsRequired: true,
	}

	if p.QueryText != "" {
		f.Query = p.QueryText
	}
	if len(p.Ingredients) > 0 {
		f.IncludeIngredients = strings.Join(p.Ingredients, ",")
	}
	if p.MealType != "" {
		if mapped, ok := mealTypeMap[strings.ToLower(p.MealType)]; ok {
			f.Type = mapped
		}
	}
	if p.GlucoseValue != nil {
		f.MaxCarbs = glucose.MaxCarbs(*p.GlucoseValue)
	}
	if p.Diet != "" {
		f.Diet = p.Diet
	}
	if p.Intolerances != "" {
		f.Intolerances = p.Intolerances
	}
	if p.ExcludeIngredients != "" {
		f.ExcludeIngredients = p.ExcludeIngredients
	}

	return f
}

// FallbackFilters is the minimal free-text filter set used by the last search
// tier: everything except query, the defaults and the meal type is dropped.
func FallbackFilters(query, mealType string) Filters {
	f := Filters{
		Query:                query,
		Number:               resultCount,
		AddRecipeInformation: true,
		InstructionsRequired: true,
	}
	if mealType != "" {
		if mapped, ok := mealTypeMap[strings.ToLower(mealType)]; ok {
			f.Type = mapped
		}
	}
	return f
}

// WithoutMaxCarbs returns a copy of the filter set with the carb cap removed.
func (f Filters) WithoutMaxCarbs() Filters {
	f.MaxCarbs = 0
	return f
}

// Values renders the filter set as complexSearch query parameters.
func (f Filters) Values() map[string]string {
	values := map[string]string{
		"number":               strconv.Itoa(f.Number),
		"addRecipeInformation": strconv.FormatBool(f.AddRecipeInformation),
		"instructionsRequired": strconv.FormatBool(f.InstructionsRequired),
	}
	if f.Query != "" {
		values["query"] = f.Query
	}
	if f.IncludeIngredients != "" {
		values["includeIngredients"] = f.IncludeIngredients
	}
	if f.Type != "" {
		values["type"] = f.Type
	}
	if f.MaxCarbs > 0 {
		values["maxCarbs"] = strconv.Itoa(f.MaxCarbs)
	}
	if f.Diet != "" {
		values["diet"] = f.Diet
	}
	if f.Intolerances != "" {
		values["intolerances"] = f.Intolerances
	}
	if f.ExcludeIngredients != "" {
		values["excludeIngredients"] = f.ExcludeIngredients
	}
	return values
}
