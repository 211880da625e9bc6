package common

// Shared data-model types used across the Gluca API.

// GlucoseReading is a transient, caller-supplied glucose sample in mmol/L.
type GlucoseReading struct {
	Value      float64 `json:"value"`
	RecordedAt string  `json:"recordedAt,omitempty"`
}

// DietaryPreferences is the client-owned preference document. It is replaced
// wholesale on save and read on every suggestion request.
type DietaryPreferences struct {
	Diet               string   `json:"diet,omitempty"`
	Intolerances       []string `json:"intolerances"`
	ExcludeIngredients []string `json:"excludeIngredients"`
}

// DietTypes lists the diets the preference document accepts.
var DietTypes = []string{
	"vegetarian",
	"vegan",
	"pescetarian",
	"gluten free",
	"ketogenic",
	"paleo",
}

// IsValidDiet reports whether d is one of the accepted diet values.
func IsValidDiet(d string) bool {
	for _, t := range DietTypes {
		if d == t {
			return true
		}
	}
	return false
}

// DefaultPreferences returns an empty preference document.
func DefaultPreferences() DietaryPreferences {
	return DietaryPreferences{
		Intolerances:       []string{},
		ExcludeIngredients: []string{},
	}
}

// ScannedProduct is the normalized result of a barcode lookup. It is immutable
// after creation and superseded entirely by the next scan.
type ScannedProduct struct {
	Barcode           string         `json:"barcode"`
	Name              string         `json:"name,omitempty"`
	Brand             string         `json:"brand,omitempty"`
	Image             string         `json:"image,omitempty"`
	IngredientsText   string         `json:"ingredientsText,omitempty"`
	IngredientsTags   []string       `json:"ingredientsTags,omitempty"`
	ParsedIngredients []string       `json:"parsedIngredients,omitempty"`
	Nutriments        map[string]any `json:"nutriments,omitempty"`
}

// RecipeSummary is one search hit. Ordering follows the upstream
// most-matched-ingredients ranking.
type RecipeSummary struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes,omitempty"`
	Servings       int    `json:"servings,omitempty"`
}

// RecipeIngredient is one ingredient line of a full recipe.
type RecipeIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RecipeStep is one numbered instruction step.
type RecipeStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// Nutrition holds per-recipe nutrient values, best-effort. A nil field means
// the value was not available upstream.
type Nutrition struct {
	Calories *int `json:"calories,omitempty"`
	Carbs    *int `json:"carbs,omitempty"`
	Protein  *int `json:"protein,omitempty"`
	Fat      *int `json:"fat,omitempty"`
	Fiber    *int `json:"fiber,omitempty"`
	Sugar    *int `json:"sugar,omitempty"`
}

// FullRecipe is the normalized recipe detail.
type FullRecipe struct {
	ID             int                `json:"id"`
	Title          string             `json:"title"`
	Image          string             `json:"image"`
	ReadyInMinutes int                `json:"readyInMinutes"`
	Servings       int                `json:"servings"`
	Summary        string             `json:"summary"`
	Ingredients    []RecipeIngredient `json:"ingredients"`
	Steps          []RecipeStep       `json:"steps"`
	Nutrition      Nutrition          `json:"nutrition"`
}

// Article is a static educational content entry.
type Article struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Subheading string `json:"subheading"`
	Section    string `json:"section"`
	Image      string `json:"image"`
	Content    string `json:"content"`
}

// FallbackRecipe is one entry of the small static recipe set served when the
// upstream recipe API is not an option.
type FallbackRecipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subheading  string   `json:"subheading"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Time        string   `json:"time"`
	MealType    string   `json:"mealType"`
	Ingredients []string `json:"ingredients"`
	Method      string   `json:"method"`
	Featured    bool     `json:"featured,omitempty"`
}
