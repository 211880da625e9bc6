// Package ingredient normalizes and merges ingredient name lists coming from
// different sources (scanned product, user checklist, kitchen staples).
package ingredient

import "strings"

// KitchenStaples are common pantry items appended after the caller-supplied
// sources so niche scanned items still match everyday recipes.
var KitchenStaples = []string{
	"onion",
	"garlic",
	"potato",
	"carrot",
	"olive oil",
	"salt",
	"black pepper",
	"rice",
	"pasta",
	"egg",
}

// Merge flattens the given sources into one list, lowercased and trimmed,
// deduplicated case-insensitively. The first occurrence wins, so order of
// first appearance is preserved: the upstream search ranks by ingredient match
// count and a stable order gives deterministic includeIngredients strings.
// Blank entries are dropped. KitchenStaples are appended as the final source
// when includeStaples is set.
func Merge(includeStaples bool, sources ...[]string) []string {
	seen := make(map[string]struct{})
	result := []string{}

	add := func(items []string) {
		for _, item := range items {
			key := strings.ToLower(strings.TrimSpace(item))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, key)
		}
	}

	for _, source := range sources {
		add(source)
	}
	if includeStaples {
		add(KitchenStaples)
	}

	return result
}
