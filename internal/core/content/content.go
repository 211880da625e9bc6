// Package content serves the static editorial data: learning articles and the
// curated fallback recipes shown when live suggestions are unavailable.
package content

import (
	"strings"

	"gluca-api/internal/pkg/common"
)

var articles = []common.Article{
	{
		Slug:       "understanding-glucose",
		Title:      "Understanding Glucose Levels",
		Subheading: "A beginner's guide",
		Section:    "Section 1",
		Image:      "/images/books.jpg",
		Content: "Blood glucose is the sugar circulating in your bloodstream, and it rises and falls throughout the day in response to food, activity and stress. " +
			"Most adults aim to keep readings between 4.0 and 8.0 mmol/L. Readings above that range over time can damage blood vessels and nerves, while readings below it can cause dizziness, confusion and fainting. " +
			"Checking your glucose before meals tells you how much room you have for carbohydrate, which is why the app adjusts its suggestions to your latest reading.",
	},
	{
		Slug:       "managing-type-2",
		Title:      "Managing Type 2 Diabetes",
		Subheading: "Daily routines that help",
		Section:    "Section 1",
		Image:      "/images/books.jpg",
		Content: "Type 2 diabetes responds well to routine. Eating meals at consistent times, walking after the largest meal of the day and getting regular sleep all flatten glucose swings. " +
			"Small, repeatable habits beat dramatic changes: swapping one refined-carb side for vegetables at dinner has more staying power than a crash diet.",
	},
	{
		Slug:       "nutrition-basics",
		Title:      "Nutrition Basics",
		Subheading: "What to eat and when",
		Section:    "Section 2",
		Image:      "/images/books.jpg",
		Content: "Carbohydrate raises glucose fastest, protein and fat much more slowly. Building plates around lean protein, non-starchy vegetables and modest portions of whole grains keeps meals satisfying without sharp spikes. " +
			"Fibre slows absorption, so whole fruit beats juice and whole grains beat refined ones.",
	},
	{
		Slug:       "carb-counting",
		Title:      "Carb Counting Guide",
		Subheading: "Mastering your intake",
		Section:    "Section 2",
		Image:      "/images/books.jpg",
		Content: "Carb counting means reading labels and portion sizes in grams of carbohydrate rather than calories. A slice of bread is roughly 15g, a medium potato around 30g. " +
			"Once you know your per-meal budget, you can trade freely within it. The app computes that budget from your latest glucose reading and filters recipe suggestions against it.",
	},
	{
		Slug:       "exercise-and-glucose",
		Title:      "Exercise & Glucose",
		Subheading: "How movement helps",
		Section:    "Section 3",
		Image:      "/images/books.jpg",
		Content: "Muscles pull glucose out of the blood when they work, with or without insulin. Even a ten-minute walk after eating blunts the post-meal rise. " +
			"Resistance training adds muscle mass, which raises your baseline glucose disposal around the clock. If you use insulin or sulfonylureas, carry fast-acting carbs during longer sessions.",
	},
	{
		Slug:       "stress-management",
		Title:      "Stress & Blood Sugar",
		Subheading: "The hidden connection",
		Section:    "Section 3",
		Image:      "/images/books.jpg",
		Content: "Stress hormones like cortisol and adrenaline tell the liver to release stored glucose, so a hard day can raise readings even when you have eaten nothing unusual. " +
			"Short breathing exercises, regular sleep and planning ahead for known stressors all measurably reduce these swings.",
	},
}

var fallbackRecipes = []common.FallbackRecipe{
	{
		ID:          "spicy-udon",
		Title:       "Spicy Gochujang Udon Noodles",
		Subheading:  "Quick Korean-inspired dish",
		Description: "This quick Korean-inspired gochujang noodle stir-fry is packed with flavour and takes 10 minutes, making it the perfect midweek meal.",
		Image:       "/images/udon.jpg",
		Time:        "30 min",
		MealType:    "lunch",
		Featured:    true,
		Ingredients: []string{
			"200g udon noodles",
			"2 tbsp gochujang paste",
			"1 tbsp soy sauce",
			"1 tbsp sesame oil",
			"2 cloves garlic, minced",
			"1 spring onion, sliced",
			"1 egg",
			"Sesame seeds to garnish",
		},
		Method: "Cook the udon noodles per the packet and drain. Fry the garlic in sesame oil, stir in gochujang and soy sauce, then toss through the noodles. Top with a fried egg, spring onion and sesame seeds.",
	},
	{
		ID:          "green-salad",
		Title:       "Mediterranean Green Salad",
		Subheading:  "Fresh and light",
		Description: "A light and refreshing salad with feta cheese and olives, perfect for a healthy lunch.",
		Image:       "/images/salad.jpg",
		Time:        "15 min",
		MealType:    "lunch",
		Ingredients: []string{"Mixed greens", "Cherry tomatoes", "Cucumber", "Feta cheese", "Kalamata olives", "Olive oil", "Lemon juice"},
		Method:      "Toss all ingredients together in a large bowl. Drizzle with olive oil and lemon juice. Season to taste.",
	},
	{
		ID:          "veggie-stir-fry",
		Title:       "Vegetable Stir Fry",
		Subheading:  "Colorful and nutritious",
		Description: "A quick and colorful stir fry loaded with fresh vegetables and a savory sauce.",
		Image:       "/images/curry.jpg",
		Time:        "20 min",
		MealType:    "dinner",
		Featured:    true,
		Ingredients: []string{"Broccoli", "Bell peppers", "Snap peas", "Carrots", "Soy sauce", "Ginger", "Garlic", "Sesame oil"},
		Method:      "Heat sesame oil in a wok. Add garlic and ginger, then vegetables. Stir fry for 5 minutes. Add soy sauce and serve.",
	},
	{
		ID:          "overnight-oats",
		Title:       "Berry Overnight Oats",
		Subheading:  "Prep the night before",
		Description: "Creamy overnight oats topped with fresh berries and a drizzle of honey.",
		Image:       "/images/smoothie.jpg",
		Time:        "5 min prep",
		MealType:    "breakfast",
		Featured:    true,
		Ingredients: []string{"Rolled oats", "Greek yogurt", "Almond milk", "Mixed berries", "Honey", "Chia seeds"},
		Method:      "Combine oats, yogurt, milk, and chia seeds in a jar. Refrigerate overnight. Top with berries and honey before serving.",
	},
	{
		ID:          "avocado-toast",
		Title:       "Avocado Toast with Egg",
		Subheading:  "Classic and satisfying",
		Description: "Perfectly ripe avocado on sourdough toast, topped with a poached egg.",
		Image:       "/images/breakfast.jpg",
		Time:        "10 min",
		MealType:    "breakfast",
		Ingredients: []string{"Sourdough bread", "Ripe avocado", "Eggs", "Chili flakes", "Lime juice", "Salt and pepper"},
		Method:      "Toast sourdough. Mash avocado with lime juice and season. Poach an egg. Assemble and garnish with chili flakes.",
	},
	{
		ID:          "energy-balls",
		Title:       "Peanut Butter Energy Balls",
		Subheading:  "No-bake snack",
		Description: "Healthy no-bake energy balls made with oats and peanut butter.",
		Image:       "/images/snack.jpg",
		Time:        "10 min",
		MealType:    "snack",
		Featured:    true,
		Ingredients: []string{"Rolled oats", "Peanut butter", "Honey", "Dark chocolate chips", "Flaxseed"},
		Method:      "Mix all ingredients. Roll into balls. Refrigerate for 30 minutes. Enjoy as a healthy snack.",
	},
	{
		ID:          "hummus-veggies",
		Title:       "Hummus & Veggie Sticks",
		Subheading:  "Simple and healthy",
		Description: "Creamy homemade hummus served with fresh vegetable sticks.",
		Image:       "/images/salad.jpg",
		Time:        "15 min",
		MealType:    "snack",
		Ingredients: []string{"Chickpeas", "Tahini", "Lemon juice", "Garlic", "Carrots", "Celery", "Bell peppers"},
		Method:      "Blend chickpeas, tahini, lemon juice, and garlic until smooth. Serve with fresh veggie sticks.",
	},
	{
		ID:          "grilled-salmon",
		Title:       "Grilled Salmon with Asparagus",
		Subheading:  "Omega-3 rich dinner",
		Description: "Perfectly grilled salmon fillet served with roasted asparagus and lemon.",
		Image:       "/images/dinner.jpg",
		Time:        "25 min",
		MealType:    "dinner",
		Ingredients: []string{"Salmon fillet", "Asparagus", "Olive oil", "Lemon", "Garlic", "Dill", "Salt and pepper"},
		Method:      "Season salmon and asparagus. Grill salmon for 4 min each side. Roast asparagus at 200C for 12 min. Serve with lemon.",
	},
}

// Articles returns all learning articles in display order.
func Articles() []common.Article {
	out := make([]common.Article, len(articles))
	copy(out, articles)
	return out
}

// ArticleBySlug returns the article with the given slug, or false.
func ArticleBySlug(slug string) (common.Article, bool) {
	for _, a := range articles {
		if a.Slug == slug {
			return a, true
		}
	}
	return common.Article{}, false
}

// FallbackRecipes returns the curated recipes, optionally filtered by meal
// type. An empty or unknown meal type returns the full list unfiltered.
func FallbackRecipes(mealType string) []common.FallbackRecipe {
	mealType = strings.ToLower(strings.TrimSpace(mealType))
	out := []common.FallbackRecipe{}
	for _, r := range fallbackRecipes {
		if mealType == "" || r.MealType == mealType {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		out = make([]common.FallbackRecipe, len(fallbackRecipes))
		copy(out, fallbackRecipes)
	}
	return out
}
