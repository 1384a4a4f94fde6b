package data

import (
	"fmt"
	"strings"
)

// Recipe is one ingredient-search result, reduced to what the UI shows.
// Values are never mutated after construction.
type Recipe struct {
	ID                int
	Title             string
	UsedIngredients   []string
	MissedIngredients []string
}

// DisplayURL builds the recipe's public page URL from its title and id.
func (r Recipe) DisplayURL() string {
	slug := strings.ReplaceAll(strings.ToLower(r.Title), " ", "-")
	return fmt.Sprintf("https://spoonacular.com/recipes/%s-%d", slug, r.ID)
}

// Fields flattens the recipe into the loose mapping stored for favorites.
func (r Recipe) Fields() map[string]any {
	return map[string]any{
		"id":                r.ID,
		"title":             r.Title,
		"usedIngredients":   r.UsedIngredients,
		"missedIngredients": r.MissedIngredients,
		"url":               r.DisplayURL(),
	}
}

// RecipeDetails carries the per-recipe information endpoint's fields.
type RecipeDetails struct {
	ID             int
	Title          string
	ReadyInMinutes int
	Servings       int
	SourceURL      string
	Ingredients    []string
}

type InstructionStep struct {
	Number int
	Text   string
}

// InstructionSet is one named block of analyzed instructions. Recipes
// commonly have a single unnamed set, and sometimes none at all.
type InstructionSet struct {
	Name  string
	Steps []InstructionStep
}
