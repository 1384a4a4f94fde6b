package services

import (
	"github.com/rbarros/recipefinder/pkg/data"
	"github.com/rbarros/recipefinder/pkg/spoonacular"
)

// RecipeOverview bundles the two detail-view fetches.
type RecipeOverview struct {
	Details      *data.RecipeDetails
	Instructions []data.InstructionSet
}

// Steps flattens all instruction sets in order. An empty result means the
// recipe has no instructions, which renderers must show as such instead of
// assuming a first set exists.
func (o *RecipeOverview) Steps() []data.InstructionStep {
	var steps []data.InstructionStep
	for _, set := range o.Instructions {
		steps = append(steps, set.Steps...)
	}
	return steps
}

// Controller ties the API client and the favorites store together so
// screens and commands only hold one dependency.
type Controller struct {
	api       spoonacular.API
	favorites *data.Favorites
	limit     int
}

func NewController(api spoonacular.API, favorites *data.Favorites, limit int) *Controller {
	if limit <= 0 {
		limit = spoonacular.DefaultSearchLimit
	}
	return &Controller{api: api, favorites: favorites, limit: limit}
}

// Search runs an ingredient search with the configured result limit.
func (c *Controller) Search(ingredients string) ([]data.Recipe, error) {
	return c.api.SearchByIngredients(ingredients, c.limit)
}

// Overview fetches details and instructions in sequence. A failed call is
// reported once; there is no retry.
func (c *Controller) Overview(recipeID int) (*RecipeOverview, error) {
	details, err := c.api.GetDetails(recipeID)
	if err != nil {
		return nil, err
	}
	instructions, err := c.api.GetInstructions(recipeID)
	if err != nil {
		return nil, err
	}
	return &RecipeOverview{Details: details, Instructions: instructions}, nil
}

// ToggleFavorite adds the recipe's fields to the store, or removes the entry
// if it is already there. Returns whether the recipe is a favorite afterwards.
func (c *Controller) ToggleFavorite(r data.Recipe) (bool, error) {
	if c.favorites.IsFavorite(r.ID) {
		return false, c.favorites.Remove(r.ID)
	}
	return true, c.favorites.Add(r.ID, r.Fields())
}

func (c *Controller) IsFavorite(id int) bool {
	return c.favorites.IsFavorite(id)
}

func (c *Controller) RemoveFavorite(id int) error {
	return c.favorites.Remove(id)
}

func (c *Controller) Favorites() []data.FavoriteEntry {
	return c.favorites.Entries()
}
