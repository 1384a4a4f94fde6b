package spoonacular

import "github.com/rbarros/recipefinder/pkg/data"

// Wire shapes for the three endpoints, converted to pkg/data types at the
// client boundary. Only documented fields are decoded; everything else in
// the responses is dropped.

type Ingredient struct {
	Name string `json:"name"`
}

type SearchResult struct {
	ID                int          `json:"id"`
	Title             string       `json:"title"`
	UsedIngredients   []Ingredient `json:"usedIngredients"`
	MissedIngredients []Ingredient `json:"missedIngredients"`
}

// ToRecipe converts with the documented defaults: zero id stays 0, an empty
// title becomes "No Title" and absent ingredient arrays become empty lists.
func (s *SearchResult) ToRecipe() *data.Recipe {
	title := s.Title
	if title == "" {
		title = "No Title"
	}
	used := make([]string, len(s.UsedIngredients))
	for i, ing := range s.UsedIngredients {
		used[i] = ing.Name
	}
	missed := make([]string, len(s.MissedIngredients))
	for i, ing := range s.MissedIngredients {
		missed[i] = ing.Name
	}
	return &data.Recipe{
		ID:                s.ID,
		Title:             title,
		UsedIngredients:   used,
		MissedIngredients: missed,
	}
}

type Details struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	ReadyInMinutes      int    `json:"readyInMinutes"`
	Servings            int    `json:"servings"`
	SourceURL           string `json:"sourceUrl"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
}

func (d *Details) ToDetails() *data.RecipeDetails {
	ingredients := make([]string, len(d.ExtendedIngredients))
	for i, ing := range d.ExtendedIngredients {
		ingredients[i] = ing.Original
	}
	return &data.RecipeDetails{
		ID:             d.ID,
		Title:          d.Title,
		ReadyInMinutes: d.ReadyInMinutes,
		Servings:       d.Servings,
		SourceURL:      d.SourceURL,
		Ingredients:    ingredients,
	}
}

type Instructions struct {
	Name  string `json:"name"`
	Steps []struct {
		Number int    `json:"number"`
		Step   string `json:"step"`
	} `json:"steps"`
}

func (n *Instructions) ToInstructionSet() *data.InstructionSet {
	steps := make([]data.InstructionStep, len(n.Steps))
	for i, step := range n.Steps {
		steps[i] = data.InstructionStep{Number: step.Number, Text: step.Step}
	}
	return &data.InstructionSet{Name: n.Name, Steps: steps}
}
