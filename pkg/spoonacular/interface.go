package spoonacular

import "github.com/rbarros/recipefinder/pkg/data"

type API interface {
	SearchByIngredients(ingredients string, limit int) ([]data.Recipe, error)
	GetDetails(recipeID int) (*data.RecipeDetails, error)
	GetInstructions(recipeID int) ([]data.InstructionSet, error)
}
