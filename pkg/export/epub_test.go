package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rbarros/recipefinder/pkg/data"
	"github.com/rbarros/recipefinder/pkg/services"
)

type fakeLibrary struct {
	entries      []data.FavoriteEntry
	overviewFunc func(recipeID int) (*services.RecipeOverview, error)
}

func (f *fakeLibrary) Favorites() []data.FavoriteEntry {
	return f.entries
}

func (f *fakeLibrary) Overview(recipeID int) (*services.RecipeOverview, error) {
	return f.overviewFunc(recipeID)
}

func TestWriteCookbook(t *testing.T) {
	library := &fakeLibrary{
		entries: []data.FavoriteEntry{
			{ID: 42, Fields: map[string]any{
				"title":           "Chicken Fried Rice",
				"usedIngredients": []any{"chicken", "rice"},
			}},
			{ID: 99, Fields: map[string]any{"title": "Toast"}},
		},
		overviewFunc: func(recipeID int) (*services.RecipeOverview, error) {
			return &services.RecipeOverview{
				Details: &data.RecipeDetails{
					ID:             recipeID,
					ReadyInMinutes: 10,
					Servings:       2,
					Ingredients:    []string{"1 cup of something"},
				},
				Instructions: []data.InstructionSet{
					{Steps: []data.InstructionStep{{Number: 1, Text: "Cook it."}}},
				},
			}, nil
		},
	}

	outputPath := filepath.Join(t.TempDir(), "cookbook.epub")
	count, err := NewCookbookBuilder(library).WriteCookbook(outputPath)
	if err != nil {
		t.Fatalf("WriteCookbook() error = %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 exported recipes, got %d", count)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		t.Fatalf("Expected EPUB file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected EPUB file to be non-empty")
	}
}

func TestWriteCookbookNoInstructions(t *testing.T) {
	library := &fakeLibrary{
		entries: []data.FavoriteEntry{
			{ID: 7, Fields: map[string]any{"title": "Mystery Dish"}},
		},
		overviewFunc: func(recipeID int) (*services.RecipeOverview, error) {
			return &services.RecipeOverview{
				Details:      &data.RecipeDetails{ID: recipeID},
				Instructions: nil,
			}, nil
		},
	}

	outputPath := filepath.Join(t.TempDir(), "cookbook.epub")
	if _, err := NewCookbookBuilder(library).WriteCookbook(outputPath); err != nil {
		t.Fatalf("Recipes without instructions must still export: %v", err)
	}
}

func TestWriteCookbookEmptyFavorites(t *testing.T) {
	library := &fakeLibrary{}

	_, err := NewCookbookBuilder(library).WriteCookbook(filepath.Join(t.TempDir(), "cookbook.epub"))
	if err == nil {
		t.Error("Expected error when there are no favorites")
	}
}

func TestWriteCookbookFetchError(t *testing.T) {
	library := &fakeLibrary{
		entries: []data.FavoriteEntry{{ID: 1, Fields: map[string]any{"title": "x"}}},
		overviewFunc: func(recipeID int) (*services.RecipeOverview, error) {
			return nil, fmt.Errorf("api down")
		},
	}

	_, err := NewCookbookBuilder(library).WriteCookbook(filepath.Join(t.TempDir(), "cookbook.epub"))
	if err == nil {
		t.Error("Expected fetch error to abort the export")
	}
}
