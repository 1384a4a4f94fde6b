package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rbarros/recipefinder/pkg/data"
)

type mockAPI struct {
	searchFunc       func(ingredients string, limit int) ([]data.Recipe, error)
	detailsFunc      func(recipeID int) (*data.RecipeDetails, error)
	instructionsFunc func(recipeID int) ([]data.InstructionSet, error)
}

func (m *mockAPI) SearchByIngredients(ingredients string, limit int) ([]data.Recipe, error) {
	return m.searchFunc(ingredients, limit)
}

func (m *mockAPI) GetDetails(recipeID int) (*data.RecipeDetails, error) {
	return m.detailsFunc(recipeID)
}

func (m *mockAPI) GetInstructions(recipeID int) ([]data.InstructionSet, error) {
	return m.instructionsFunc(recipeID)
}

func newTestController(t *testing.T, api *mockAPI, limit int) *Controller {
	t.Helper()
	favorites := data.OpenFavoritesFile(filepath.Join(t.TempDir(), "favorites.json"))
	return NewController(api, favorites, limit)
}

func TestControllerSearch(t *testing.T) {
	var gotLimit int
	api := &mockAPI{
		searchFunc: func(ingredients string, limit int) ([]data.Recipe, error) {
			gotLimit = limit
			if ingredients == "" {
				return nil, fmt.Errorf("empty query")
			}
			return []data.Recipe{{ID: 1, Title: "Test Recipe"}}, nil
		},
	}
	controller := newTestController(t, api, 10)

	t.Run("successful search", func(t *testing.T) {
		results, err := controller.Search("chicken")
		if err != nil {
			t.Errorf("Search() error = %v, want nil", err)
		}
		if len(results) != 1 {
			t.Errorf("Expected 1 result, got %d", len(results))
		}
		if gotLimit != 10 {
			t.Errorf("Expected configured limit 10, got %d", gotLimit)
		}
	})

	t.Run("search error", func(t *testing.T) {
		_, err := controller.Search("")
		if err == nil {
			t.Error("Expected error for empty query")
		}
	})
}

func TestControllerOverview(t *testing.T) {
	api := &mockAPI{
		detailsFunc: func(recipeID int) (*data.RecipeDetails, error) {
			return &data.RecipeDetails{ID: recipeID, ReadyInMinutes: 30, Servings: 2}, nil
		},
		instructionsFunc: func(recipeID int) ([]data.InstructionSet, error) {
			return []data.InstructionSet{
				{Steps: []data.InstructionStep{{Number: 1, Text: "Chop."}}},
				{Steps: []data.InstructionStep{{Number: 1, Text: "Serve."}}},
			}, nil
		},
	}
	controller := newTestController(t, api, 0)

	overview, err := controller.Overview(42)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if overview.Details.ReadyInMinutes != 30 {
		t.Errorf("Expected 30 minutes, got %d", overview.Details.ReadyInMinutes)
	}

	steps := overview.Steps()
	if len(steps) != 2 {
		t.Fatalf("Expected 2 flattened steps, got %d", len(steps))
	}
	if steps[1].Text != "Serve." {
		t.Errorf("Expected second step 'Serve.', got '%s'", steps[1].Text)
	}
}

func TestControllerOverviewNoInstructions(t *testing.T) {
	api := &mockAPI{
		detailsFunc: func(recipeID int) (*data.RecipeDetails, error) {
			return &data.RecipeDetails{ID: recipeID}, nil
		},
		instructionsFunc: func(recipeID int) ([]data.InstructionSet, error) {
			return []data.InstructionSet{}, nil
		},
	}
	controller := newTestController(t, api, 0)

	overview, err := controller.Overview(7)
	if err != nil {
		t.Fatalf("Overview() error = %v, empty instructions must not be an error", err)
	}

	if len(overview.Steps()) != 0 {
		t.Errorf("Expected no steps, got %d", len(overview.Steps()))
	}
}

func TestControllerOverviewDetailsError(t *testing.T) {
	api := &mockAPI{
		detailsFunc: func(recipeID int) (*data.RecipeDetails, error) {
			return nil, fmt.Errorf("boom")
		},
	}
	controller := newTestController(t, api, 0)

	if _, err := controller.Overview(1); err == nil {
		t.Error("Expected details error to propagate")
	}
}

func TestControllerToggleFavorite(t *testing.T) {
	controller := newTestController(t, &mockAPI{}, 0)
	recipe := data.Recipe{ID: 42, Title: "Chicken Fried Rice", UsedIngredients: []string{"rice"}}

	favorite, err := controller.ToggleFavorite(recipe)
	if err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}
	if !favorite {
		t.Error("Expected first toggle to add the favorite")
	}
	if !controller.IsFavorite(42) {
		t.Error("Expected 42 to be a favorite")
	}

	favorite, err = controller.ToggleFavorite(recipe)
	if err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}
	if favorite {
		t.Error("Expected second toggle to remove the favorite")
	}
	if controller.IsFavorite(42) {
		t.Error("Expected 42 not to be a favorite anymore")
	}
}

func TestControllerToggleWhileReading(t *testing.T) {
	// Toggles run as command goroutines while View reads IsFavorite on the
	// event loop; must not trip the race detector.
	controller := newTestController(t, &mockAPI{}, 0)
	recipe := data.Recipe{ID: 42, Title: "Chicken Fried Rice"}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			if _, err := controller.ToggleFavorite(recipe); err != nil {
				t.Errorf("ToggleFavorite() error = %v", err)
				return
			}
		}
	}()

	for i := 0; i < 200; i++ {
		controller.IsFavorite(recipe.ID)
	}
	<-done
}

func TestControllerFavoritesListing(t *testing.T) {
	controller := newTestController(t, &mockAPI{}, 0)

	if _, err := controller.ToggleFavorite(data.Recipe{ID: 2, Title: "B"}); err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}
	if _, err := controller.ToggleFavorite(data.Recipe{ID: 1, Title: "A"}); err != nil {
		t.Fatalf("ToggleFavorite() error = %v", err)
	}

	entries := controller.Favorites()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 favorites, got %d", len(entries))
	}
	if entries[0].ID != 1 || entries[1].ID != 2 {
		t.Errorf("Expected sorted ids [1 2], got [%d %d]", entries[0].ID, entries[1].ID)
	}
}
