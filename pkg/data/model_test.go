package data

import "testing"

func TestRecipeDisplayURL(t *testing.T) {
	recipe := Recipe{
		ID:              5,
		Title:           "Hot Dog Salad",
		UsedIngredients: []string{"hot dog"},
	}

	want := "https://spoonacular.com/recipes/hot-dog-salad-5"
	if got := recipe.DisplayURL(); got != want {
		t.Errorf("Expected URL '%s', got '%s'", want, got)
	}
}

func TestRecipeFields(t *testing.T) {
	recipe := Recipe{
		ID:                7,
		Title:             "Omelette",
		UsedIngredients:   []string{"eggs"},
		MissedIngredients: []string{"chives"},
	}

	fields := recipe.Fields()

	if fields["id"] != 7 {
		t.Errorf("Expected id 7, got %v", fields["id"])
	}

	if fields["title"] != "Omelette" {
		t.Errorf("Expected title 'Omelette', got %v", fields["title"])
	}

	if fields["url"] != "https://spoonacular.com/recipes/omelette-7" {
		t.Errorf("Unexpected url %v", fields["url"])
	}
}

func TestFavoriteEntryRecord(t *testing.T) {
	// Fields come back from JSON as []any, not []string.
	entry := FavoriteEntry{
		ID: 42,
		Fields: map[string]any{
			"title":             "Chicken Fried Rice",
			"usedIngredients":   []any{"chicken", "rice"},
			"missedIngredients": []any{"soy sauce"},
		},
	}

	record := entry.Record()

	if record.ID != 42 {
		t.Errorf("Expected ID 42, got %d", record.ID)
	}

	if record.Title != "Chicken Fried Rice" {
		t.Errorf("Expected title 'Chicken Fried Rice', got '%s'", record.Title)
	}

	if len(record.UsedIngredients) != 2 || record.UsedIngredients[0] != "chicken" {
		t.Errorf("Unexpected used ingredients %v", record.UsedIngredients)
	}

	if len(record.MissedIngredients) != 1 || record.MissedIngredients[0] != "soy sauce" {
		t.Errorf("Unexpected missed ingredients %v", record.MissedIngredients)
	}
}

func TestFavoriteEntryRecordDefaults(t *testing.T) {
	entry := FavoriteEntry{ID: 3, Fields: map[string]any{}}

	record := entry.Record()

	if record.Title != "No Title" {
		t.Errorf("Expected title 'No Title', got '%s'", record.Title)
	}

	if len(record.UsedIngredients) != 0 {
		t.Errorf("Expected no used ingredients, got %v", record.UsedIngredients)
	}
}

func TestFavoriteEntryRecordStringSlices(t *testing.T) {
	// Freshly stored fields still hold []string.
	entry := FavoriteEntry{
		ID: 9,
		Fields: map[string]any{
			"title":           "Toast",
			"usedIngredients": []string{"bread"},
		},
	}

	record := entry.Record()

	if len(record.UsedIngredients) != 1 || record.UsedIngredients[0] != "bread" {
		t.Errorf("Unexpected used ingredients %v", record.UsedIngredients)
	}
}
