package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/rbarros/recipefinder/pkg/data"
	"github.com/rbarros/recipefinder/pkg/services"
)

// Library is the slice of the controller the exporter needs.
type Library interface {
	Favorites() []data.FavoriteEntry
	Overview(recipeID int) (*services.RecipeOverview, error)
}

// CookbookBuilder compiles the favorites collection into an EPUB, one
// chapter per recipe, fetching details and instructions live.
type CookbookBuilder struct {
	library Library
}

func NewCookbookBuilder(library Library) *CookbookBuilder {
	return &CookbookBuilder{library: library}
}

// WriteCookbook writes the EPUB to outputPath and returns how many recipes
// went in.
func (b *CookbookBuilder) WriteCookbook(outputPath string) (int, error) {
	entries := b.library.Favorites()
	if len(entries) == 0 {
		return 0, fmt.Errorf("no favorites to export")
	}

	e, err := epub.NewEpub("My Favorite Recipes")
	if err != nil {
		return 0, fmt.Errorf("failed to create EPUB: %w", err)
	}
	e.SetAuthor("recipefinder")
	e.SetLang("en")

	for _, entry := range entries {
		record := entry.Record()
		overview, err := b.library.Overview(entry.ID)
		if err != nil {
			return 0, fmt.Errorf("failed to fetch recipe %d: %w", entry.ID, err)
		}
		if _, err := e.AddSection(recipeHTML(record, overview), record.Title, "", ""); err != nil {
			return 0, fmt.Errorf("failed to add recipe %d: %w", entry.ID, err)
		}
	}

	if err := e.Write(outputPath); err != nil {
		return 0, fmt.Errorf("failed to write EPUB: %w", err)
	}
	return len(entries), nil
}

func recipeHTML(record data.Recipe, overview *services.RecipeOverview) string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(record.Title)))
	content.WriteString(fmt.Sprintf("<p>Ready in %d minutes &#8226; serves %d</p>\n",
		overview.Details.ReadyInMinutes, overview.Details.Servings))

	content.WriteString("<h2>Ingredients</h2>\n<ul>\n")
	for _, line := range overview.Details.Ingredients {
		content.WriteString(fmt.Sprintf("<li>%s</li>\n", html.EscapeString(line)))
	}
	content.WriteString("</ul>\n")

	content.WriteString("<h2>Instructions</h2>\n")
	steps := overview.Steps()
	if len(steps) == 0 {
		content.WriteString("<p>No instructions available.</p>\n")
	} else {
		content.WriteString("<ol>\n")
		for _, step := range steps {
			content.WriteString(fmt.Sprintf("<li>%s</li>\n", html.EscapeString(step.Text)))
		}
		content.WriteString("</ol>\n")
	}

	content.WriteString(fmt.Sprintf(`<p><a href="%s">%s</a></p>%s`,
		record.DisplayURL(), record.DisplayURL(), "\n"))
	return content.String()
}
