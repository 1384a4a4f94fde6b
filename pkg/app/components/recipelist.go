package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rbarros/recipefinder/pkg/app/styles"
	"github.com/rbarros/recipefinder/pkg/data"
)

type RecipeListItem struct {
	Recipe   data.Recipe
	Favorite bool
}

type RecipeList struct {
	Items         []RecipeListItem
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewRecipeList() *RecipeList {
	return &RecipeList{
		Items:         []RecipeListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  "No recipes",
	}
}

func (l *RecipeList) SetItems(items []RecipeListItem) {
	l.Items = items
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

func (l *RecipeList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *RecipeList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *RecipeList) Selected() *RecipeListItem {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

// SetFavorite updates the star on the item with the given recipe id.
func (l *RecipeList) SetFavorite(recipeID int, favorite bool) {
	for i := range l.Items {
		if l.Items[i].Recipe.ID == recipeID {
			l.Items[i].Favorite = favorite
		}
	}
}

func (l *RecipeList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(l.EmptyMessage)
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		star := styles.MutedStyle.Render("☆")
		if item.Favorite {
			star = styles.FavoriteStyle.Render("★")
		}
		title := lipgloss.JoinHorizontal(
			lipgloss.Top,
			styles.TitleStyle.Render(item.Recipe.Title),
			" ",
			star,
		)

		lines := []string{title}
		if len(item.Recipe.UsedIngredients) > 0 {
			lines = append(lines,
				styles.UsedStyle.Render("✓ Available: ")+
					styles.TextStyle.Render(strings.Join(item.Recipe.UsedIngredients, ", ")),
			)
		}
		if len(item.Recipe.MissedIngredients) > 0 {
			lines = append(lines,
				styles.MissingStyle.Render("✗ Missing: ")+
					styles.TextStyle.Render(strings.Join(item.Recipe.MissedIngredients, ", ")),
			)
		}
		lines = append(lines, styles.MutedStyle.Render(fmt.Sprintf("ID: %d • %s", item.Recipe.ID, item.Recipe.DisplayURL())))

		cardContent := lipgloss.JoinVertical(lipgloss.Left, lines...)
		card := cardStyle.Width(l.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
