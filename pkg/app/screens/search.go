package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rbarros/recipefinder/pkg/app/components"
	"github.com/rbarros/recipefinder/pkg/app/styles"
	"github.com/rbarros/recipefinder/pkg/data"
	"github.com/rbarros/recipefinder/pkg/services"
)

type SearchScreen struct {
	controller *services.Controller
	input      textinput.Model
	results    *components.RecipeList
	searching  bool
	width      int
	height     int
	err        error
}

func NewSearchScreen(controller *services.Controller) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "e.g., chicken, rice, tomatoes"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50

	results := components.NewRecipeList()
	results.EmptyMessage = "No recipes found"

	return &SearchScreen{
		controller: controller,
		input:      ti,
		results:    results,
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

// InputFocused reports whether keystrokes currently go to the search box.
func (s *SearchScreen) InputFocused() bool {
	return s.input.Focused()
}

// RefreshFavorites re-reads star state for the visible results, for toggles
// that happened on another screen.
func (s *SearchScreen) RefreshFavorites() {
	for i := range s.results.Items {
		s.results.Items[i].Favorite = s.controller.IsFavorite(s.results.Items[i].Recipe.ID)
	}
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.results.Width = msg.Width - 4
		s.results.Height = msg.Height - 12

	case tea.KeyMsg:
		// If searching, don't process keys
		if s.searching {
			return s, nil
		}

		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				query := s.input.Value()
				if query != "" {
					s.searching = true
					return s, s.performSearch(query)
				}
			} else if selected := s.results.Selected(); selected != nil {
				recipe := selected.Recipe
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: recipe}
				}
			}

		case "esc":
			// Switch focus between input and results
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}

		case "up", "k":
			if !s.input.Focused() {
				s.results.Prev()
			}

		case "down", "j":
			if !s.input.Focused() {
				s.results.Next()
			}

		case "f":
			if selected := s.results.Selected(); selected != nil && !s.input.Focused() {
				return s, s.toggleFavorite(selected.Recipe)
			}
		}

	case searchResultMsg:
		s.searching = false
		s.err = msg.err
		items := make([]components.RecipeListItem, len(msg.results))
		for i, recipe := range msg.results {
			items[i] = components.RecipeListItem{
				Recipe:   recipe,
				Favorite: s.controller.IsFavorite(recipe.ID),
			}
		}
		s.results.SetItems(items)
		if len(items) > 0 {
			s.input.Blur()
		}

	case favoriteToggledMsg:
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.results.SetFavorite(msg.recipeID, msg.favorite)
		}
	}

	// Update text input
	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("🍳 Recipe Finder")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	var resultsView string
	if s.searching {
		resultsView = styles.StatusLoading.Render("Searching...")
	} else if len(s.results.Items) > 0 {
		resultsView = styles.SubtitleStyle.Render(fmt.Sprintf("Found %d recipes:", len(s.results.Items)))
		resultsView += "\n\n" + s.results.View()
	} else if s.input.Value() != "" {
		resultsView = styles.MutedStyle.Render("No recipes found")
	}

	help := styles.HelpStyle.Render(
		"enter: search/details • f: favorite • esc: switch focus • ↑/k ↓/j: navigate • tab: switch view • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n\n%s",
		header,
		inputView,
		errorMsg,
		resultsView,
		help,
	)
}

// Messages
type searchResultMsg struct {
	results []data.Recipe
	err     error
}

type favoriteToggledMsg struct {
	recipeID int
	favorite bool
	err      error
}

// Commands
func (s *SearchScreen) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := s.controller.Search(query)
		return searchResultMsg{results: results, err: err}
	}
}

func (s *SearchScreen) toggleFavorite(recipe data.Recipe) tea.Cmd {
	return func() tea.Msg {
		favorite, err := s.controller.ToggleFavorite(recipe)
		return favoriteToggledMsg{recipeID: recipe.ID, favorite: favorite, err: err}
	}
}
