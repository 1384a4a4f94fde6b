package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rbarros/recipefinder/pkg/app/components"
	"github.com/rbarros/recipefinder/pkg/app/styles"
	"github.com/rbarros/recipefinder/pkg/services"
)

type FavoritesScreen struct {
	controller *services.Controller
	list       *components.RecipeList
	width      int
	height     int
	err        error
}

func NewFavoritesScreen(controller *services.Controller) *FavoritesScreen {
	list := components.NewRecipeList()
	list.EmptyMessage = "No favorites yet. Star recipes from the search view."
	return &FavoritesScreen{
		controller: controller,
		list:       list,
	}
}

func (s *FavoritesScreen) Init() tea.Cmd {
	return s.loadFavorites
}

func (s *FavoritesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "r":
			return s, s.loadFavorites
		case "f", "d":
			if selected := s.list.Selected(); selected != nil {
				return s, s.removeFavorite(selected.Recipe.ID)
			}
		case "enter":
			if selected := s.list.Selected(); selected != nil {
				recipe := selected.Recipe
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: recipe}
				}
			}
		}

	case favoritesLoadedMsg:
		s.list.SetItems(msg.items)
		s.err = msg.err

	case favoriteRemovedMsg:
		if msg.err != nil {
			s.err = msg.err
		}
		return s, s.loadFavorites
	}

	return s, nil
}

func (s *FavoritesScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("⭐ Favorite Recipes")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	listView := s.list.View()

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: details • f/d: remove • r: refresh • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, listView, help)
}

// Messages
type favoritesLoadedMsg struct {
	items []components.RecipeListItem
	err   error
}

type favoriteRemovedMsg struct {
	err error
}

// Commands
func (s *FavoritesScreen) loadFavorites() tea.Msg {
	entries := s.controller.Favorites()
	items := make([]components.RecipeListItem, len(entries))
	for i, entry := range entries {
		items[i] = components.RecipeListItem{
			Recipe:   entry.Record(),
			Favorite: true,
		}
	}
	return favoritesLoadedMsg{items: items}
}

func (s *FavoritesScreen) removeFavorite(recipeID int) tea.Cmd {
	return func() tea.Msg {
		err := s.controller.RemoveFavorite(recipeID)
		return favoriteRemovedMsg{err: err}
	}
}
