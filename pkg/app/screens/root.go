package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rbarros/recipefinder/pkg/app/styles"
	"github.com/rbarros/recipefinder/pkg/data"
	"github.com/rbarros/recipefinder/pkg/services"
)

type screenType int

const (
	searchView screenType = iota
	favoritesView
	detailsView
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type RootScreen struct {
	controller *services.Controller

	currentView screenType
	search      *SearchScreen
	favorites   *FavoritesScreen
	details     *DetailsScreen

	// where esc from the details view returns to
	detailsReturn string

	width  int
	height int
}

func NewRootScreen(controller *services.Controller) *RootScreen {
	return &RootScreen{
		controller:  controller,
		currentView: searchView,
		search:      NewSearchScreen(controller),
		favorites:   NewFavoritesScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.search.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			// The search input needs the letter; quit from everywhere else.
			if r.currentView != searchView || !r.search.InputFocused() {
				return r, tea.Quit
			}
		case "tab":
			if r.currentView == detailsView {
				// Can't tab away from details, use esc
				break
			}
			r.currentView = (r.currentView + 1) % 2
			if r.currentView == favoritesView {
				cmd = r.favorites.Init()
			} else {
				cmd = r.search.Init()
			}
			return r, cmd
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "search":
			r.currentView = searchView
			// Stars may have been toggled on the details screen
			r.search.RefreshFavorites()
			cmd = r.search.Init()
		case "favorites":
			r.currentView = favoritesView
			cmd = r.favorites.Init()
		case "details":
			if recipe, ok := msg.Data.(data.Recipe); ok {
				r.detailsReturn = "search"
				if r.currentView == favoritesView {
					r.detailsReturn = "favorites"
				}
				r.details = NewDetailsScreen(r.controller, recipe, r.detailsReturn)
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case searchView:
		newModel, newCmd := r.search.Update(msg)
		r.search = newModel.(*SearchScreen)
		return r, newCmd
	case favoritesView:
		newModel, newCmd := r.favorites.Update(msg)
		r.favorites = newModel.(*FavoritesScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case searchView:
		content = r.search.View()
	case favoritesView:
		content = r.favorites.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	if r.currentView == detailsView {
		// Don't show tabs in details view
		return ""
	}

	searchTab := "Search"
	favoritesTab := "Favorites"

	if r.currentView == searchView {
		searchTab = styles.ActiveTabStyle.Render(searchTab)
		favoritesTab = styles.InactiveTabStyle.Render(favoritesTab)
	} else {
		searchTab = styles.InactiveTabStyle.Render(searchTab)
		favoritesTab = styles.ActiveTabStyle.Render(favoritesTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, searchTab, favoritesTab)
}
