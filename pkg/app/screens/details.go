package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rbarros/recipefinder/pkg/app/styles"
	"github.com/rbarros/recipefinder/pkg/data"
	"github.com/rbarros/recipefinder/pkg/services"
)

type DetailsScreen struct {
	controller *services.Controller
	recipe     data.Recipe
	returnTo   string
	overview   *services.RecipeOverview
	loading    bool
	width      int
	height     int
	err        error
}

func NewDetailsScreen(controller *services.Controller, recipe data.Recipe, returnTo string) *DetailsScreen {
	return &DetailsScreen{
		controller: controller,
		recipe:     recipe,
		returnTo:   returnTo,
		loading:    true,
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadOverview
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			s.loading = true
			return s, s.loadOverview
		case "f":
			return s, s.toggleFavorite
		case "esc", "backspace":
			returnTo := s.returnTo
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: returnTo, Data: nil}
			}
		}

	case overviewLoadedMsg:
		s.loading = false
		s.overview = msg.overview
		s.err = msg.err

	case favoriteToggledMsg:
		if msg.err != nil {
			s.err = msg.err
		}
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	star := "☆"
	if s.controller.IsFavorite(s.recipe.ID) {
		star = styles.FavoriteStyle.Render("★")
	}
	header := styles.TitleStyle.Render(fmt.Sprintf("🍽  %s %s", s.recipe.Title, star))

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	var body string
	if s.loading {
		body = styles.StatusLoading.Render("Loading recipe...")
	} else if s.overview != nil {
		body = fmt.Sprintf("%s\n%s\n%s",
			s.renderInfo(),
			s.renderIngredients(),
			s.renderInstructions(),
		)
	}

	help := styles.HelpStyle.Render(
		"f: toggle favorite • r: refresh • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, body, help)
}

func (s *DetailsScreen) renderInfo() string {
	details := s.overview.Details
	info := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TextStyle.Render(fmt.Sprintf("🕒 %d minutes   👥 Serves %d", details.ReadyInMinutes, details.Servings)),
		styles.MutedStyle.Render(s.recipe.DisplayURL()),
	)
	return styles.CardStyle.Width(s.width - 4).Render(info)
}

func (s *DetailsScreen) renderIngredients() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Ingredients"))
	b.WriteString("\n\n")
	if len(s.overview.Details.Ingredients) == 0 {
		b.WriteString(styles.MutedStyle.Render("No ingredients listed"))
		b.WriteString("\n")
		return b.String()
	}
	for _, line := range s.overview.Details.Ingredients {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("• %s", line)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *DetailsScreen) renderInstructions() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Instructions"))
	b.WriteString("\n\n")

	steps := s.overview.Steps()
	if len(steps) == 0 {
		b.WriteString(styles.MutedStyle.Render("No instructions available"))
		b.WriteString("\n")
		return b.String()
	}
	for i, step := range steps {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("%d. %s", i+1, step.Text)))
		b.WriteString("\n")
	}
	return b.String()
}

// Messages
type overviewLoadedMsg struct {
	overview *services.RecipeOverview
	err      error
}

// Commands
func (s *DetailsScreen) loadOverview() tea.Msg {
	overview, err := s.controller.Overview(s.recipe.ID)
	return overviewLoadedMsg{overview: overview, err: err}
}

func (s *DetailsScreen) toggleFavorite() tea.Msg {
	favorite, err := s.controller.ToggleFavorite(s.recipe)
	return favoriteToggledMsg{recipeID: s.recipe.ID, favorite: favorite, err: err}
}
