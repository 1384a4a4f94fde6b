package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rbarros/recipefinder/pkg/app/screens"
	"github.com/rbarros/recipefinder/pkg/services"
)

type App struct {
	controller *services.Controller
}

func NewApp(controller *services.Controller) *App {
	return &App{controller: controller}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
