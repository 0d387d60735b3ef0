package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/santa-exe/internal/engine"
	"github.com/DaanHessen/santa-exe/internal/registry"
	"github.com/DaanHessen/santa-exe/internal/text"
)

// Deps is everything the TUI needs. The controller must already hold the
// loaded progress.
type Deps struct {
	Controller *engine.Controller
	Registry   *registry.Registry
	Renderer   *text.Renderer
	Seed       engine.Seed
	Theme      string
	Logger     *slog.Logger
}

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, deps Deps) error {
	m := newModel(ctx, deps)
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
