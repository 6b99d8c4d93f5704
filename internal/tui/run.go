package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/classware/gradeflow/internal/prefs"
)

// Config carries everything the viewer needs. The preference values are
// read once before launch and passed in; the core packages never touch the
// store.
type Config struct {
	// Source is a file path or http(s) URL for the gradebook CSV.
	Source string
	// Store persists preference toggles; nil disables persistence.
	Store *prefs.Store
	// Prefs are the preferences loaded at startup.
	Prefs prefs.Preferences
}

// Run launches the viewer and blocks until it exits. Canceling ctx tears
// the program down; an in-flight load is discarded with it.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer exited with error: %w", err)
	}
	return nil
}
