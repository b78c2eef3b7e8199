// Package tui implements the interactive pharmacy console: a tabbed,
// list-driven Bubble Tea program where every mutation is an explicit state
// transition and the view is a pure projection of the model.
package tui

import (
	"os"
	"strings"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the console over the given store and blocks until quit.
func Run(db *store.DB) error {
	applyColorProfilePreference()
	applyThemePreference()

	// Opt-in debug log; bubbletea owns the terminal, so stderr is useless.
	if path := strings.TrimSpace(os.Getenv("PULSERX_TUI_DEBUG_LOG")); path != "" {
		f, err := tea.LogToFile(path, "pulserx")
		if err == nil {
			defer f.Close()
		}
	}

	m := newAppModel(db, store.UIStatePath())
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
