package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolists/internal/store"
)

// Run starts the board on the alternate screen and blocks until quit.
func Run(s *store.Store, logger *log.Logger) error {
	p := tea.NewProgram(New(s, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
