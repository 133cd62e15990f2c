package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for the model.
// The program uses the alternate screen buffer and mouse motion events.
func NewProgram(m Model, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(m, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits.
func Run(m Model) error {
	defer m.Window.Close()

	if _, err := NewProgram(m).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
