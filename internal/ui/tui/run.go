package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/intake/internal/form"
)

// Run starts the full-screen wizard on the terminal and blocks until the user
// quits. It returns the receipts of every request submitted in the session.
func Run(ctx context.Context, c *form.Controller, opts ...tea.ProgramOption) ([]form.Receipt, error) {
	m := NewModel(ctx, c)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Receipts, fm.Err
	}
	return fm.Receipts, nil
}
