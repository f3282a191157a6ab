package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pldl/internal/shared"
	"github.com/desertthunder/pldl/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive download screen.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.backend == nil {
		return fmt.Errorf("%w: backend client not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, closeLog, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer closeLog()

	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	delay, _ := r.config.HideDelay()
	model := ui.NewModel(ctx, ui.Options{
		Backend:   r.backend,
		HideDelay: delay,
		Logger:    r.logger,
	})
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
