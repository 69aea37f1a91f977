package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"pywalfox/internal/logging"
	"pywalfox/internal/ui"
)

// RunCmd starts the settings surface in the current terminal
type RunCmd struct {
	RuntimeFlags `embed:""`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	r.apply(cli.settings)

	keys, err := cli.keyBindings(ui.GetValidKeyNames())
	if err != nil {
		return err
	}

	rt, err := cli.Container.NewRuntime(r.runtimeOptions())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting pywalfox TUI")

	err = rt.Run(ctx, func(ctx context.Context) error {
		p := tea.NewProgram(
			ui.NewModel(rt.Bus, rt.Bus.Events(), r.modelOptions(keys)),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)
		if _, err := p.Run(); err != nil {
			// Cancelled by a signal or by the background stopping
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			logging.Logger.Error("TUI program error", "error", err)
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logging.Logger.Info("pywalfox TUI exited")
	return nil
}
