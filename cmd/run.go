package cmd

import (
	"fmt"
	"os"

	"github.com/arin/please/internal/ai"
	"github.com/arin/please/internal/app"
	"github.com/arin/please/internal/clipboard"
	"github.com/arin/please/internal/config"
	"github.com/arin/please/internal/executor"
	"github.com/arin/please/internal/logging"
	"github.com/arin/please/internal/ui"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	log := logging.New(cmd.ErrOrStderr(), verbose)
	inv := newInvocation(args, platform)
	log.WithField("platform", inv.Platform).Debug("resolved invocation")

	a := &app.App{
		Generator: ai.NewClient(cfg, log),
		Indicator: ui.NewSpinner(os.Stderr),
		Clipboard: clipboard.System{},
		Runner:    executor.NewRunner(),
		Out:       cmd.OutOrStdout(),
		ErrOut:    cmd.ErrOrStderr(),
		Log:       log,
	}

	// Generation, copy and run failures are reported by the app and do not
	// change the exit status.
	a.Run(cmd.Context(), inv)
	return nil
}
