package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-escala/explorer"
	"github.com/RyanBlaney/sonido-escala/logging"
	"github.com/RyanBlaney/sonido-escala/render"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render whenever the state file changes",
	Long: "Watches --state-file and prints the resolved scale every time another " +
		"process (an editor, explore, a web front end) rewrites it.",
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if settings.StateFile == "" {
		return errors.New("watch needs --state-file")
	}

	state, err := explorer.LoadStateFile(settings.StateFile)
	if err != nil {
		return err
	}
	r, err := render.New(settings.Format)
	if err != nil {
		return err
	}

	logger := commandLogger(cmd)
	ex := explorer.New(state,
		explorer.WithResolveOptions(settings.ResolveOptions()...),
		explorer.WithLogger(logger),
	)
	out := cmd.OutOrStdout()
	ex.OnChange(func(explorer.State) {
		if err := draw(out, ex, r); err != nil {
			logger.Error(err, "render failed")
		}
	})
	if err := draw(out, ex, r); err != nil {
		return err
	}

	w, err := explorer.NewWatcher(settings.StateFile)
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchLoop(ctx, w.Changes, ex)
}

func watchLoop(ctx context.Context, changes <-chan explorer.State, ex *explorer.Explorer) error {
	logging.Info("watching state file", logging.Fields{"path": settings.StateFile})
	for {
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-changes:
			if !ok {
				return nil
			}
			ex.Restore(s)
		}
	}
}
