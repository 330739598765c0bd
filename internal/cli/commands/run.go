package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Watch bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a program file",
		Long: `Execute a file line by line in a single session.

Every line is parsed and executed in order. A failing line is reported and
execution continues with the next one. Without a file, or with "-", the
program is read from standard input.

With --watch the file is executed again, with fresh state, every time it
changes.`,
		Example: `  leapbasic run prog.bas
  cat prog.bas | leapbasic run
  leapbasic run --watch prog.bas`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 && args[0] != "-" {
				path = args[0]
			}
			if opts.Watch && path == "" {
				return errors.New("--watch requires a file argument")
			}
			return runProgram(cmd, path, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the file whenever it changes")

	return cmd
}

func runProgram(cmd *cobra.Command, path string, opts *RunOptions) error {
	cctx := NewCommandContext(cmd)

	if !opts.Watch {
		_, err := runOnce(cmd.Context(), cctx, cmd.InOrStdin(), path)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if _, err := runOnce(ctx, cctx, nil, path); err != nil {
		return err
	}
	cctx.Reporter.Notice("Watching %s for changes (Ctrl+C to stop)", path)

	return watchFile(ctx, path, cctx.Logger, func() {
		cctx.Reporter.Notice("Change detected, re-running %s", path)
		if _, err := runOnce(ctx, cctx, nil, path); err != nil {
			cctx.Reporter.Report(err)
		}
	})
}

// runOnce executes path, or stdin when path is empty, in a fresh session.
func runOnce(ctx context.Context, cctx *CommandContext, stdin io.Reader, path string) (Stats, error) {
	in := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to open program: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	session := NewSession(cctx.Reporter, cctx.Logger)
	stats, err := session.RunLines(ctx, in)
	if err != nil && !errors.Is(err, context.Canceled) {
		return stats, err
	}

	cctx.Logger.Info("program finished",
		"session", session.ID,
		"file", path,
		"lines", stats.Lines,
		"failures", stats.Failures)
	return stats, nil
}

// RunStream executes r line by line in one session. It backs the root
// command when standard input is not a terminal.
func RunStream(cmd *cobra.Command, r io.Reader) error {
	cctx := NewCommandContext(cmd)
	_, err := NewSession(cctx.Reporter, cctx.Logger).RunLines(cmd.Context(), r)
	return err
}
