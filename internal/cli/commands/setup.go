package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapbasic/internal/cli/config"
	"github.com/leapstack-labs/leapbasic/internal/cli/output"
)

// ErrReported marks an error the command has already shown to the user.
var ErrReported = errors.New("error already reported")

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Reporter *output.Reporter
}

// NewCommandContext builds the dependencies for cmd from the loaded
// configuration and the logger stored in its context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	color := output.ResolveColor(cfg.Color, cmd.ErrOrStderr())

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Reporter: output.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), color),
	}
}

// getConfig returns the current configuration, or the defaults when none
// has been loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Defaults()
}
