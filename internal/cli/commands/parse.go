package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapbasic/pkg/ast"
	"github.com/leapstack-labs/leapbasic/pkg/parser"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line>",
		Short: "Show the parsed form of a line",
		Long: `Parse a single line and print its statement kind and canonical form.

Nothing is executed. Quote the line so the shell keeps its spacing.`,
		Example:      `  leapbasic parse "if a<10 then print a 2*b"`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			line := args[0]
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}

			stmt, err := parser.Parse(line)
			if err != nil {
				NewCommandContext(cmd).Reporter.Report(err)
				return ErrReported
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", ast.Kind(stmt), stmt)
			return nil
		},
	}
}
