package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapbasic/internal/cli/output"
)

// dotCommands are handled by the REPL itself and never reach the parser.
var dotCommands = []string{".help", ".vars", ".lines", ".quit", ".exit"}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Start an interactive BASIC session.

Each line is parsed and executed as soon as it is entered. Lines that start
with a number are stored for later listing. Type .help for REPL commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunREPL(cmd)
		},
	}
}

// RunREPL runs the interactive loop on the command's terminal.
func RunREPL(cmd *cobra.Command) error {
	cctx := NewCommandContext(cmd)
	session := NewSession(cctx.Reporter, cctx.Logger)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cctx.Cfg.Prompt,
		HistoryFile:     cctx.Cfg.HistoryFile,
		AutoComplete:    newCompleter(session.Interp.Commands.Names()),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "LeapBASIC interactive session")
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	cctx.Logger.Info("repl started", "session", session.ID)

	r := &repl{session: session, out: out, reporter: cctx.Reporter}
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if quit := r.handle(line); quit {
			break
		}
	}
	return nil
}

type repl struct {
	session  *Session
	out      io.Writer
	reporter *output.Reporter
}

// handle processes one line read from the terminal and reports whether the
// user asked to leave.
func (r *repl) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ".") {
		return r.handleDotCommand(trimmed)
	}
	r.session.Exec(line + "\n")
	return false
}

func (r *repl) handleDotCommand(line string) bool {
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(r.out, r.session.Interp.Commands.Names())
	case ".vars":
		output.RenderVars(r.out, r.session.Interp.Env)
	case ".lines":
		output.RenderLines(r.out, r.session.Interp.Lines)
	default:
		r.reporter.Notice("Unknown command: %s (type .help for commands)", command)
	}
	return false
}

func printREPLHelp(w io.Writer, commands []string) {
	help := `
Statements:
  <n> <text>       Store text as program line n
  <name> = <expr>  Assign a variable
  if <expr> then   Run the rest of the line when expr is non-zero
  <command> <args> Invoke a command

Commands: ` + strings.Join(commands, ", ") + `

REPL:
  .help            Show this help message
  .vars            Show all variables
  .lines           Show stored program lines
  .quit / .exit    Exit the REPL
`
	_, _ = fmt.Fprintln(w, help)
}

// newCompleter completes command names and dot-commands.
func newCompleter(commands []string) *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands)+len(dotCommands))
	for _, name := range commands {
		items = append(items, readline.PcItem(name))
	}
	for _, name := range dotCommands {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}
