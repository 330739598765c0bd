// Package interp evaluates expressions and executes statements produced by
// the parser.
//
// The interpreter state is three stores: the variable environment, the
// stored program lines and the command registry. Interpreter bundles them
// for the lifetime of a session. It is not safe for concurrent use.
package interp

import (
	"io"
	"log/slog"

	"github.com/leapstack-labs/leapbasic/pkg/ast"
	"github.com/leapstack-labs/leapbasic/pkg/parser"
)

// Interpreter holds the mutable state of one session.
type Interpreter struct {
	Env      Env
	Lines    Lines
	Commands *Registry

	logger *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// WithCommand registers an additional command after the built-ins.
func WithCommand(name string, cmd Command, arity int) Option {
	return func(in *Interpreter) {
		in.Commands.Register(name, cmd, arity)
	}
}

// New creates an interpreter with empty stores and the built-in commands
// registered. Command output is written to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		Env:      make(Env),
		Lines:    make(Lines),
		Commands: NewRegistry(),
		logger:   slog.New(slog.DiscardHandler),
	}
	RegisterBuiltins(in.Commands, out)
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Execute runs one statement against the interpreter state.
func (in *Interpreter) Execute(stmt ast.Statement) error {
	in.logger.Debug("executing statement", "kind", ast.Kind(stmt), "stmt", stmt.String())
	if err := Execute(stmt, in.Env, in.Lines, in.Commands); err != nil {
		in.logger.Debug("statement failed", "kind", ast.Kind(stmt), "error", err)
		return err
	}
	return nil
}

// ExecLine parses one newline-terminated line and executes it. Syntax
// errors are returned as *parser.SyntaxError and leave the state untouched.
func (in *Interpreter) ExecLine(line string) error {
	stmt, err := parser.Parse(line)
	if err != nil {
		in.logger.Debug("syntax error", "error", err)
		return err
	}
	return in.Execute(stmt)
}
