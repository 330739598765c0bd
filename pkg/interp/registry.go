package interp

import (
	"sort"

	"github.com/leapstack-labs/leapbasic/pkg/ast"
)

// Variadic is the arity policy of commands that accept any number of
// arguments.
const Variadic = -1

// Command is a built-in operation callable from an Invoke statement.
//
// Args are passed unevaluated; each command decides whether and how to
// evaluate them against env.
type Command interface {
	Invoke(env Env, lines Lines, args []ast.Expr) error
}

// CommandFunc adapts a function to the Command interface.
type CommandFunc func(env Env, lines Lines, args []ast.Expr) error

// Invoke calls f.
func (f CommandFunc) Invoke(env Env, lines Lines, args []ast.Expr) error {
	return f(env, lines, args)
}

type registration struct {
	cmd   Command
	arity int
}

// Registry maps command names to their implementation and arity policy.
// It is populated before any input is processed and only read afterwards.
type Registry struct {
	commands map[string]registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]registration)}
}

// Register adds a command. arity is the exact number of arguments the
// command accepts, or Variadic. Registering an existing name replaces it.
func (r *Registry) Register(name string, cmd Command, arity int) {
	r.commands[name] = registration{cmd: cmd, arity: arity}
}

// Lookup returns the command registered under name and its arity.
func (r *Registry) Lookup(name string) (Command, int, bool) {
	reg, ok := r.commands[name]
	if !ok {
		return nil, 0, false
	}
	return reg.cmd, reg.arity, true
}

// Names returns all registered command names (sorted).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
