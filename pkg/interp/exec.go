package interp

import (
	"fmt"

	"github.com/leapstack-labs/leapbasic/pkg/ast"
)

// Execute performs the effect of one statement against the three stores.
//
// A returned error means the statement had no effect beyond what the
// error describes: a failed Assign leaves env untouched, a failed If
// condition skips the nested statement, a failed lookup or arity check
// never reaches the command.
func Execute(stmt ast.Statement, env Env, lines Lines, commands *Registry) error {
	switch s := stmt.(type) {
	case *ast.StoreLine:
		lines[s.Index] = s.Text
		return nil

	case *ast.Assign:
		v, err := Evaluate(s.Value, env)
		if err != nil {
			return err
		}
		env[s.Name] = v
		return nil

	case *ast.If:
		cond, err := Evaluate(s.Cond, env)
		if err != nil {
			return err
		}
		if cond == 0 {
			return nil
		}
		return Execute(s.Then, env, lines, commands)

	case *ast.Invoke:
		cmd, arity, ok := commands.Lookup(s.Command)
		if !ok {
			return &UndefinedCommandError{Name: s.Command, Available: commands.Names()}
		}
		if arity != Variadic && arity != len(s.Args) {
			return &ArgumentCountError{Command: s.Command, Want: arity, Got: len(s.Args)}
		}
		return cmd.Invoke(env, lines, s.Args)

	default:
		return fmt.Errorf("unsupported statement %T", stmt)
	}
}
