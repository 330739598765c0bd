package interp

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when the right operand of "/" is zero.
var ErrDivisionByZero = errors.New("division by zero")

// UndefinedVariableError is returned when an expression references a name
// that is not bound in the environment.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// UndefinedCommandError is returned when a statement invokes a name that is
// not in the command registry.
type UndefinedCommandError struct {
	Name      string
	Available []string
}

func (e *UndefinedCommandError) Error() string {
	return fmt.Sprintf("undefined command %q\nAvailable commands: %v", e.Name, e.Available)
}

// ArgumentCountError is returned when a command with a fixed arity is
// invoked with a different number of arguments.
type ArgumentCountError struct {
	Command string
	Want    int
	Got     int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("command %q expects %d argument(s), got %d", e.Command, e.Want, e.Got)
}

// EvaluationError is returned by a command when evaluating one of its own
// arguments failed.
type EvaluationError struct {
	Command string
	Err     error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
