package interp

import (
	"fmt"

	"github.com/leapstack-labs/leapbasic/pkg/ast"
)

// Env is the variable environment.
type Env map[string]int64

// Lines is the registry of stored program lines, keyed by line index.
type Lines map[int64]string

// Evaluate reduces expr to an integer against env.
//
// The left operand of a binary expression is evaluated first and the first
// failure aborts the whole evaluation.
func Evaluate(expr ast.Expr, env Env) (int64, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return e.Value, nil

	case *ast.Variable:
		v, ok := env[e.Name]
		if !ok {
			return 0, &UndefinedVariableError{Name: e.Name}
		}
		return v, nil

	case *ast.BinaryExpr:
		l, err := Evaluate(e.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(e.Right, env)
		if err != nil {
			return 0, err
		}
		return apply(e.Op, l, r)

	default:
		return 0, fmt.Errorf("unsupported expression %T", expr)
	}
}

// apply combines two operands. Arithmetic wraps on overflow like native
// int64; comparisons yield 1 or 0.
func apply(op ast.Op, l, r int64) (int64, error) {
	switch op {
	case ast.OpAdd:
		return l + r, nil
	case ast.OpSub:
		return l - r, nil
	case ast.OpMul:
		return l * r, nil
	case ast.OpDiv:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	case ast.OpLT:
		return boolToInt(l < r), nil
	case ast.OpGT:
		return boolToInt(l > r), nil
	default:
		return 0, fmt.Errorf("unsupported operator %s", op)
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
