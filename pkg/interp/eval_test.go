package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapbasic/pkg/ast"
)

func num(n int64) ast.Expr       { return &ast.Number{Value: n} }
func variable(n string) ast.Expr { return &ast.Variable{Name: n} }
func bin(op ast.Op, l, r ast.Expr) ast.Expr {
	return &ast.BinaryExpr{Op: op, Left: l, Right: r}
}

func TestEvaluate(t *testing.T) {
	env := Env{"a": 5, "b": -3, "zero": 0}

	tests := []struct {
		name string
		expr ast.Expr
		want int64
	}{
		{name: "number", expr: num(7), want: 7},
		{name: "variable", expr: variable("a"), want: 5},
		{name: "add", expr: bin(ast.OpAdd, variable("a"), num(2)), want: 7},
		{name: "sub", expr: bin(ast.OpSub, num(2), variable("a")), want: -3},
		{name: "mul", expr: bin(ast.OpMul, variable("a"), variable("b")), want: -15},
		{name: "div", expr: bin(ast.OpDiv, num(7), num(2)), want: 3},
		{name: "div truncates toward zero", expr: bin(ast.OpDiv, num(-7), num(2)), want: -3},
		{name: "less than true", expr: bin(ast.OpLT, num(1), num(2)), want: 1},
		{name: "less than false", expr: bin(ast.OpLT, num(2), num(2)), want: 0},
		{name: "greater than true", expr: bin(ast.OpGT, variable("a"), variable("b")), want: 1},
		{name: "greater than false", expr: bin(ast.OpGT, variable("b"), variable("a")), want: 0},
		{
			name: "comparison result used in arithmetic",
			expr: bin(ast.OpAdd, bin(ast.OpLT, num(1), num(2)), num(3)),
			want: 4,
		},
		{
			name: "addition wraps on overflow",
			expr: bin(ast.OpAdd, num(math.MaxInt64), num(1)),
			want: math.MinInt64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr, env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_UndefinedVariable(t *testing.T) {
	_, err := Evaluate(variable("z"), Env{})
	require.Error(t, err)

	var undef *UndefinedVariableError
	require.True(t, errors.As(err, &undef))
	assert.Equal(t, "z", undef.Name)
}

func TestEvaluate_AssignThenRead(t *testing.T) {
	env := Env{}
	require.NoError(t, Execute(&ast.Assign{Name: "z", Value: num(7)}, env, Lines{}, NewRegistry()))

	got, err := Evaluate(variable("z"), env)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestEvaluate_LeftOperandFailsFirst(t *testing.T) {
	expr := bin(ast.OpAdd, variable("left"), variable("right"))

	_, err := Evaluate(expr, Env{})

	var undef *UndefinedVariableError
	require.True(t, errors.As(err, &undef))
	assert.Equal(t, "left", undef.Name)
}

func TestEvaluate_FailureIsInfectious(t *testing.T) {
	expr := bin(ast.OpMul, num(0), bin(ast.OpAdd, num(1), variable("missing")))

	_, err := Evaluate(expr, Env{})

	var undef *UndefinedVariableError
	require.True(t, errors.As(err, &undef))
	assert.Equal(t, "missing", undef.Name)
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	_, err := Evaluate(bin(ast.OpDiv, num(1), bin(ast.OpSub, num(2), num(2))), Env{})
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
