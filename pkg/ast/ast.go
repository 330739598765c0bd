// Package ast defines the syntax tree produced by the parser and walked by
// the interpreter.
//
// Trees are built once by the parser and never mutated afterwards. Every
// child node is owned by exactly one parent.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Statement represents one executable line.
type Statement interface {
	stmtNode()
	String() string
}

// Expr represents an expression reducible to a single integer.
type Expr interface {
	exprNode()
	String() string
}

// ---------- Expressions ----------

// Number is an integer literal.
type Number struct {
	Value int64
}

func (*Number) exprNode() {}

func (n *Number) String() string {
	return strconv.FormatInt(n.Value, 10)
}

// Variable is a reference to the variable environment, resolved at
// evaluation time.
type Variable struct {
	Name string
}

func (*Variable) exprNode() {}

func (v *Variable) String() string {
	return v.Name
}

// BinaryExpr applies Op to two operands.
type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// ---------- Statements ----------

// StoreLine registers raw text under a line index.
type StoreLine struct {
	Index int64
	Text  string
}

func (*StoreLine) stmtNode() {}

func (s *StoreLine) String() string {
	return fmt.Sprintf("line %d %q", s.Index, s.Text)
}

// Assign binds the value of an expression to a variable.
type Assign struct {
	Name  string
	Value Expr
}

func (*Assign) stmtNode() {}

func (a *Assign) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value)
}

// If runs Then when Cond evaluates to a non-zero value. There is no else
// branch.
type If struct {
	Cond Expr
	Then Statement
}

func (*If) stmtNode() {}

func (i *If) String() string {
	return fmt.Sprintf("if %s then %s", i.Cond, i.Then)
}

// Invoke calls a registered command with positional, unevaluated arguments.
type Invoke struct {
	Command string
	Args    []Expr
}

func (*Invoke) stmtNode() {}

func (c *Invoke) String() string {
	if len(c.Args) == 0 {
		return c.Command + "()"
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Command + "(" + strings.Join(args, ", ") + ")"
}

// Kind returns a short lowercase name for the statement type, used as a
// logging attribute.
func Kind(s Statement) string {
	switch s.(type) {
	case *StoreLine:
		return "line"
	case *Assign:
		return "assign"
	case *If:
		return "if"
	case *Invoke:
		return "invoke"
	default:
		return "unknown"
	}
}
