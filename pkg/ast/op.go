package ast

// Op identifies a binary operator.
type Op int

// Binary operators.
const (
	OpAdd Op = iota + 1 // +
	OpSub               // -
	OpMul               // *
	OpDiv               // /
	OpLT                // <
	OpGT                // >
)

// Precedence tiers, loosest first.
//
// Comparisons bind tighter than arithmetic: "1<2+3" groups as "(1<2)+3".
const (
	PrecedenceNone       = 0
	PrecedenceAddition   = 1 // +, -
	PrecedenceMultiply   = 2 // *, /
	PrecedenceComparison = 3 // <, >
)

var opSymbols = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpLT:  "<",
	OpGT:  ">",
}

func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return "?"
}

// Precedence returns the binding tier of the operator.
func (o Op) Precedence() int {
	switch o {
	case OpAdd, OpSub:
		return PrecedenceAddition
	case OpMul, OpDiv:
		return PrecedenceMultiply
	case OpLT, OpGT:
		return PrecedenceComparison
	default:
		return PrecedenceNone
	}
}

// LookupOp maps an operator character to its Op.
func LookupOp(ch byte) (Op, bool) {
	switch ch {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	case '<':
		return OpLT, true
	case '>':
		return OpGT, true
	}
	return 0, false
}
