package interp

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapbasic/pkg/ast"
)

// Print evaluates every argument and writes them space-separated on one
// line. If any argument fails nothing is written.
type Print struct {
	Out io.Writer
}

// Invoke implements Command.
func (p *Print) Invoke(env Env, _ Lines, args []ast.Expr) error {
	values := make([]string, len(args))
	for i, arg := range args {
		v, err := Evaluate(arg, env)
		if err != nil {
			return &EvaluationError{Command: "print", Err: err}
		}
		values[i] = strconv.FormatInt(v, 10)
	}
	_, err := fmt.Fprintln(p.Out, strings.Join(values, " "))
	return err
}

// List writes every stored line as "<index><text>", highest index first.
type List struct {
	Out io.Writer
}

// Invoke implements Command.
func (l *List) Invoke(_ Env, lines Lines, _ []ast.Expr) error {
	for _, idx := range SortedIndices(lines) {
		if _, err := fmt.Fprintf(l.Out, "%d%s\n", idx, lines[idx]); err != nil {
			return err
		}
	}
	return nil
}

// SortedIndices returns the stored line indices in descending order.
func SortedIndices(lines Lines) []int64 {
	indices := make([]int64, 0, len(lines))
	for idx := range lines {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] > indices[j] })
	return indices
}

// RegisterBuiltins adds print and list, writing to out.
func RegisterBuiltins(r *Registry, out io.Writer) {
	r.Register("print", &Print{Out: out}, Variadic)
	r.Register("list", &List{Out: out}, 0)
}
