package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/leapstack-labs/leapbasic/pkg/interp"
	"github.com/leapstack-labs/leapbasic/pkg/parser"
)

// Diagnostic labels, one per error kind.
const (
	LabelSyntax         = "Syntax Error"
	LabelUndefinedVar   = "Undefined Variable"
	LabelUndefinedCmd   = "Undefined Command"
	LabelArgumentCount  = "Argument Count Mismatch"
	LabelEvaluation     = "Evaluation Error"
	LabelDivisionByZero = "Division By Zero"
	LabelGeneric        = "Error"
)

// Reporter writes command output to out and diagnostics to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	styles *Styles
}

// NewReporter creates a reporter. color is one of the config color modes.
func NewReporter(out, errOut io.Writer, color string) *Reporter {
	return &Reporter{
		out:    out,
		errOut: errOut,
		styles: NewStyles(newRenderer(errOut, color)),
	}
}

// Out returns the writer that command output goes to.
func (r *Reporter) Out() io.Writer {
	return r.out
}

// Label returns the diagnostic label for err.
//
// An evaluation error raised inside a command is labelled as such even when
// it wraps an undefined variable.
func Label(err error) string {
	var (
		evalErr   *interp.EvaluationError
		undefVar  *interp.UndefinedVariableError
		undefCmd  *interp.UndefinedCommandError
		argCount  *interp.ArgumentCountError
		syntaxErr *parser.SyntaxError
	)
	switch {
	case errors.As(err, &evalErr):
		return LabelEvaluation
	case errors.As(err, &undefVar):
		return LabelUndefinedVar
	case errors.As(err, &undefCmd):
		return LabelUndefinedCmd
	case errors.As(err, &argCount):
		return LabelArgumentCount
	case errors.Is(err, interp.ErrDivisionByZero):
		return LabelDivisionByZero
	case errors.As(err, &syntaxErr):
		return LabelSyntax
	default:
		return LabelGeneric
	}
}

// Report writes a one-line diagnostic for err. Syntax errors are followed by
// the offending source line and a caret under the failing column.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(r.errOut, "%s %s\n", r.styles.Label.Render(Label(err)+":"), err.Error())

	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		if src, caret, ok := sourceContext(syntaxErr); ok {
			_, _ = fmt.Fprintf(r.errOut, "  %s\n  %s\n", r.styles.Source.Render(src), r.styles.Caret.Render(caret))
		}
	}
}

// Notice writes an informational message to the diagnostic writer.
func (r *Reporter) Notice(format string, args ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Muted.Render(fmt.Sprintf(format, args...)))
}

// sourceContext returns the input line holding the error position and a
// caret line pointing at its column. Tabs are kept so the caret aligns.
func sourceContext(e *parser.SyntaxError) (string, string, bool) {
	lines := strings.Split(e.Input, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return "", "", false
	}
	src := strings.TrimRight(lines[e.Pos.Line-1], "\r")
	if strings.TrimSpace(src) == "" {
		return "", "", false
	}

	var caret strings.Builder
	for i := 0; i < e.Pos.Column-1 && i < len(src); i++ {
		if src[i] == '\t' {
			caret.WriteByte('\t')
		} else {
			caret.WriteByte(' ')
		}
	}
	caret.WriteByte('^')
	return src, caret.String(), true
}
