package output

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapbasic/internal/cli/config"
	"github.com/leapstack-labs/leapbasic/pkg/interp"
	"github.com/leapstack-labs/leapbasic/pkg/parser"
)

func newTestReporter() (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewReporter(out, errOut, config.ColorNever), out, errOut
}

func syntaxErr(t *testing.T, line string) error {
	t.Helper()
	_, err := parser.Parse(line)
	require.Error(t, err)
	return err
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "syntax", err: syntaxErr(t, "a=\n"), want: LabelSyntax},
		{name: "undefined variable", err: &interp.UndefinedVariableError{Name: "x"}, want: LabelUndefinedVar},
		{name: "undefined command", err: &interp.UndefinedCommandError{Name: "run"}, want: LabelUndefinedCmd},
		{name: "argument count", err: &interp.ArgumentCountError{Command: "list", Want: 0, Got: 1}, want: LabelArgumentCount},
		{name: "division by zero", err: interp.ErrDivisionByZero, want: LabelDivisionByZero},
		{
			name: "evaluation wins over wrapped variable",
			err:  &interp.EvaluationError{Command: "print", Err: &interp.UndefinedVariableError{Name: "x"}},
			want: LabelEvaluation,
		},
		{
			name: "wrapped syntax error",
			err:  fmt.Errorf("line 3: %w", syntaxErr(t, "a=\n")),
			want: LabelSyntax,
		},
		{name: "other", err: errors.New("boom"), want: LabelGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.err))
		})
	}
}

func TestReporter_Report(t *testing.T) {
	r, out, errOut := newTestReporter()

	r.Report(&interp.UndefinedVariableError{Name: "z"})

	assert.Empty(t, out.String())
	assert.Equal(t, "Undefined Variable: undefined variable \"z\"\n", errOut.String())
}

func TestReporter_ReportNil(t *testing.T) {
	r, out, errOut := newTestReporter()
	r.Report(nil)
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestReporter_ReportSyntaxCaret(t *testing.T) {
	tests := []struct {
		name  string
		input string
		src   string
		caret string
	}{
		{name: "points at column", input: "a=1 2\n", src: "a=1 2", caret: "    ^"},
		{name: "keeps tabs", input: "\ta=1 2\n", src: "    a=1 2", caret: "        ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, errOut := newTestReporter()
			r.Report(syntaxErr(t, tt.input))

			lines := bytes.Split(bytes.TrimRight(errOut.Bytes(), "\n"), []byte("\n"))
			require.Len(t, lines, 3)
			assert.Contains(t, string(lines[0]), "Syntax Error: syntax error at line 1")
			assert.Equal(t, "  "+tt.src, string(lines[1]))
			assert.Equal(t, "  "+tt.caret, string(lines[2]))
		})
	}
}

func TestReporter_ReportSyntaxBlankLine(t *testing.T) {
	r, _, errOut := newTestReporter()
	r.Report(syntaxErr(t, "\n"))

	assert.Contains(t, errOut.String(), "Syntax Error: ")
	assert.Equal(t, 1, bytes.Count(errOut.Bytes(), []byte("\n")))
}

func TestReporter_ColorNeverHasNoANSI(t *testing.T) {
	r, _, errOut := newTestReporter()
	r.Report(syntaxErr(t, "a=1 2\n"))
	r.Notice("watching %s", "prog.bas")

	assert.NotContains(t, errOut.String(), "\x1b[")
	assert.Contains(t, errOut.String(), "watching prog.bas\n")
}

func TestReporter_ColorAlwaysStyles(t *testing.T) {
	errOut := &bytes.Buffer{}
	r := NewReporter(&bytes.Buffer{}, errOut, config.ColorAlways)

	r.Report(interp.ErrDivisionByZero)

	assert.Contains(t, errOut.String(), "\x1b[")
	assert.Contains(t, errOut.String(), "division by zero")
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, config.ColorAlways, ResolveColor(config.ColorAlways, &bytes.Buffer{}))
	assert.Equal(t, config.ColorNever, ResolveColor(config.ColorNever, &bytes.Buffer{}))
	assert.Equal(t, config.ColorNever, ResolveColor(config.ColorAuto, &bytes.Buffer{}))
}
