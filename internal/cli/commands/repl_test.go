package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestREPL(t *testing.T) (*repl, *testSession) {
	t.Helper()
	s := newTestSession(t)
	return &repl{session: s.Session, out: s.Out, reporter: s.reporter}, s
}

func TestREPL_Handle(t *testing.T) {
	r, s := newTestREPL(t)

	assert.False(t, r.handle("a=2"))
	assert.False(t, r.handle("  "))
	assert.False(t, r.handle("print a*3"))

	assert.Equal(t, "6\n", s.Out.String())
	assert.Empty(t, s.ErrOut.String())
}

func TestREPL_HandleReportsFailures(t *testing.T) {
	r, s := newTestREPL(t)

	assert.False(t, r.handle("print x"))
	assert.Contains(t, s.ErrOut.String(), "Evaluation Error:")
}

func TestREPL_DotCommands(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		quit     bool
		wantOut  string
		wantDiag string
	}{
		{name: "quit", line: ".quit", quit: true},
		{name: "exit", line: ".EXIT", quit: true},
		{name: "help", line: ".help", wantOut: "Commands: list, print"},
		{name: "vars", line: ".vars", wantOut: "VALUE"},
		{name: "lines", line: ".lines", wantOut: "(1 lines)"},
		{name: "unknown", line: ".tables", wantDiag: "Unknown command: .tables"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestREPL(t)
			r.handle("a=1")
			r.handle("10 print a")
			s.Out.Reset()

			assert.Equal(t, tt.quit, r.handle(tt.line))
			if tt.wantOut != "" {
				assert.Contains(t, s.Out.String(), tt.wantOut)
			}
			if tt.wantDiag != "" {
				assert.Contains(t, s.ErrOut.String(), tt.wantDiag)
			}
		})
	}
}

func TestNewCompleter(t *testing.T) {
	c := newCompleter([]string{"list", "print"})

	var names []string
	for _, child := range c.GetChildren() {
		names = append(names, string(child.GetName()))
	}
	assert.Contains(t, names, "print ")
	assert.Contains(t, names, "list ")
	assert.Contains(t, names, ".quit ")
}
