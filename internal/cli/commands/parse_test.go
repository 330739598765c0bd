package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "assign", line: "a = 1+2*3", want: "assign: a = (1 + (2 * 3))\n"},
		{name: "store line", line: "10 print a", want: "line: line 10 \" print a\"\n"},
		{name: "if", line: "if a<1 then print a", want: "if: if (a < 1) then print(a)\n"},
		{name: "invoke", line: "list", want: "invoke: list()\n"},
		{name: "explicit newline", line: "b=2\n", want: "assign: b = 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewParseCommand()
			out := &bytes.Buffer{}
			cmd.SetOut(out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{tt.line})

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestParseCommand_SyntaxError(t *testing.T) {
	cmd := NewParseCommand()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"a=1 2"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, ErrReported)
	assert.Empty(t, out.String())
	assert.NotContains(t, errOut.String(), "Usage:")
	assert.Contains(t, errOut.String(), "Syntax Error: syntax error at line 1, column 5")
	assert.Contains(t, errOut.String(), "      ^")
}
