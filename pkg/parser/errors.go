package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position represents a location in the parsed input.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// SyntaxError is returned when a line does not match the grammar.
//
// Pos is the furthest point the parser reached before every alternative
// failed, Expected lists what would have allowed it to continue there.
type SyntaxError struct {
	Input    string
	Pos      Position
	Expected []string
	Message  string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	if len(e.Expected) > 0 {
		msg += ", expected one of " + strings.Join(e.Expected, ", ")
	}
	return msg
}

// Common expectation names
const (
	expectDigit      = "digit"
	expectInteger    = "64-bit integer"
	expectIdentifier = "identifier"
	expectOperator   = "operator"
	expectEOF        = "end of input"
)

// positionAt converts a byte offset in input to a Position.
func positionAt(input string, offset int) Position {
	pos := Position{Line: 1, Column: 1, Offset: offset}
	for i := 0; i < offset && i < len(input); i++ {
		if input[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// describeAt returns a human readable description of what sits at offset.
func describeAt(input string, offset int) string {
	if offset >= len(input) {
		return "unexpected end of input"
	}
	if input[offset] == '\n' {
		return "unexpected end of line"
	}
	r, _ := utf8.DecodeRuneInString(input[offset:])
	return fmt.Sprintf("unexpected %q", r)
}
