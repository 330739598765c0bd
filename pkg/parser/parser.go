// Package parser turns one line of source text into an ast.Statement.
//
// # Usage
//
//	stmt, err := parser.Parse("a=1<2+3\n")
//	if err != nil {
//	    // err is a *parser.SyntaxError
//	}
//
// # Grammar Overview
//
// The parser is a backtracking recursive descent parser. Alternatives are
// tried in order and the first one that matches wins:
//
//	input     → _ statement _ "\n" EOF
//	statement → line | if | assign | command
//	line      → number text            (text is everything up to "\n")
//	if        → "if" _ expr _ "then" _ nested
//	nested    → if | assign | command
//	assign    → ident _ "=" _ expr
//	command   → ident _ [expr {" " _ expr}]
//	_         → {" " | "\t"}
//
// See parser_expr.go for the expression grammar.
package parser

import (
	"sort"
	"strconv"

	"github.com/leapstack-labs/leapbasic/pkg/ast"
)

// Parser parses a single line into a statement.
type Parser struct {
	input string
	pos   int

	// furthest failure, reported when the whole line fails
	errPos   int
	expected map[string]struct{}
}

// NewParser creates a parser for one line of input. The input must include
// its terminating newline.
func NewParser(input string) *Parser {
	return &Parser{
		input:    input,
		expected: make(map[string]struct{}),
	}
}

// Parse parses one newline-terminated line.
func Parse(input string) (ast.Statement, error) {
	return NewParser(input).ParseLine()
}

// ParseLine parses the whole input as one statement. Anything left over
// after the statement and its newline is a syntax error.
func (p *Parser) ParseLine() (ast.Statement, error) {
	p.skipWhitespace()
	stmt, ok := p.parseStatement(true)
	if !ok {
		return nil, p.syntaxError()
	}
	p.skipWhitespace()
	if !p.literal("\n") {
		return nil, p.syntaxError()
	}
	if !p.atEOF() {
		p.fail(expectEOF)
		return nil, p.syntaxError()
	}
	return stmt, nil
}

// ---------- Statements ----------

// parseStatement tries each statement form in order. The line form is only
// accepted at the top level.
func (p *Parser) parseStatement(allowLine bool) (ast.Statement, bool) {
	start := p.pos

	if allowLine {
		if stmt, ok := p.parseStoreLine(); ok {
			return stmt, true
		}
		p.pos = start
	}

	alternatives := []func() (ast.Statement, bool){
		p.parseIf,
		p.parseAssign,
		p.parseCommand,
	}
	for _, alt := range alternatives {
		if stmt, ok := alt(); ok {
			return stmt, true
		}
		p.pos = start
	}
	return nil, false
}

// parseStoreLine parses: number text
func (p *Parser) parseStoreLine() (ast.Statement, bool) {
	index, ok := p.number()
	if !ok {
		return nil, false
	}
	start := p.pos
	for !p.atEOF() && p.peek() != '\n' {
		p.pos++
	}
	return &ast.StoreLine{Index: index, Text: p.input[start:p.pos]}, true
}

// parseIf parses: "if" _ expr _ "then" _ nested
func (p *Parser) parseIf() (ast.Statement, bool) {
	if !p.literal("if") {
		return nil, false
	}
	p.skipWhitespace()
	cond, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	p.skipWhitespace()
	if !p.literal("then") {
		return nil, false
	}
	p.skipWhitespace()
	then, ok := p.parseStatement(false)
	if !ok {
		return nil, false
	}
	return &ast.If{Cond: cond, Then: then}, true
}

// parseAssign parses: ident _ "=" _ expr
func (p *Parser) parseAssign() (ast.Statement, bool) {
	name, ok := p.ident()
	if !ok {
		return nil, false
	}
	p.skipWhitespace()
	if !p.literal("=") {
		return nil, false
	}
	p.skipWhitespace()
	value, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	return &ast.Assign{Name: name, Value: value}, true
}

// parseCommand parses: ident _ [expr {" " _ expr}]
//
// Arguments are separated by a single space followed by optional
// whitespace; a tab alone does not separate arguments.
func (p *Parser) parseCommand() (ast.Statement, bool) {
	name, ok := p.ident()
	if !ok {
		return nil, false
	}
	p.skipWhitespace()

	var args []ast.Expr
	if first, ok := p.parseExpression(); ok {
		args = append(args, first)
		for {
			save := p.pos
			if !p.literal(" ") {
				break
			}
			p.skipWhitespace()
			arg, ok := p.parseExpression()
			if !ok {
				p.pos = save
				break
			}
			args = append(args, arg)
		}
	}
	return &ast.Invoke{Command: name, Args: args}, true
}

// ---------- Lexical Helpers ----------

func (p *Parser) atEOF() bool {
	return p.pos >= len(p.input)
}

// peek returns the current byte, or 0 at end of input.
func (p *Parser) peek() byte {
	if p.atEOF() {
		return 0
	}
	return p.input[p.pos]
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }

// skipWhitespace consumes spaces and tabs.
func (p *Parser) skipWhitespace() {
	for ch := p.peek(); ch == ' ' || ch == '\t'; ch = p.peek() {
		p.pos++
	}
}

// literal consumes s if the input continues with it.
func (p *Parser) literal(s string) bool {
	if len(p.input)-p.pos >= len(s) && p.input[p.pos:p.pos+len(s)] == s {
		p.pos += len(s)
		return true
	}
	p.fail(strconv.Quote(s))
	return false
}

// number consumes one or more digits and parses them as int64.
func (p *Parser) number() (int64, bool) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		p.fail(expectDigit)
		return 0, false
	}
	n, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil {
		p.pos = start
		p.fail(expectInteger)
		return 0, false
	}
	return n, true
}

// ident consumes one or more lowercase ASCII letters.
func (p *Parser) ident() (string, bool) {
	start := p.pos
	for isLower(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		p.fail(expectIdentifier)
		return "", false
	}
	return p.input[start:p.pos], true
}

// ---------- Error Tracking ----------

// fail records that what was expected at the current position is missing.
// Only the furthest position is kept.
func (p *Parser) fail(what string) {
	switch {
	case p.pos > p.errPos:
		p.errPos = p.pos
		p.expected = map[string]struct{}{what: {}}
	case p.pos == p.errPos:
		p.expected[what] = struct{}{}
	}
}

// syntaxError builds the error for the furthest recorded failure.
func (p *Parser) syntaxError() *SyntaxError {
	expected := make([]string, 0, len(p.expected))
	for e := range p.expected {
		expected = append(expected, e)
	}
	sort.Strings(expected)

	return &SyntaxError{
		Input:    p.input,
		Pos:      positionAt(p.input, p.errPos),
		Expected: expected,
		Message:  describeAt(p.input, p.errPos),
	}
}
