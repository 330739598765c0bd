package parser

import "github.com/leapstack-labs/leapbasic/pkg/ast"

// Expression parsing by precedence climbing.
//
// Precedence tiers (from the ast package), loosest first:
//
//	PrecedenceAddition   = 1  (+, -)
//	PrecedenceMultiply   = 2  (*, /)
//	PrecedenceComparison = 3  (<, >)
//
// Every tier is left associative. Comparisons bind tightest, so "1<2+3"
// parses as "(1<2)+3".
//
//	expr    → atom {_ op _ atom}
//	atom    → number | ident | "(" _ expr _ ")"

// parseExpression parses an expression. On failure the position is left
// where it started.
func (p *Parser) parseExpression() (ast.Expr, bool) {
	return p.parseExpressionWithPrecedence(ast.PrecedenceAddition)
}

// parseExpressionWithPrecedence parses operators whose tier is at least
// minPrecedence.
func (p *Parser) parseExpressionWithPrecedence(minPrecedence int) (ast.Expr, bool) {
	left, ok := p.parseAtom()
	if !ok {
		return nil, false
	}

	for {
		save := p.pos
		p.skipWhitespace()

		op, ok := p.operator()
		if !ok || op.Precedence() < minPrecedence {
			p.pos = save
			break
		}
		p.skipWhitespace()

		right, ok := p.parseExpressionWithPrecedence(op.Precedence() + 1)
		if !ok {
			// "a +" is not a binary expression; the operator stays unconsumed
			p.pos = save
			break
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}

	return left, true
}

// operator consumes a binary operator character.
func (p *Parser) operator() (ast.Op, bool) {
	op, ok := ast.LookupOp(p.peek())
	if !ok {
		p.fail(expectOperator)
		return 0, false
	}
	p.pos++
	return op, true
}

// parseAtom parses a number, a variable or a parenthesised expression.
func (p *Parser) parseAtom() (ast.Expr, bool) {
	start := p.pos

	switch ch := p.peek(); {
	case isDigit(ch):
		n, ok := p.number()
		if !ok {
			return nil, false
		}
		return &ast.Number{Value: n}, true

	case isLower(ch):
		name, _ := p.ident()
		return &ast.Variable{Name: name}, true

	case ch == '(':
		p.pos++
		p.skipWhitespace()
		inner, ok := p.parseExpression()
		if !ok {
			p.pos = start
			return nil, false
		}
		p.skipWhitespace()
		if !p.literal(")") {
			p.pos = start
			return nil, false
		}
		return inner, true

	default:
		p.fail(expectDigit)
		p.fail(expectIdentifier)
		p.fail(`"("`)
		return nil, false
	}
}
