// Package boolexpr parses sum-of-products style Boolean expressions over the
// variables A..Z and evaluates them into minterms.
//
// Accepted operators, lowest precedence first:
//
//	+ | #      or
//	& * ab     and (juxtaposition is an implicit and)
//	! ~        prefix not
//	'          postfix complement
package boolexpr

import (
	"github.com/pkg/errors"

	"github.com/pborges/qmc/internal/qm"
)

// Parse parses a complete expression.
func Parse(s string) (Expr, error) {
	p := &parser{lex: newLexer(s)}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.lex.next(); tok.kind != tokEOF {
		return nil, p.unexpected(tok)
	}
	return x, nil
}

// Lexer for expressions

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIllegal
	tokVar
	tokNumber
	tokNot
	tokPrime
	tokAnd
	tokOr
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type lexer struct {
	s string
	i int
}

func newLexer(s string) *lexer { return &lexer{s: s} }

func (l *lexer) peek() token {
	pos := l.i
	tok := l.next()
	l.i = pos
	return tok
}

func (l *lexer) next() token {
	for l.i < len(l.s) && isSpace(l.s[l.i]) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}
	}
	start := l.i
	ch := l.s[l.i]
	l.i++
	tok := token{text: string(ch), pos: start}
	switch {
	case ch == '!' || ch == '~':
		tok.kind = tokNot
	case ch == '\'':
		tok.kind = tokPrime
	case ch == '&' || ch == '*':
		tok.kind = tokAnd
	case ch == '|' || ch == '#' || ch == '+':
		tok.kind = tokOr
	case ch == '(':
		tok.kind = tokLParen
	case ch == ')':
		tok.kind = tokRParen
	case ch == '0' || ch == '1':
		tok.kind = tokNumber
	case ch >= 'A' && ch <= 'Z':
		tok.kind = tokVar
	default:
		tok.kind = tokIllegal
	}
	return tok
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// startsOperand reports whether tok can begin a factor of an implicit and.
func startsOperand(tok token) bool {
	switch tok.kind {
	case tokVar, tokNumber, tokLParen, tokNot:
		return true
	}
	return false
}

// Parser

type parser struct {
	lex *lexer
}

func (p *parser) unexpected(tok token) error {
	if tok.kind == tokEOF {
		return errors.Wrap(qm.ErrInvalidInput, "unexpected end of expression")
	}
	return errors.Wrapf(qm.ErrInvalidInput, "unexpected %q at offset %d", tok.text, tok.pos)
}

func (p *parser) parseExpr() (Expr, error) { return p.parseOr() }

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.lex.peek()
		if tok.kind != tokOr {
			break
		}
		p.lex.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ExprOr{A: left, B: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.lex.peek()
		switch {
		case tok.kind == tokAnd:
			p.lex.next()
		case startsOperand(tok):
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ExprAnd{A: left, B: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	tok := p.lex.peek()
	if tok.kind == tokNot {
		p.lex.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ExprNot{X: x}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.lex.peek().kind == tokPrime {
		p.lex.next()
		x = ExprNot{X: x}
	}
	return x, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.lex.next()
	switch tok.kind {
	case tokVar:
		return ExprVar{Index: int(tok.text[0] - 'A')}, nil
	case tokNumber:
		return ExprConst{Value: tok.text == "1"}, nil
	case tokLParen:
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.lex.next(); closing.kind != tokRParen {
			return nil, p.unexpected(closing)
		}
		return x, nil
	default:
		return nil, p.unexpected(tok)
	}
}
