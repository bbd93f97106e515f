package parser

import (
	"errors"
	"fmt"

	"github.com/exprlang/exprcheck/tokenizer"
)

// Sentinel errors
var (
	// ErrUnexpectedToken indicates a token that cannot appear in the
	// current grammatical position.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrUnexpectedEOF indicates the token stream ended where another
	// token was required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrTrailingInput indicates unconsumed tokens after a complete
	// expression.
	ErrTrailingInput = errors.New("unexpected input after expression")
)

// operandExpectation names what parseFactor accepts.
const operandExpectation = "number, '-' or '('"

// ParseError is the first failure found in a left-to-right parse. It
// wraps one of the package sentinels and carries the offending token,
// whose offset localizes the failure in the original input.
type ParseError struct {
	Err      error
	Token    tokenizer.Token
	Expected string
}

// Error returns the string representation of ParseError
func (e *ParseError) Error() string {
	offset := e.Token.Position.Offset

	switch {
	case errors.Is(e.Err, ErrUnexpectedEOF):
		return fmt.Sprintf("%v at offset %d: expected %s", e.Err, offset, e.Expected)
	case errors.Is(e.Err, ErrTrailingInput):
		return fmt.Sprintf("%v: %q at offset %d", e.Err, e.Token.Value, offset)
	default:
		return fmt.Sprintf("%v %q at offset %d: expected %s", e.Err, e.Token.Value, offset, e.Expected)
	}
}

// Unwrap returns the wrapped sentinel error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Position returns the 0-based offset of the failure
func (e *ParseError) Position() int {
	return e.Token.Position.Offset
}

// Parse consumes a token slice produced by tokenizer.Tokenize and
// accepts or rejects it against the expression grammar:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := '-' factor | NUMBER | '(' expr ')'
//
// Binary operators are left-associative; unary minus binds tighter
// than any binary operator. On rejection the returned error is a
// *ParseError localizing the first failure.
func Parse(tokens []tokenizer.Token) (Node, error) {
	p := &parser{tokens: tokens}

	node, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}

	if trailing := p.peek(); trailing.Type != tokenizer.EOF {
		return nil, &ParseError{Err: ErrTrailingInput, Token: trailing}
	}

	return node, nil
}

// Internal parser state: one forward pass, one token of lookahead.
type parser struct {
	tokens []tokenizer.Token
	pos    int
}

// Binary operator precedence; 0 marks non-operators.
const (
	precAdditive       = 1
	precMultiplicative = 2
)

func binaryPrecedence(t tokenizer.TokenType) int {
	switch t {
	case tokenizer.PLUS, tokenizer.MINUS:
		return precAdditive
	case tokenizer.STAR, tokenizer.SLASH:
		return precMultiplicative
	default:
		return 0
	}
}

// parseExpr parses one operand, then folds binary operators of
// precedence >= minPrec onto it. Parsing the right side at prec+1
// makes both levels left-associative.
func (p *parser) parseExpr(minPrec int) (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		op := p.peek()

		prec := binaryPrecedence(op.Type)
		if prec == 0 || prec < minPrec {
			return left, nil
		}

		p.next()

		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}

		left = &BinaryNode{Op: op, Left: left, Right: right}
	}
}

// parseFactor parses a negation, a number, or a parenthesized
// subexpression.
func (p *parser) parseFactor() (Node, error) {
	token := p.peek()

	switch token.Type {
	case tokenizer.MINUS:
		p.next()

		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		return &UnaryNode{Op: token, Operand: operand}, nil

	case tokenizer.NUMBER:
		p.next()
		return &NumberNode{Token: token}, nil

	case tokenizer.LPAREN:
		p.next()

		inner, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}

		closing := p.peek()
		if closing.Type != tokenizer.RPAREN {
			sentinel := ErrUnexpectedToken
			if closing.Type == tokenizer.EOF {
				sentinel = ErrUnexpectedEOF
			}

			return nil, &ParseError{Err: sentinel, Token: closing, Expected: "')'"}
		}

		p.next()

		return inner, nil

	case tokenizer.EOF:
		return nil, &ParseError{Err: ErrUnexpectedEOF, Token: token, Expected: operandExpectation}

	default:
		return nil, &ParseError{Err: ErrUnexpectedToken, Token: token, Expected: operandExpectation}
	}
}

func (p *parser) peek() tokenizer.Token {
	if p.pos >= len(p.tokens) {
		// Tokenize always terminates the slice with EOF; this only
		// guards hand-built slices.
		return tokenizer.Token{Type: tokenizer.EOF}
	}

	return p.tokens[p.pos]
}

func (p *parser) next() {
	p.pos++
}
