package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// LexError reports a character that does not begin any valid token.
// It wraps ErrUnexpectedCharacter for errors.Is checks.
type LexError struct {
	Char rune
	Pos  Position
}

// Error returns the string representation of LexError
func (e *LexError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrUnexpectedCharacter, e.Char, e.Pos.Offset)
}

// Unwrap returns the sentinel error
func (e *LexError) Unwrap() error {
	return ErrUnexpectedCharacter
}

// TokenType represents the type of a token
type TokenType int

const (
	EOF TokenType = iota
	NUMBER
	PLUS   // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	LPAREN // (
	RPAREN // )
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the input string
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token. EndOffset is the offset one past the last
// byte of Value; whitespace skipped between tokens advances offsets
// but never becomes part of a token's span.
type Token struct {
	Type      TokenType
	Value     string
	Position  Position
	EndOffset int
}

// String returns the string representation of Token
func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return t.Type.String() + ": " + t.Value
}
