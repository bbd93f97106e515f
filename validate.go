// Package exprcheck decides whether a string is a well-formed
// arithmetic expression over +, -, *, /, unary negation, parentheses
// and numeric literals. It never evaluates the expression; an invalid
// input yields the exact offset and reason of the first failure.
//
// Validate is a pure function of its input and is safe for concurrent
// use.
package exprcheck

import (
	"errors"

	"github.com/exprlang/exprcheck/parser"
	"github.com/exprlang/exprcheck/tokenizer"
)

// Result is the outcome of validating one expression. Position and
// Message are meaningful only when Valid is false; Position is a
// 0-based byte offset into the original input, always within
// [0, len(input)]. Err wraps the tokenizer/parser sentinel that
// classified the failure, for errors.Is checks.
type Result struct {
	Valid    bool
	Position int
	Message  string
	Err      error
}

// String returns the string representation of Result
func (r Result) String() string {
	if r.Valid {
		return "valid"
	}

	return "invalid: " + r.Message
}

// Validate runs the tokenizer and the parser over input. Lexing and
// parsing failures surface in the same shape; malformed input is the
// expected case and never panics. Empty input is invalid at position 0.
func Validate(input string) Result {
	tokens, err := tokenizer.Tokenize(input)
	if err != nil {
		position := 0

		var lexErr *tokenizer.LexError
		if errors.As(err, &lexErr) {
			position = lexErr.Pos.Offset
		}

		return Result{Position: position, Message: err.Error(), Err: err}
	}

	if _, err := parser.Parse(tokens); err != nil {
		position := 0

		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			position = parseErr.Position()
		}

		return Result{Position: position, Message: err.Error(), Err: err}
	}

	return Result{Valid: true}
}
