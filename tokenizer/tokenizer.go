package tokenizer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// ExprTokenizer scans one arithmetic expression and returns tokens
// through an iterator. It keeps no state between inputs.
type ExprTokenizer struct {
	input string
}

// NewExprTokenizer creates a new ExprTokenizer
func NewExprTokenizer(input string) *ExprTokenizer {
	return &ExprTokenizer{input: input}
}

// Tokens returns an iterator of tokens. Scanning stops at the first
// invalid character; the error names the character and its offset.
// The final yielded token is EOF with Offset == len(input).
func (t *ExprTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{
			input:  t.input,
			line:   1,
			column: 1,
		}

		tokenizer.readChar()

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if !yield(token, nil) {
				return
			}

			if token.Type == EOF {
				return
			}
		}
	}
}

// Tokenize scans the whole input into a slice terminated by an EOF
// token. A lexing failure aborts the scan and returns the error.
func Tokenize(input string) ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for token, err := range NewExprTokenizer(input).Tokens() {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int
	line     int
	column   int
	current  rune
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	// Inline whitespace separates tokens but is never emitted.
	for t.current == ' ' || t.current == '\t' {
		t.readChar()
	}

	switch t.current {
	case 0:
		return Token{
			Type:      EOF,
			Position:  Position{Line: t.line, Column: t.column, Offset: len(t.input)},
			EndOffset: len(t.input),
		}, nil
	case '+':
		return t.charToken(PLUS), nil
	case '-':
		return t.charToken(MINUS), nil
	case '*':
		return t.charToken(STAR), nil
	case '/':
		return t.charToken(SLASH), nil
	case '(':
		return t.charToken(LPAREN), nil
	case ')':
		return t.charToken(RPAREN), nil
	default:
		if unicode.IsDigit(t.current) || (t.current == '.' && unicode.IsDigit(t.peekChar())) {
			return t.readNumber(), nil
		}

		// Scanning is byte-wise; decode the full rune here so a
		// multibyte character is named whole in the error. Offsets
		// stay byte-based.
		char, _ := utf8.DecodeRuneInString(t.input[t.position-1:])

		return Token{}, &LexError{
			Char: char,
			Pos:  Position{Line: t.line, Column: t.column - 1, Offset: t.position - 1},
		}
	}
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.position >= len(t.input) {
		t.current = 0
		t.position++
		return
	}

	t.current = rune(t.input[t.position])
	t.position++

	if t.current == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

// peekChar looks ahead at the next character
func (t *tokenizer) peekChar() rune {
	if t.position >= len(t.input) {
		return 0
	}
	return rune(t.input[t.position])
}

// peekCharAt looks ahead n characters past the current one
func (t *tokenizer) peekCharAt(n int) rune {
	if t.position+n-1 >= len(t.input) {
		return 0
	}
	return rune(t.input[t.position+n-1])
}

// charToken emits a single-character token and advances
func (t *tokenizer) charToken(tokenType TokenType) Token {
	token := Token{
		Type:      tokenType,
		Value:     string(t.current),
		Position:  Position{Line: t.line, Column: t.column - 1, Offset: t.position - 1},
		EndOffset: t.position,
	}
	t.readChar()

	return token
}

// readNumber reads a numeric literal: optional integer digits, an
// optional fraction introduced by '.', and an optional exponent. The
// match is maximal; an 'e' without a well-formed exponent tail is left
// for the next scan step (where it fails as an unexpected character).
func (t *tokenizer) readNumber() Token {
	var builder strings.Builder

	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	hasIntPart := false
	for unicode.IsDigit(t.current) {
		hasIntPart = true

		builder.WriteRune(t.current)
		t.readChar()
	}

	// Fraction: "1." is valid, a lone "." is not.
	if t.current == '.' && (hasIntPart || unicode.IsDigit(t.peekChar())) {
		builder.WriteRune(t.current)
		t.readChar()

		for unicode.IsDigit(t.current) {
			builder.WriteRune(t.current)
			t.readChar()
		}
	}

	if (t.current == 'e' || t.current == 'E') && t.hasExponentTail() {
		builder.WriteRune(t.current)
		t.readChar()

		if t.current == '+' || t.current == '-' {
			builder.WriteRune(t.current)
			t.readChar()
		}

		for unicode.IsDigit(t.current) {
			builder.WriteRune(t.current)
			t.readChar()
		}
	}

	return Token{
		Type:  NUMBER,
		Value: builder.String(),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
		EndOffset: startOffset + builder.Len(),
	}
}

// hasExponentTail reports whether the characters after the current
// 'e'/'E' form a digit run with an optional leading sign
func (t *tokenizer) hasExponentTail() bool {
	next := t.peekChar()
	if unicode.IsDigit(next) {
		return true
	}

	if next == '+' || next == '-' {
		return unicode.IsDigit(t.peekCharAt(2))
	}

	return false
}
