package tokenizer

import (
	"errors"
	"strconv"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTokenIterator(t *testing.T) {
	tokenizer := NewExprTokenizer("(4 - 5) * (6 + 7)")

	expectedTypes := []TokenType{
		LPAREN, NUMBER, MINUS, NUMBER, RPAREN, STAR,
		LPAREN, NUMBER, PLUS, NUMBER, RPAREN, EOF,
	}

	var actualTypes []TokenType
	for token, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, token.Type)
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestIteratorEarlyTermination(t *testing.T) {
	tokenizer := NewExprTokenizer("1 + 2 * 3")

	count := 0
	for _, err := range tokenizer.Tokens() {
		assert.NoError(t, err)

		count++
		if count >= 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "single number",
			input:    "42",
			expected: []TokenType{NUMBER, EOF},
		},
		{
			name:     "binary operators",
			input:    "1+2-3*4/5",
			expected: []TokenType{NUMBER, PLUS, NUMBER, MINUS, NUMBER, STAR, NUMBER, SLASH, NUMBER, EOF},
		},
		{
			name:     "parentheses",
			input:    "(1)",
			expected: []TokenType{LPAREN, NUMBER, RPAREN, EOF},
		},
		{
			name:     "unary minus chain",
			input:    "--1",
			expected: []TokenType{MINUS, MINUS, NUMBER, EOF},
		},
		{
			name:     "whitespace between tokens",
			input:    " 1\t+ 2 ",
			expected: []TokenType{NUMBER, PLUS, NUMBER, EOF},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []TokenType{EOF},
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: []TokenType{EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			assert.NoError(t, err)

			actualTypes := make([]TokenType, 0, len(tokens))
			for _, token := range tokens {
				actualTypes = append(actualTypes, token.Type)
			}

			assert.Equal(t, tt.expected, actualTypes)
		})
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{"0", "0"},
		{"42", "42"},
		{"3.14", "3.14"},
		{"1.", "1."},
		{".5", ".5"},
		{"1e5", "1e5"},
		{"1E5", "1E5"},
		{"2.5e-3", "2.5e-3"},
		{"2.5E+10", "2.5E+10"},
		{".5e2", ".5e2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, 2, len(tokens))
			assert.Equal(t, NUMBER, tokens[0].Type)
			assert.Equal(t, tt.value, tokens[0].Value)
			assert.Equal(t, len(tt.input), tokens[0].EndOffset)
		})
	}
}

func TestIncompleteExponentStopsNumber(t *testing.T) {
	// "1e" is NUMBER "1" followed by the invalid character 'e'.
	_, err := Tokenize("1e")
	assert.IsError(t, err, ErrUnexpectedCharacter)
	assert.Contains(t, err.Error(), "offset 1")

	// Same with a sign but no digits.
	_, err = Tokenize("1e+")
	assert.IsError(t, err, ErrUnexpectedCharacter)
	assert.Contains(t, err.Error(), "offset 1")
}

func TestOffsetsSurviveWhitespace(t *testing.T) {
	tokens, err := Tokenize("  1 +  23")
	assert.NoError(t, err)

	offsets := make([]int, 0, len(tokens))
	for _, token := range tokens {
		offsets = append(offsets, token.Position.Offset)
	}

	assert.Equal(t, []int{2, 4, 7, 9}, offsets)
	assert.Equal(t, 9, tokens[len(tokens)-1].Position.Offset)
	assert.Equal(t, "23", tokens[2].Value)
	assert.Equal(t, 9, tokens[2].EndOffset)
}

func TestNonDecreasingOffsets(t *testing.T) {
	tokens, err := Tokenize("-(3+2)*4 / .5e2")
	assert.NoError(t, err)

	prev := -1
	for _, token := range tokens {
		assert.True(t, token.Position.Offset >= prev)
		assert.True(t, token.EndOffset >= token.Position.Offset)
		prev = token.Position.Offset
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{"letter", "1 + a", 4},
		{"lone dot", ".", 0},
		{"dot without digit", "1 + .x", 4},
		{"newline is not inline whitespace", "1 +\n2", 3},
		{"caret", "2^3", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			assert.IsError(t, err, ErrUnexpectedCharacter)
			assert.Contains(t, err.Error(), "offset "+strconv.Itoa(tt.offset))
		})
	}
}

func TestUnexpectedMultibyteCharacter(t *testing.T) {
	// '²' occupies two bytes; the error names the whole rune while
	// the offset stays byte-based.
	_, err := Tokenize("1+²")
	assert.IsError(t, err, ErrUnexpectedCharacter)

	var lexErr *LexError
	assert.True(t, errors.As(err, &lexErr))
	assert.Equal(t, '²', lexErr.Char)
	assert.Equal(t, 2, lexErr.Pos.Offset)
	assert.Contains(t, err.Error(), "'²'")
}
