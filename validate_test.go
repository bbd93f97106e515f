package exprcheck

import (
	"strings"
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/exprlang/exprcheck/parser"
	"github.com/exprlang/exprcheck/tokenizer"
)

func TestValidateAccepts(t *testing.T) {
	inputs := []string{
		"1+2*3",
		"(4 - 5) * (6 + 7)",
		"42",
		"-(3+2)*4",
		"--8",
		"1.5e-3 + .5 * (2. / 4)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			result := Validate(input)
			assert.True(t, result.Valid)
			assert.NoError(t, result.Err)
			assert.Equal(t, "valid", result.String())
		})
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		position int
		sentinel error
	}{
		{"empty input", "", 0, parser.ErrUnexpectedEOF},
		{"missing operand", "3 + * 4", 4, parser.ErrUnexpectedToken},
		{"unclosed paren", "(1+2", 4, parser.ErrUnexpectedEOF},
		{"trailing input", "42 43", 3, parser.ErrTrailingInput},
		{"bad character", "1 + a", 4, tokenizer.ErrUnexpectedCharacter},
		{"stray paren", ")", 0, parser.ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)
			assert.False(t, result.Valid)
			assert.Equal(t, tt.position, result.Position)
			assert.IsError(t, result.Err, tt.sentinel)
			assert.NotZero(t, result.Message)
			assert.True(t, strings.HasPrefix(result.String(), "invalid: "))
		})
	}
}

func TestValidatePositionInRange(t *testing.T) {
	inputs := []string{
		"", " ", ")", "((", "1++", "1 2 3", "@", "1.2.3", "5 % 3",
		"(((((", "1e", "- - -", "42)", ".",
	}

	for _, input := range inputs {
		result := Validate(input)
		if result.Valid {
			continue
		}

		assert.True(t, result.Position >= 0, "position %d < 0 for %q", result.Position, input)
		assert.True(t, result.Position <= len(input), "position %d > len for %q", result.Position, input)
	}
}

func TestValidateDeterministic(t *testing.T) {
	inputs := []string{"1+2*3", "3 + * 4", "(1+2", ""}

	for _, input := range inputs {
		first := Validate(input)
		second := Validate(input)

		assert.Equal(t, first, second)
	}
}

func TestValidateConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				assert.True(t, Validate("-(3+2)*4").Valid)
				assert.Equal(t, 4, Validate("3 + * 4").Position)
			}
		}()
	}

	wg.Wait()
}
