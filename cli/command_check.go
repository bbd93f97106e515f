package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/exprlang/exprcheck"
	"github.com/exprlang/exprcheck/parser"
	"github.com/exprlang/exprcheck/tokenizer"
)

// Sentinel errors
var (
	ErrInvalidExpressions = errors.New("one or more expressions are invalid")
)

// CheckCmd represents the check command
type CheckCmd struct {
	Expressions []string `arg:"" optional:"" help:"Expressions to validate. Reads one expression per stdin line when omitted."`
}

// Run executes the check command. Blank inputs are pre-checked and
// reported without calling the validator; every other outcome comes
// from Validate unchanged.
func (c *CheckCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	config.ApplyColorMode(ctx)

	expressions := c.Expressions
	if len(expressions) == 0 {
		scanner := bufio.NewScanner(ctx.Stdin)
		for scanner.Scan() {
			expressions = append(expressions, scanner.Text())
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	invalid := 0

	for _, expr := range expressions {
		if strings.TrimSpace(expr) == "" {
			invalid++

			if !ctx.Quiet {
				errorLabel.Fprint(ctx.Stdout, "[ERROR]")
				fmt.Fprintln(ctx.Stdout, " (empty) please enter a non-empty expression")
			}

			continue
		}

		result := exprcheck.Validate(expr)
		if !result.Valid {
			invalid++
		}

		if ctx.Quiet {
			continue
		}

		renderResult(ctx.Stdout, expr, result)

		if ctx.Verbose && result.Valid {
			printTree(ctx, expr)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidExpressions, invalid, len(expressions))
	}

	return nil
}

// printTree shows the fully parenthesized reading of a valid
// expression, which makes precedence and associativity visible.
func printTree(ctx *Context, expr string) {
	tokens, err := tokenizer.Tokenize(expr)
	if err != nil {
		return
	}

	node, err := parser.Parse(tokens)
	if err != nil {
		return
	}

	fmt.Fprintf(ctx.Stdout, "        = %s\n", node.String())
}
