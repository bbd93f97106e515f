package cli

import (
	"fmt"

	"github.com/exprlang/exprcheck"
)

// GrammarCmd represents the grammar command
type GrammarCmd struct{}

// Run prints the grammar the validator accepts
func (g *GrammarCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, exprcheck.Grammar)
	return nil
}
