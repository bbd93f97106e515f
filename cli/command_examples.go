package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/exprlang/exprcheck"
	"github.com/exprlang/exprcheck/catalog"
)

// ErrCatalogMismatch is returned when a sample's outcome differs from
// the outcome recorded in the catalog.
var ErrCatalogMismatch = errors.New("catalog outcomes do not match")

// ExamplesCmd represents the examples command
type ExamplesCmd struct {
	Catalog string `short:"f" help:"YAML catalog file (defaults to the built-in samples)" type:"path"`
}

// Run validates every catalog sample and compares the outcome against
// the catalog's expectation.
func (e *ExamplesCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	config.ApplyColorMode(ctx)

	samples, err := e.loadSamples(config)
	if err != nil {
		return err
	}

	mismatches := 0

	for _, sample := range samples {
		result := exprcheck.Validate(sample.Expression)

		if !ctx.Quiet {
			fmt.Fprintf(ctx.Stdout, "%s:\n", sample.Name)
			renderResult(ctx.Stdout, sample.Expression, result)
		}

		if result.Valid != sample.WantValid {
			mismatches++

			if !ctx.Quiet {
				color.New(color.FgYellow).Fprintf(ctx.Stdout, "  expected %s\n", outcomeWord(sample.WantValid))
			}
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%w: %d of %d samples", ErrCatalogMismatch, mismatches, len(samples))
	}

	if !ctx.Quiet {
		color.New(color.FgGreen).Fprintf(ctx.Stdout, "%d samples, all outcomes as recorded\n", len(samples))
	}

	return nil
}

func (e *ExamplesCmd) loadSamples(config *Config) ([]catalog.Sample, error) {
	path := e.Catalog
	if path == "" {
		path = config.Catalog
	}

	if path == "" {
		return catalog.Builtin(), nil
	}

	return catalog.Load(path)
}

func outcomeWord(valid bool) string {
	if valid {
		return "valid"
	}

	return "invalid"
}
