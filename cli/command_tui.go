package cli

import (
	"github.com/exprlang/exprcheck/catalog"
	"github.com/exprlang/exprcheck/tui"
)

// TuiCmd represents the tui command
type TuiCmd struct {
	Catalog string `short:"f" help:"YAML catalog file for the example cycle" type:"path"`
}

// Run starts the interactive validator
func (t *TuiCmd) Run(ctx *Context) error {
	config, err := LoadConfig(ctx.Config)
	if err != nil {
		return err
	}

	config.ApplyColorMode(ctx)

	samples := catalog.Builtin()

	path := t.Catalog
	if path == "" {
		path = config.Catalog
	}

	if path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return err
		}

		samples = loaded
	}

	return tui.Run(samples)
}
