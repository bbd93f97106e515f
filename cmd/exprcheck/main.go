package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/exprlang/exprcheck/cli"
)

const version = "0.1.0"

// CLI represents the command-line interface
var CLI struct {
	Config  string `help:"Configuration file path" default:"exprcheck.yaml"`
	Verbose bool   `help:"Enable verbose output" short:"v"`
	Quiet   bool   `help:"Suppress output, report through the exit code" short:"q"`
	NoColor bool   `help:"Disable colored output"`

	Check    cli.CheckCmd    `cmd:"" help:"Validate expressions from arguments or stdin"`
	Examples cli.ExamplesCmd `cmd:"" help:"Run the sample catalog through the validator"`
	Grammar  cli.GrammarCmd  `cmd:"" help:"Print the grammar the validator accepts"`
	Tui      cli.TuiCmd      `cmd:"" help:"Start the interactive validator"`
	Version  VersionCmd      `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(*cli.Context) error {
	fmt.Println("exprcheck v" + version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
		NoColor: CLI.NoColor,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}

	// EXPRCHECK_NO_COLOR and the config file are handled by the
	// commands through LoadConfig, after .env has been loaded.
	if CLI.NoColor {
		color.NoColor = true
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
