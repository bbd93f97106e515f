// Package cli implements the exprcheck command layer: thin adapters
// that collect expressions, call the validator and render the outcome.
package cli

import "io"

// Context carries the global flags shared by all commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
	NoColor bool

	// Stdout/Stderr/Stdin are swappable for tests; commands must not
	// touch os.Std* directly.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}
